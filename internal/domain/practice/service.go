package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"medication-cart/internal/domain/catalog"
	"medication-cart/internal/domain/dosing"
	"medication-cart/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("session not found")
	ErrForbidden    = errors.New("forbidden")

	// ErrUnavailable: el registro no tiene ejercicio (sin datos o datos inválidos).
	ErrUnavailable = errors.New("exercise unavailable")
)

// TargetSource resuelve el Target de un registro (lo implementa catalog.Service).
type TargetSource interface {
	PreparationTarget(ctx context.Context, medicationID string) (catalog.Medication, dosing.Target, error)
}

type Service struct {
	targets TargetSource
	store   SessionStore
	log     logger.Logger

	// serializa eventos: cada evento se procesa completo antes del siguiente
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

func NewService(targets TargetSource, store SessionStore, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		targets: targets,
		store:   store,
		log:     log.With(map[string]any{"module": "practice"}),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Open crea una sesión nueva en choosing_method. Si el estudiante tenía otra abierta,
// se descarta: abrir otra medicación siempre empieza de cero.
func (s *Service) Open(ctx context.Context, studentID, medicationID string) (Entry, error) {
	studentID = strings.TrimSpace(studentID)
	medicationID = strings.TrimSpace(medicationID)
	if studentID == "" || medicationID == "" {
		return Entry{}, ErrInvalidInput
	}

	m, target, err := s.targets.PreparationTarget(ctx, medicationID)
	if err != nil {
		var pe *dosing.ParseError
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return Entry{}, err
		case errors.Is(err, dosing.ErrNoPreparationData):
			return Entry{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		case errors.As(err, &pe):
			// fail closed: nunca se arma un Target con datos rotos
			s.log.Warn("invalid preparation data", map[string]any{
				"medication_id": medicationID,
				"field":         pe.Field,
				"value":         pe.Value,
			})
			return Entry{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			return Entry{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, err := s.store.FindByStudent(ctx, studentID); err == nil {
		_ = s.store.Delete(ctx, prev.ID)
	}

	now := s.now()
	e := Entry{
		ID:           s.newID(),
		StudentID:    studentID,
		MedicationID: m.ID,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Route:        m.Route,
		Session:      dosing.NewSession(target),
		OpenedAt:     now,
		UpdatedAt:    now,
	}
	if err := s.store.Save(ctx, e); err != nil {
		return Entry{}, err
	}

	s.log.Info("practice session opened", map[string]any{
		"session_id":    e.ID,
		"student_id":    studentID,
		"medication_id": m.ID,
		"method":        string(target.Method),
	})
	return e, nil
}

func (s *Service) Get(ctx context.Context, studentID, sessionID string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx, studentID, sessionID)
}

// Apply aplica un evento. Si el evento es ilegal devuelve la sesión intacta junto con el error.
func (s *Service) Apply(ctx context.Context, studentID, sessionID string, ev dosing.Event) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx, studentID, sessionID)
	if err != nil {
		return Entry{}, err
	}

	next := e.Session.Clone()
	if err := dosing.Apply(next, ev); err != nil {
		s.log.Warn("practice event rejected", map[string]any{
			"session_id": e.ID,
			"event":      string(ev.Type),
			"phase":      string(e.Session.Phase()),
			"error":      err.Error(),
		})
		return e, err
	}

	e.Session = next
	e.UpdatedAt = s.now()
	if err := s.store.Save(ctx, e); err != nil {
		return Entry{}, err
	}

	if ev.Type == dosing.EventSubmit {
		if v := next.Verdict(); v != nil {
			s.log.Info("dose submitted", map[string]any{
				"session_id":     e.ID,
				"medication_id":  e.MedicationID,
				"method":         string(next.Method()),
				"amount":         next.Amount(),
				"amount_correct": v.AmountCorrect,
				"method_correct": v.MethodCorrect,
				"attempt":        next.Attempts(),
			})
		}
	}
	return e, nil
}

// Close es "done": termina la sesión y la borra.
func (s *Service) Close(ctx context.Context, studentID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx, studentID, sessionID)
	if err != nil {
		return err
	}
	// la sesión guardada puede estar en manos de otro lector: se cierra una copia
	closed := e.Session.Clone()
	closed.Close()

	if err := s.store.Delete(ctx, e.ID); err != nil {
		return err
	}

	s.log.Info("practice session closed", map[string]any{
		"session_id": e.ID,
		"attempts":   closed.Attempts(),
	})
	return nil
}

func (s *Service) load(ctx context.Context, studentID, sessionID string) (Entry, error) {
	studentID = strings.TrimSpace(studentID)
	sessionID = strings.TrimSpace(sessionID)
	if studentID == "" || sessionID == "" {
		return Entry{}, ErrInvalidInput
	}

	e, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Entry{}, ErrNotFound
	}
	if e.StudentID != studentID {
		return Entry{}, ErrForbidden
	}
	return e, nil
}

// SuccessMessage arma el mensaje de éxito con la dosis ordenada del registro.
func (e Entry) SuccessMessage() string {
	v := e.Session.Verdict()
	if v == nil || !v.OverallCorrect {
		return ""
	}
	return dosing.SuccessMessage(e.Dosage, e.Session.Method())
}
