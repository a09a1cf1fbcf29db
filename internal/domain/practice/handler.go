package practice

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"medication-cart/internal/domain/catalog"
	"medication-cart/internal/domain/dosing"
	"medication-cart/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/practice/sessions", func(pr chi.Router) {
		pr.Post("/", openSessionHandler(svc))
		pr.Get("/{sessionID}", getSessionHandler(svc))
		pr.Post("/{sessionID}/events", applyEventHandler(svc))
		pr.Delete("/{sessionID}", closeSessionHandler(svc))
	})
}

type openSessionRequest struct {
	MedicationID string `json:"medication_id"`
}

// eventRequest: solo se leen los campos que usa cada tipo de evento.
type eventRequest struct {
	Type     dosing.EventType `json:"type" enums:"select_method,set_amount,adjust_amount,increment,decrement,pointer_down,pointer_move,pointer_up,pointer_leave,pointer_cancel,back,submit,reset"`
	Method   dosing.Method    `json:"method,omitempty" enums:"syringe,cup"`
	Amount   float64          `json:"amount,omitempty"`
	Delta    float64          `json:"delta,omitempty"`
	PointerY float64          `json:"pointer_y,omitempty"`

	// caja del cuerpo de la jeringa, solo para pointer_down/pointer_move
	ContainerTop    float64 `json:"container_top,omitempty"`
	ContainerHeight float64 `json:"container_height,omitempty"`
}

type verdictResponse struct {
	AmountCorrect  bool   `json:"amount_correct"`
	MethodCorrect  bool   `json:"method_correct"`
	OverallCorrect bool   `json:"overall_correct"`
	Title          string `json:"title"`
	ChosenMethod   string `json:"chosen_method"`
	ExpectedMethod string `json:"expected_method"`
	WrongMethod    string `json:"wrong_method,omitempty"`
	WrongAmount    string `json:"wrong_amount,omitempty"`
	Submitted      string `json:"submitted"`
	Expected       string `json:"expected"`
}

type sessionResponse struct {
	ID           string `json:"id"`
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Route        string `json:"route"`

	Phase       dosing.Phase     `json:"phase" enums:"choosing_method,filling,showing_result"`
	Method      dosing.Method    `json:"method,omitempty" enums:"syringe,cup"`
	Amount      float64          `json:"amount"`
	AmountLabel string           `json:"amount_label"`
	Drag        dosing.DragState `json:"drag" enums:"idle,dragging"`
	StepSize    float64          `json:"step_size"`
	Attempts    int              `json:"attempts"`

	CanSelectMethod bool `json:"can_select_method"`
	CanIncrement    bool `json:"can_increment"`
	CanDecrement    bool `json:"can_decrement"`
	CanSubmit       bool `json:"can_submit"`

	Target         catalog.TargetResponse `json:"target"`
	Verdict        *verdictResponse       `json:"verdict,omitempty"`
	SuccessMessage string                 `json:"success_message,omitempty"`

	OpenedAt  time.Time `json:"opened_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// openSessionHandler godoc
// @Summary Abrir sesión de preparación
// @Description Abre el ejercicio para un registro del catálogo. Reemplaza la sesión abierta del estudiante, si había una.
// @Tags practice
// @Accept json
// @Produce json
// @Param X-Student-ID header string false "ID del estudiante (por defecto el configurado en el servidor)"
// @Param payload body openSessionRequest true "Registro a preparar"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "Medication not found"
// @Failure 422 {string} string "exercise unavailable"
// @Router /api/practice/sessions [post]
func openSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middleware.GetStudentID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req openSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Open(r.Context(), studentID, req.MedicationID)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrNotFound):
				http.Error(w, "Medication not found", http.StatusNotFound)
			case errors.Is(err, ErrUnavailable):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				writeError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toSessionResponse(e))
	}
}

// getSessionHandler godoc
// @Summary Obtener sesión
// @Tags practice
// @Produce json
// @Param X-Student-ID header string false "ID del estudiante"
// @Param sessionID path string true "ID de la sesión"
// @Success 200 {object} sessionResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "session not found"
// @Router /api/practice/sessions/{sessionID} [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middleware.GetStudentID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := svc.Get(r.Context(), studentID, chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(e))
	}
}

// applyEventHandler godoc
// @Summary Enviar evento a la sesión
// @Description Aplica un evento de usuario (elegir método, ajustar cantidad, arrastre, back, submit, reset). Un evento ilegal para la fase actual devuelve 409 y no modifica la sesión.
// @Tags practice
// @Accept json
// @Produce json
// @Param X-Student-ID header string false "ID del estudiante"
// @Param sessionID path string true "ID de la sesión"
// @Param payload body eventRequest true "Evento"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / unknown event / invalid method / nothing prepared"
// @Failure 404 {string} string "session not found"
// @Failure 409 {string} string "invalid transition"
// @Router /api/practice/sessions/{sessionID}/events [post]
func applyEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middleware.GetStudentID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Apply(r.Context(), studentID, chi.URLParam(r, "sessionID"), dosing.Event{
			Type:     req.Type,
			Method:   req.Method,
			Amount:   req.Amount,
			Delta:    req.Delta,
			PointerY: req.PointerY,
			Geometry: dosing.Geometry{Top: req.ContainerTop, Height: req.ContainerHeight},
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(e))
	}
}

// closeSessionHandler godoc
// @Summary Cerrar sesión ("done")
// @Tags practice
// @Param X-Student-ID header string false "ID del estudiante"
// @Param sessionID path string true "ID de la sesión"
// @Success 204
// @Failure 404 {string} string "session not found"
// @Router /api/practice/sessions/{sessionID} [delete]
func closeSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := middleware.GetStudentID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Close(r.Context(), studentID, chi.URLParam(r, "sessionID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, dosing.ErrInvalidTransition), errors.Is(err, dosing.ErrSessionClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, dosing.ErrUnknownEvent),
		errors.Is(err, dosing.ErrInvalidMethod),
		errors.Is(err, dosing.ErrNothingPrepared):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toSessionResponse(e Entry) sessionResponse {
	s := e.Session
	out := sessionResponse{
		ID:           e.ID,
		MedicationID: e.MedicationID,
		Name:         e.Name,
		Dosage:       e.Dosage,
		Route:        e.Route,
		Phase:        s.Phase(),
		Method:       s.Method(),
		Amount:       s.Amount(),
		Drag:         s.Drag(),
		StepSize:     s.StepSize(),
		Attempts:     s.Attempts(),
		Target:       catalog.ToTargetResponse(s.Target()),
		OpenedAt:     e.OpenedAt,
		UpdatedAt:    e.UpdatedAt,

		CanSelectMethod: s.CanSelectMethod(),
		CanIncrement:    s.CanIncrement(),
		CanDecrement:    s.CanDecrement(),
		CanSubmit:       s.CanSubmit(),
	}
	if s.Method().Valid() {
		out.AmountLabel = dosing.FormatAmount(s.Method(), s.Amount(), s.Target())
	}

	if v := s.Verdict(); v != nil {
		out.Verdict = &verdictResponse{
			AmountCorrect:  v.AmountCorrect,
			MethodCorrect:  v.MethodCorrect,
			OverallCorrect: v.OverallCorrect,
			Title:          v.Feedback.Title,
			ChosenMethod:   v.Feedback.ChosenMethod.DisplayName(),
			ExpectedMethod: v.Feedback.ExpectedMethod.DisplayName(),
			WrongMethod:    v.Feedback.WrongMethod,
			WrongAmount:    v.Feedback.WrongAmount,
			Submitted:      v.Feedback.Submitted,
			Expected:       v.Feedback.Expected,
		}
		out.SuccessMessage = e.SuccessMessage()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
