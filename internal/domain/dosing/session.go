package dosing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidMethod     = errors.New("invalid method")
	ErrNothingPrepared   = errors.New("nothing prepared")
	ErrSessionClosed     = errors.New("session closed")
)

// Session es un intento del ejercicio para un Target.
// Todas las mutaciones son síncronas; un evento ilegal se rechaza sin tocar el estado.
type Session struct {
	target Target

	phase    Phase
	chosen   Method
	amount   float64
	drag     DragState
	verdict  *Verdict
	attempts int
	closed   bool
}

func NewSession(t Target) *Session {
	s := &Session{target: t}
	s.clear()
	return s
}

func (s *Session) clear() {
	s.phase = PhaseChoosingMethod
	s.chosen = MethodUnset
	s.amount = 0
	s.drag = DragIdle
	s.verdict = nil
}

func (s *Session) Target() Target     { return s.target }
func (s *Session) Phase() Phase       { return s.phase }
func (s *Session) Method() Method     { return s.chosen }
func (s *Session) Amount() float64    { return s.amount }
func (s *Session) Drag() DragState    { return s.drag }
func (s *Session) Attempts() int      { return s.attempts }
func (s *Session) Closed() bool       { return s.closed }
func (s *Session) Attempt() Attempt   { return Attempt{Method: s.chosen, Amount: s.amount} }
func (s *Session) Verdict() *Verdict  { return s.verdict }
func (s *Session) MaxAmount() float64 { return s.target.MaxAmount }

// StepSize depende del método elegido (0.5 mL en jeringa, 1 tableta en vaso).
func (s *Session) StepSize() float64 {
	if s.chosen == MethodCup {
		return CupStep
	}
	return SyringeStep
}

// CanSelectMethod: ambos métodos están siempre habilitados al elegir, incluso el incorrecto.
func (s *Session) CanSelectMethod() bool {
	return !s.closed && s.phase == PhaseChoosingMethod
}

func (s *Session) CanIncrement() bool {
	return !s.closed && s.phase == PhaseFilling && s.amount < s.target.MaxAmount
}

func (s *Session) CanDecrement() bool {
	return !s.closed && s.phase == PhaseFilling && s.amount > 0
}

func (s *Session) CanSubmit() bool {
	return !s.closed && s.phase == PhaseFilling && s.amount > 0
}

func (s *Session) require(event string, phase Phase) error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.phase != phase {
		return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, event, s.phase)
	}
	return nil
}

// SelectMethod no impide elegir el método incorrecto: eso se califica después.
func (s *Session) SelectMethod(m Method) error {
	if err := s.require("select_method", PhaseChoosingMethod); err != nil {
		return err
	}
	if !m.Valid() {
		return ErrInvalidMethod
	}
	s.chosen = m
	s.amount = 0
	s.drag = DragIdle
	s.phase = PhaseFilling
	return nil
}

func (s *Session) SetAmount(a float64) error {
	if err := s.require("set_amount", PhaseFilling); err != nil {
		return err
	}
	s.amount = Quantize(a, s.target.MaxAmount, s.StepSize())
	return nil
}

func (s *Session) AdjustAmount(delta float64) error {
	if err := s.require("adjust_amount", PhaseFilling); err != nil {
		return err
	}
	s.amount = Quantize(Adjust(s.amount, delta, s.target.MaxAmount), s.target.MaxAmount, s.StepSize())
	return nil
}

func (s *Session) Increment() error { return s.AdjustAmount(s.StepSize()) }
func (s *Session) Decrement() error { return s.AdjustAmount(-s.StepSize()) }

func (s *Session) requireSyringeFill(event string) error {
	if err := s.require(event, PhaseFilling); err != nil {
		return err
	}
	if s.chosen != MethodSyringe {
		return fmt.Errorf("%w: %s with %s", ErrInvalidTransition, event, s.chosen)
	}
	return nil
}

func (s *Session) PointerDown(y float64, g Geometry) error {
	if err := s.requireSyringeFill("pointer_down"); err != nil {
		return err
	}
	s.drag = DragDragging
	s.amount = MapPosition(y, g.Top, g.Height, s.target.MaxAmount, SyringeStep)
	return nil
}

// PointerMove sin arrastre activo se ignora (hover).
func (s *Session) PointerMove(y float64, g Geometry) error {
	if err := s.requireSyringeFill("pointer_move"); err != nil {
		return err
	}
	if s.drag != DragDragging {
		return nil
	}
	s.amount = MapPosition(y, g.Top, g.Height, s.target.MaxAmount, SyringeStep)
	return nil
}

// PointerUp, PointerLeave y PointerCancel son equivalentes y válidos en cualquier fase:
// el arrastre nunca queda colgado.
func (s *Session) PointerUp()     { s.drag = DragIdle }
func (s *Session) PointerLeave()  { s.drag = DragIdle }
func (s *Session) PointerCancel() { s.drag = DragIdle }

// Back vuelve a elegir método descartando lo preparado.
func (s *Session) Back() error {
	if err := s.require("back", PhaseFilling); err != nil {
		return err
	}
	s.clear()
	return nil
}

// Submit congela método y cantidad y evalúa.
func (s *Session) Submit() (Verdict, error) {
	if err := s.require("submit", PhaseFilling); err != nil {
		return Verdict{}, err
	}
	if s.amount <= 0 {
		return Verdict{}, ErrNothingPrepared
	}
	v := Evaluate(s.Attempt(), s.target)
	s.drag = DragIdle
	s.phase = PhaseShowingResult
	s.verdict = &v
	s.attempts++
	return v, nil
}

// Reset es "try again": equivale a crear la sesión de nuevo (se conserva el contador de intentos).
func (s *Session) Reset() error {
	if err := s.require("reset", PhaseShowingResult); err != nil {
		return err
	}
	s.clear()
	return nil
}

// Close es "done": la sesión deja de aceptar eventos. El último veredicto sigue legible.
func (s *Session) Close() {
	s.drag = DragIdle
	s.closed = true
}

// Clone copia la sesión; el Verdict nunca se muta en sitio, compartirlo es seguro.
func (s *Session) Clone() *Session {
	cp := *s
	return &cp
}
