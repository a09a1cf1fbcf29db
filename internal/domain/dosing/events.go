package dosing

import (
	"errors"
	"fmt"
)

// EventType enumera los eventos de usuario que acepta una Session.
type EventType string

const (
	EventSelectMethod  EventType = "select_method"
	EventSetAmount     EventType = "set_amount"
	EventAdjustAmount  EventType = "adjust_amount"
	EventIncrement     EventType = "increment"
	EventDecrement     EventType = "decrement"
	EventPointerDown   EventType = "pointer_down"
	EventPointerMove   EventType = "pointer_move"
	EventPointerUp     EventType = "pointer_up"
	EventPointerLeave  EventType = "pointer_leave"
	EventPointerCancel EventType = "pointer_cancel"
	EventBack          EventType = "back"
	EventSubmit        EventType = "submit"
	EventReset         EventType = "reset"
)

var ErrUnknownEvent = errors.New("unknown event")

type Event struct {
	Type     EventType
	Method   Method
	Amount   float64
	Delta    float64
	PointerY float64
	Geometry Geometry
}

// Apply despacha un evento a la sesión.
func Apply(s *Session, e Event) error {
	switch e.Type {
	case EventSelectMethod:
		return s.SelectMethod(e.Method)
	case EventSetAmount:
		return s.SetAmount(e.Amount)
	case EventAdjustAmount:
		return s.AdjustAmount(e.Delta)
	case EventIncrement:
		return s.Increment()
	case EventDecrement:
		return s.Decrement()
	case EventPointerDown:
		return s.PointerDown(e.PointerY, e.Geometry)
	case EventPointerMove:
		return s.PointerMove(e.PointerY, e.Geometry)
	case EventPointerUp:
		s.PointerUp()
		return nil
	case EventPointerLeave:
		s.PointerLeave()
		return nil
	case EventPointerCancel:
		s.PointerCancel()
		return nil
	case EventBack:
		return s.Back()
	case EventSubmit:
		_, err := s.Submit()
		return err
	case EventReset:
		return s.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
}
