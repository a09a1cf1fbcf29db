package practice

import (
	"context"
	"time"

	"medication-cart/internal/domain/dosing"
)

// Entry es una sesión de ejercicio viva, asociada a un estudiante y a un registro.
type Entry struct {
	ID        string
	StudentID string

	MedicationID string
	Name         string
	Dosage       string
	Route        string

	Session *dosing.Session

	OpenedAt  time.Time
	UpdatedAt time.Time
}

// SessionStore guarda sesiones; nunca comparte estado entre sesiones.
type SessionStore interface {
	Save(ctx context.Context, e Entry) error
	Get(ctx context.Context, id string) (Entry, error)
	Delete(ctx context.Context, id string) error

	// FindByStudent devuelve la sesión abierta del estudiante (a lo sumo una).
	FindByStudent(ctx context.Context, studentID string) (Entry, error)
}
