package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const studentKey ctxKey = "student"

// StudentHeader identifica al estudiante. No hay autenticación real: es un simulador de aula.
const StudentHeader = "X-Student-ID"

// debugHeader se acepta por compatibilidad con clientes de desarrollo.
const debugHeader = "X-Debug-User-ID"

// StudentContext:
// - Si viene X-Student-ID (o X-Debug-User-ID) => se usa ese ID.
// - Si no viene y defaultID != "" => se usa defaultID (estación compartida).
// - Si no hay ID, el request sigue igual; los handlers decidirán si lo exigen.
func StudentContext(defaultID string) func(http.Handler) http.Handler {
	defaultID = strings.TrimSpace(defaultID)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(StudentHeader))
			if id == "" {
				id = strings.TrimSpace(r.Header.Get(debugHeader))
			}
			if id == "" {
				id = defaultID
			}
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), studentKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetStudentID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(studentKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
