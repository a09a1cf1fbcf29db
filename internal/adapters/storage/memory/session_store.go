package memory

import (
	"context"
	"time"

	"medication-cart/internal/domain/practice"

	"github.com/patrickmn/go-cache"
)

const studentKeyPrefix = "student:"

// sessionStore guarda sesiones en go-cache; expiran solas tras ttl sin actividad.
// Además del id, indexa "student:<id>" -> session id (una sesión abierta por estudiante).
type sessionStore struct {
	cache *cache.Cache
}

func NewSessionStore(ttl time.Duration) practice.SessionStore {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &sessionStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *sessionStore) Save(ctx context.Context, e practice.Entry) error {
	s.cache.Set(e.ID, e, cache.DefaultExpiration)
	s.cache.Set(studentKeyPrefix+e.StudentID, e.ID, cache.DefaultExpiration)
	return nil
}

func (s *sessionStore) Get(ctx context.Context, id string) (practice.Entry, error) {
	x, found := s.cache.Get(id)
	if !found {
		return practice.Entry{}, practice.ErrNotFound
	}
	e, ok := x.(practice.Entry)
	if !ok {
		return practice.Entry{}, practice.ErrNotFound
	}
	return e, nil
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil
	}
	s.cache.Delete(id)

	// solo se limpia el índice si todavía apunta a esta sesión
	key := studentKeyPrefix + e.StudentID
	if cur, found := s.cache.Get(key); found && cur == id {
		s.cache.Delete(key)
	}
	return nil
}

func (s *sessionStore) FindByStudent(ctx context.Context, studentID string) (practice.Entry, error) {
	x, found := s.cache.Get(studentKeyPrefix + studentID)
	if !found {
		return practice.Entry{}, practice.ErrNotFound
	}
	id, _ := x.(string)
	return s.Get(ctx, id)
}
