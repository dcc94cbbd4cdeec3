package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
)

// SessionStore implements repository.SessionRepository. Lookups join against
// the supplied UserStore the way the SQL implementation joins admin_users.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	users    *UserStore
	now      func() time.Time
}

var _ repository.SessionRepository = (*SessionStore)(nil)

func NewSessionStore(users *UserStore) *SessionStore {
	return &SessionStore{
		sessions: map[string]domain.Session{},
		users:    users,
		now:      time.Now,
	}
}

func (s *SessionStore) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = uuid.NewString()
	session.CreatedAt = s.now().UTC()
	s.sessions[session.TokenHash] = *session
	return nil
}

func (s *SessionStore) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SessionWithUser, error) {
	s.mu.RLock()
	session, ok := s.sessions[tokenHash]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if repository.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.SessionWithUser{Session: session, User: *user}, nil
}

func (s *SessionStore) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
	return nil
}

func (s *SessionStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for hash, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
