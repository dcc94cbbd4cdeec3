// Package memory holds mutex-guarded implementations of the repository
// interfaces. They back the test suites and the DSN-less development mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// UserStore implements repository.AdminUserRepository.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]domain.AdminUser
	byEmail map[string]string
	now     func() time.Time
}

var _ repository.AdminUserRepository = (*UserStore)(nil)

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    map[string]domain.AdminUser{},
		byEmail: map[string]string{},
		now:     time.Now,
	}
}

func (s *UserStore) Create(_ context.Context, user *domain.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := repository.NormalizeEmail(user.Email)
	if _, taken := s.byEmail[email]; taken {
		return apperrors.NewConflict("email already registered", map[string]any{"email": email})
	}

	now := s.now().UTC()
	user.ID = uuid.NewString()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	s.byID[user.ID] = *user
	s.byEmail[email] = user.ID
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*domain.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[repository.NormalizeEmail(email)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user := s.byID[id]
	return &user, nil
}

func (s *UserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID), nil
}
