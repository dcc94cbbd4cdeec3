package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/config"
	"github.com/spec-kit/pilgrim-travel/internal/events"
	"github.com/spec-kit/pilgrim-travel/internal/mail"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
	"github.com/spec-kit/pilgrim-travel/internal/repository/memory"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

func newMemoryCatalogRepos() CatalogRepositories {
	return CatalogRepositories{
		Locations:      memory.NewCatalogStore(repository.LocationSchema),
		Hotels:         memory.NewCatalogStore(repository.HotelSchema),
		Rooms:          memory.NewCatalogStore(repository.RoomSchema),
		Categories:     memory.NewCatalogStore(repository.CategorySchema),
		Packages:       memory.NewCatalogStore(repository.PackageSchema),
		Events:         memory.NewCatalogStore(repository.EventSchema),
		Transportation: memory.NewCatalogStore(repository.TransportationSchema),
		Visas:          memory.NewCatalogStore(repository.VisaSchema),
		BlogPosts:      memory.NewCatalogStore(repository.BlogPostSchema),
		Testimonials:   memory.NewCatalogStore(repository.TestimonialSchema),
	}
}

type authFixture struct {
	users    *memory.UserStore
	sessions *memory.SessionStore
	service  *AuthService
}

func newAuthFixture(t *testing.T, throttle auth.LoginThrottle) *authFixture {
	t.Helper()
	users := memory.NewUserStore()
	sessions := memory.NewSessionStore(users)
	svc, err := NewAuthService(config.AuthConfig{BcryptCost: bcrypt.MinCost}, AuthDependencies{
		Users:      users,
		Sessions:   auth.NewSessionManager(sessions, 0, zap.NewNop()),
		Throttle:   throttle,
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	if err != nil {
		t.Fatalf("NewAuthService() error: %v", err)
	}
	return &authFixture{users: users, sessions: sessions, service: svc}
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	// fail returns an error for the nth send (1-based); zero never fails.
	fail int
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail > 0 && len(m.sent)+1 == m.fail {
		m.fail = -1
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func assertStatus(t *testing.T, err error, status int) *apperrors.DomainError {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error = %v, want DomainError with status %d", err, status)
	}
	if domainErr.HTTPStatus != status {
		t.Fatalf("HTTPStatus = %d, want %d (%v)", domainErr.HTTPStatus, status, err)
	}
	return domainErr
}
