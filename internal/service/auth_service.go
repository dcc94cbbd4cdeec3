package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/config"
	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/events"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes and newer versions reject it.
	maxPasswordLength = 72
)

var (
	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike.
	ErrInvalidCredentials = apperrors.NewUnauthorized("invalid email or password")
	// ErrLoginThrottled is returned once a key exceeds its failure budget.
	ErrLoginThrottled = apperrors.NewTooManyRequests("too many failed login attempts, try again later")
)

// AuthService coordinates login, logout and account provisioning.
type AuthService struct {
	users      repository.AdminUserRepository
	sessions   *auth.SessionManager
	throttle   auth.LoginThrottle
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
	dummyHash  string
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Users      repository.AdminUserRepository
	Sessions   *auth.SessionManager
	Throttle   auth.LoginThrottle
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Identity  auth.Identity
	Token     string
	ExpiresAt time.Time
}

// NewAuthService builds the service. A dummy hash at the configured cost is
// prepared so unknown emails spend the same bcrypt work as wrong passwords.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) (*AuthService, error) {
	dummy, err := auth.HashPassword(uuid.NewString(), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	throttle := deps.Throttle
	if throttle == nil {
		throttle = auth.NoopThrottle()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.Users,
		sessions:   deps.Sessions,
		throttle:   throttle,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
		dummyHash:  dummy,
	}, nil
}

// Sessions exposes the session manager for middleware wiring.
func (s *AuthService) Sessions() *auth.SessionManager {
	return s.sessions
}

// Login verifies credentials and issues a session.
func (s *AuthService) Login(ctx context.Context, email, password, clientIP string) (*LoginResult, error) {
	key := auth.ThrottleKey(email, clientIP)
	allowed, err := s.throttle.Allow(ctx, key)
	if err != nil {
		s.logger.Warn("login throttle unavailable", zap.Error(err))
	} else if !allowed {
		return nil, ErrLoginThrottled
	}

	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case repository.IsNotFound(err):
		_ = auth.ComparePassword(s.dummyHash, password)
		s.recordFailure(ctx, key)
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if !auth.IsMismatch(err) {
			s.logger.Error("stored password hash unusable", zap.String("user_id", user.ID), zap.Error(err))
		}
		s.recordFailure(ctx, key)
		return nil, ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, key); err != nil {
		s.logger.Warn("reset login throttle", zap.Error(err))
	}

	token, expiresAt, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.publishLogin(ctx, user, expiresAt)
	return &LoginResult{
		Identity: auth.Identity{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Role:        user.Role,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the session behind token. Unknown or empty tokens succeed.
// A store failure is logged and returned; callers still clear the cookie.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.logger.Warn("logout could not delete session", zap.Error(err))
		return err
	}
	return nil
}

// CurrentIdentity resolves token, returning nil when there is no live session.
func (s *AuthService) CurrentIdentity(ctx context.Context, token string) (*auth.Identity, error) {
	return s.sessions.Resolve(ctx, token)
}

// ProvisionInput describes a new back-office account.
type ProvisionInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        domain.AdminRole
}

// ProvisionAdmin creates an account. Used by the CLI and first-boot bootstrap.
func (s *AuthService) ProvisionAdmin(ctx context.Context, in ProvisionInput) (*domain.AdminUser, error) {
	errs := fieldErrors{}
	email := repository.NormalizeEmail(in.Email)
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		errs.add("email", "must be a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		errs.add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	} else if len(in.Password) > maxPasswordLength {
		errs.add("password", fmt.Sprintf("must be at most %d bytes", maxPasswordLength))
	}
	role := in.Role
	if role == "" {
		role = domain.AdminRoleAdmin
	}
	if !role.Valid() {
		errs.add("role", "must be admin or editor")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.AdminUser{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("admin provisioned", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

// EnsureBootstrapAdmin provisions the configured account when no account exists yet.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.ProvisionAdmin(ctx, ProvisionInput{Email: email, Password: password, DisplayName: "Administrator", Role: domain.AdminRoleAdmin})
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == "CONFLICT" {
		return nil
	}
	return err
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if err := s.throttle.Fail(ctx, key); err != nil {
		s.logger.Warn("record login failure", zap.Error(err))
	}
}

func (s *AuthService) publishLogin(ctx context.Context, user *domain.AdminUser, expiresAt time.Time) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAdminLoggedIn,
		ActorID:   user.ID,
		Timestamp: time.Now().UTC(),
		Payload:   events.AdminLoggedInPayload{Email: user.Email, ExpiresAt: expiresAt},
	})
	if err != nil {
		s.logger.Warn("login event handler failed", zap.Error(err))
	}
}
