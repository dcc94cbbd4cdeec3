package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
)

const tokenBytes = 32

// DefaultSessionTTL is the lifetime of a freshly issued session.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Identity is the authenticated back-office user attached to a request.
type Identity struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	DisplayName string           `json:"display_name"`
	Role        domain.AdminRole `json:"role"`
}

// SessionManager issues, resolves and revokes opaque session tokens. Tokens
// are bearer secrets: only their SHA-256 digest is stored and they are never
// logged.
type SessionManager struct {
	sessions repository.SessionRepository
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
	random   io.Reader
}

// SessionOption customizes a SessionManager.
type SessionOption func(*SessionManager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) { m.now = now }
}

// WithRandom replaces crypto/rand as the token source.
func WithRandom(r io.Reader) SessionOption {
	return func(m *SessionManager) { m.random = r }
}

// NewSessionManager builds a manager. A non-positive ttl selects DefaultSessionTTL.
func NewSessionManager(sessions repository.SessionRepository, ttl time.Duration, logger *zap.Logger, opts ...SessionOption) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &SessionManager{
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		random:   rand.Reader,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for userID and returns the raw token with its expiry.
func (m *SessionManager) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(m.random, buf); err != nil {
		return "", time.Time{}, fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	session := &domain.Session{
		UserID:    userID,
		TokenHash: HashToken(token),
		ExpiresAt: m.now().UTC().Add(m.ttl),
	}
	if err := m.sessions.Create(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("store session: %w", err)
	}

	m.logger.Info("session issued",
		zap.String("session_id", session.ID),
		zap.String("user_id", userID),
		zap.Time("expires_at", session.ExpiresAt),
	)
	return token, session.ExpiresAt, nil
}

// Resolve returns the identity behind token, or nil when the token is empty,
// unknown or expired. Expired sessions are deleted on a best-effort basis.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	hash := HashToken(token)
	row, err := m.sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	if row.Session.Expired(m.now()) {
		if err := m.sessions.DeleteByTokenHash(ctx, hash); err != nil {
			m.logger.Warn("failed to delete expired session",
				zap.String("session_id", row.Session.ID),
				zap.Error(err),
			)
		}
		return nil, nil
	}

	return &Identity{
		ID:          row.User.ID,
		Email:       row.User.Email,
		DisplayName: row.User.DisplayName,
		Role:        row.User.Role,
	}, nil
}

// Revoke deletes the session behind token. Unknown and empty tokens are a no-op.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.sessions.DeleteByTokenHash(ctx, HashToken(token)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// HashToken returns the hex SHA-256 digest under which a token is stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
