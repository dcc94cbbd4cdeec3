package auth

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/repository/memory"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type sessionFixture struct {
	users    *memory.UserStore
	sessions *memory.SessionStore
	clock    *fixedClock
	manager  *SessionManager
	user     *domain.AdminUser
}

func newSessionFixture(t *testing.T, opts ...SessionOption) *sessionFixture {
	t.Helper()
	users := memory.NewUserStore()
	sessions := memory.NewSessionStore(users)
	clock := &fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	user := &domain.AdminUser{Email: "ops@example.com", DisplayName: "Ops", Role: domain.AdminRoleAdmin}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	opts = append([]SessionOption{WithClock(clock.Now)}, opts...)
	return &sessionFixture{
		users:    users,
		sessions: sessions,
		clock:    clock,
		manager:  NewSessionManager(sessions, 0, zap.NewNop(), opts...),
		user:     user,
	}
}

func TestIssueProducesOpaqueToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	token, expiresAt, err := f.manager.Issue(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("len(token) = %d, want 64 hex chars", len(token))
	}
	if want := f.clock.Now().Add(7 * 24 * time.Hour); !expiresAt.Equal(want) {
		t.Errorf("expiresAt = %v, want %v", expiresAt, want)
	}

	other, _, err := f.manager.Issue(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("second Issue() error: %v", err)
	}
	if other == token {
		t.Error("two sessions share a token")
	}

	row, err := f.sessions.GetByTokenHash(ctx, token)
	if err != nil {
		t.Fatalf("GetByTokenHash() error: %v", err)
	}
	if row != nil {
		t.Error("raw token found in store; only the digest may be stored")
	}
}

func TestIssueUsesInjectedRandom(t *testing.T) {
	f := newSessionFixture(t, WithRandom(bytes.NewReader(bytes.Repeat([]byte{0xab}, 32))))
	token, _, err := f.manager.Issue(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if token != strings.Repeat("ab", 32) {
		t.Errorf("token = %q, want deterministic value", token)
	}
}

func TestIssueFailsWhenRandomExhausted(t *testing.T) {
	f := newSessionFixture(t, WithRandom(bytes.NewReader([]byte{1, 2, 3})))
	if _, _, err := f.manager.Issue(context.Background(), f.user.ID); err == nil {
		t.Fatal("Issue() succeeded with a short random source")
	}
	if f.sessions.Len() != 0 {
		t.Errorf("stored %d sessions after failure, want 0", f.sessions.Len())
	}
}

func TestResolve(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	token, _, err := f.manager.Issue(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	identity, err := f.manager.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if identity == nil || identity.ID != f.user.ID || identity.Email != "ops@example.com" || identity.Role != domain.AdminRoleAdmin {
		t.Fatalf("Resolve() = %+v, want identity for %s", identity, f.user.ID)
	}

	for _, tok := range []string{"", "deadbeef", strings.Repeat("0", 64)} {
		got, err := f.manager.Resolve(ctx, tok)
		if err != nil || got != nil {
			t.Errorf("Resolve(%q) = %v, %v; want nil, nil", tok, got, err)
		}
	}
}

func TestResolveExpiresAtBoundary(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	token, expiresAt, err := f.manager.Issue(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	f.clock.t = expiresAt.Add(-time.Nanosecond)
	if identity, _ := f.manager.Resolve(ctx, token); identity == nil {
		t.Fatal("session rejected before expiry")
	}

	f.clock.t = expiresAt
	identity, err := f.manager.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if identity != nil {
		t.Fatal("session accepted at its expiry instant")
	}
	if f.sessions.Len() != 0 {
		t.Errorf("expired session not deleted on read, %d left", f.sessions.Len())
	}

	f.clock.t = expiresAt.Add(-time.Hour)
	if identity, _ := f.manager.Resolve(ctx, token); identity != nil {
		t.Error("deleted session came back after the clock moved")
	}
}

type failingDeleteStore struct {
	*memory.SessionStore
}

func (failingDeleteStore) DeleteByTokenHash(context.Context, string) error {
	return errors.New("database unavailable")
}

func TestResolveExpiredIgnoresDeleteFailure(t *testing.T) {
	users := memory.NewUserStore()
	store := failingDeleteStore{memory.NewSessionStore(users)}
	clock := &fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	core, logs := observer.New(zap.WarnLevel)
	manager := NewSessionManager(store, time.Hour, zap.New(core), WithClock(clock.Now))

	ctx := context.Background()
	user := &domain.AdminUser{Email: "a@example.com", Role: domain.AdminRoleEditor}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, _, err := manager.Issue(ctx, user.ID)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	clock.Advance(2 * time.Hour)
	identity, err := manager.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil when cleanup fails", err)
	}
	if identity != nil {
		t.Fatal("expired session resolved")
	}
	if logs.Len() != 1 {
		t.Fatalf("logged %d warnings, want 1", logs.Len())
	}
	for _, field := range logs.All()[0].Context {
		if field.String == token || field.String == HashToken(token) {
			t.Errorf("log field %q leaks the token", field.Key)
		}
	}
}

func TestRevoke(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	token, _, err := f.manager.Issue(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if err := f.manager.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke() error: %v", err)
	}
	if identity, _ := f.manager.Resolve(ctx, token); identity != nil {
		t.Fatal("revoked session still resolves")
	}
	for _, tok := range []string{token, "", "unknown"} {
		if err := f.manager.Revoke(ctx, tok); err != nil {
			t.Errorf("Revoke(%q) error = %v, want nil", tok, err)
		}
	}
}

func TestRevokeLeavesOtherSessions(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	first, _, _ := f.manager.Issue(ctx, f.user.ID)
	second, _, _ := f.manager.Issue(ctx, f.user.ID)

	if err := f.manager.Revoke(ctx, first); err != nil {
		t.Fatalf("Revoke() error: %v", err)
	}
	if identity, _ := f.manager.Resolve(ctx, second); identity == nil {
		t.Error("revoking one session ended another")
	}
}

func TestIssueLogsNoToken(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	users := memory.NewUserStore()
	manager := NewSessionManager(memory.NewSessionStore(users), 0, zap.New(core))

	token, _, err := manager.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	for _, entry := range logs.All() {
		if strings.Contains(entry.Message, token) {
			t.Error("token in log message")
		}
		for _, field := range entry.Context {
			if field.String == token {
				t.Errorf("log field %q contains the token", field.Key)
			}
		}
	}
}
