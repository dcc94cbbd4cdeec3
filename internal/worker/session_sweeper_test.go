package worker

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/repository/memory"
)

func TestSweepOnce(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserStore()
	sessions := memory.NewSessionStore(users)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, exp := range []time.Duration{-time.Hour, 0, time.Hour} {
		s := &domain.Session{UserID: "u", TokenHash: string(rune('a' + i)), ExpiresAt: now.Add(exp)}
		if err := sessions.Create(ctx, s); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	sweeper := NewSessionSweeper(sessions, time.Minute, zap.NewNop())
	sweeper.now = func() time.Time { return now }

	removed, err := sweeper.SweepOnce(ctx)
	if err != nil {
		t.Fatalf("SweepOnce() error: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if sessions.Len() != 1 {
		t.Errorf("Len() = %d, want 1 live session", sessions.Len())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sweeper := NewSessionSweeper(memory.NewSessionStore(memory.NewUserStore()), time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestRunDisabled(t *testing.T) {
	sweeper := NewSessionSweeper(nil, 0, zap.NewNop())
	sweeper.Run(context.Background())
}
