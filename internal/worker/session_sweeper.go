package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/repository"
)

// SessionSweeper periodically deletes expired sessions. Resolution still
// checks expiry on read, so the sweeper only bounds table growth.
type SessionSweeper struct {
	sessions repository.SessionRepository
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewSessionSweeper(sessions repository.SessionRepository, interval time.Duration, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{sessions: sessions, interval: interval, logger: logger, now: time.Now}
}

// SweepOnce deletes every session expired at the current time.
func (s *SessionSweeper) SweepOnce(ctx context.Context) (int64, error) {
	removed, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("expired sessions swept", zap.Int64("removed", removed))
	}
	return removed, nil
}

// Run sweeps every interval until ctx is done. A non-positive interval
// returns immediately.
func (s *SessionSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("session sweep failed", zap.Error(err))
			}
		}
	}
}
