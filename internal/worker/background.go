package worker

import (
	"context"
	"sync"

	"github.com/spec-kit/pilgrim-travel/internal/service"
)

// Background bundles the in-process jobs that run alongside the HTTP server.
type Background struct {
	Notifications *service.NotificationService
	Sweeper       *SessionSweeper
	// Tasks are extra loops such as limiter cleanup; each must return when
	// its context is done.
	Tasks []func(context.Context)
}

// Start subscribes the notification handlers and launches the periodic
// jobs. The returned wait function blocks until every job has returned,
// which happens once ctx is cancelled.
func (b Background) Start(ctx context.Context) (wait func()) {
	if b.Notifications != nil {
		b.Notifications.RegisterHandlers()
	}

	loops := append([]func(context.Context){}, b.Tasks...)
	if b.Sweeper != nil {
		loops = append(loops, b.Sweeper.Run)
	}

	var wg sync.WaitGroup
	for _, loop := range loops {
		wg.Add(1)
		go func(run func(context.Context)) {
			defer wg.Done()
			run(ctx)
		}(loop)
	}
	return wg.Wait
}
