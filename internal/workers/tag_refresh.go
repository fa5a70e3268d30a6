package workers

import (
	"context"
	"sync"
	"time"

	"notewell/internal/logger"
	"notewell/internal/workspace"
)

// tagRefreshWorker periodically re-fetches the tag catalog so the tag chips
// stay current even when notes are modified from another session. Refresh
// failures are logged and the previous catalog is kept.
type tagRefreshWorker struct {
	coordinator *workspace.Coordinator
	interval    time.Duration

	done     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func newTagRefreshWorker(coordinator *workspace.Coordinator, interval time.Duration, logger *logger.Logger) *tagRefreshWorker {
	return &tagRefreshWorker{
		coordinator: coordinator,
		interval:    interval,
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Run starts the refresh loop in its own goroutine. A non-positive interval
// disables the worker.
func (w *tagRefreshWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("tag refresh worker disabled")
		return
	}

	go w.loop()
}

// Stop signals the refresh loop to finish.
func (w *tagRefreshWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}

func (w *tagRefreshWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			w.logger.Info().Msg("tag refresh worker stopped")
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			if err := w.coordinator.RefreshTags(ctx); err != nil {
				w.logger.Warn().Err(err).Msg("background tag refresh failed")
			}
			cancel()
		}
	}
}
