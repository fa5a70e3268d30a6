package workers

import (
	"notewell/internal/config"
	"notewell/internal/logger"
	"notewell/internal/workspace"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client's background workers.
func NewWorkers(coordinator *workspace.Coordinator, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newTagRefreshWorker(coordinator, cfg.TagRefreshInterval, logger),
		},
	}
}

// Run starts every worker. Workers spawn their own goroutines and return
// immediately.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop signals every worker to finish.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
