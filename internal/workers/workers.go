package workers

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the server runs. Currently
// this is the session sweeper that expires stale sessions.
func NewWorkers(ctx context.Context, storages *store.Storages, cfg config.App, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionSweeper(ctx, storages.SessionRepository, cfg.SessionSweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
