package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// SessionSweeper periodically removes expired sessions from storage.
// Expired sessions are already rejected at resolution time, so the sweeper
// only reclaims storage; a missed tick never extends a session's life.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration

	ctx    context.Context
	logger *logger.Logger
}

func NewSessionSweeper(ctx context.Context, sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		ctx:      ctx,
		logger:   logger,
	}
}

// Run starts the sweep loop in a background goroutine. The loop stops when
// the sweeper's context is cancelled.
func (s *SessionSweeper) Run() {
	go s.loop()
}

func (s *SessionSweeper) loop() {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionSweeper) sweep() {
	affected, err := s.sessions.DeleteExpired(s.ctx, time.Now().UTC())
	if err != nil {
		s.logger.Err(err).Msg("session sweep failed")
		return
	}

	if affected > 0 {
		s.logger.Info().Int64("deleted", affected).Msg("expired sessions removed")
	}
}
