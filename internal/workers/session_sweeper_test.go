package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type mockSessionRepository struct {
	deleteExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepository) CreateSession(_ context.Context, _ models.Session) error {
	return nil
}

func (m *mockSessionRepository) GetSession(_ context.Context, _ string) (models.Session, error) {
	return models.Session{}, nil
}

func (m *mockSessionRepository) DeleteSession(_ context.Context, _ string) error {
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.deleteExpiredFn(ctx, now)
}

func TestSessionSweeper_SweepsPeriodically(t *testing.T) {
	var calls atomic.Int64
	swept := make(chan struct{}, 1)
	sessions := &mockSessionRepository{
		deleteExpiredFn: func(_ context.Context, now time.Time) (int64, error) {
			assert.Equal(t, time.UTC, now.Location())
			if calls.Add(1) == 1 {
				swept <- struct{}{}
			}
			return 3, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := NewSessionSweeper(ctx, sessions, 5*time.Millisecond, logger.Nop())
	sweeper.Run()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never swept")
	}
}

func TestSessionSweeper_StopsOnContextCancel(t *testing.T) {
	var calls atomic.Int64
	sessions := &mockSessionRepository{
		deleteExpiredFn: func(_ context.Context, _ time.Time) (int64, error) {
			calls.Add(1)
			return 0, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	sweeper := NewSessionSweeper(ctx, sessions, time.Millisecond, logger.Nop())
	sweeper.Run()

	// Let at least one tick happen, then stop the loop.
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestSessionSweeper_SurvivesSweepFailure(t *testing.T) {
	var calls atomic.Int64
	second := make(chan struct{}, 1)
	sessions := &mockSessionRepository{
		deleteExpiredFn: func(_ context.Context, _ time.Time) (int64, error) {
			if calls.Add(1) == 2 {
				second <- struct{}{}
			}
			return 0, errors.New("storage gone")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := NewSessionSweeper(ctx, sessions, time.Millisecond, logger.Nop())
	sweeper.Run()

	// A failed sweep must not kill the loop; a second call proves it.
	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper stopped after first failure")
	}
}

func TestWorkers_RunStartsSessionSweeper(t *testing.T) {
	swept := make(chan struct{}, 1)
	sessions := &mockSessionRepository{
		deleteExpiredFn: func(_ context.Context, _ time.Time) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers := NewWorkers(ctx, &store.Storages{SessionRepository: sessions}, config.App{
		SessionSweepInterval: 5 * time.Millisecond,
	}, logger.Nop())
	workers.Run()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("session sweeper was not started")
	}
}
