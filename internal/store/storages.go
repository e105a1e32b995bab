package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages aggregates every repository of the application behind one
// constructor so that cmd/server wires persistence in a single call.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	GroupRepository   GroupRepository
	TodoRepository    TodoRepository

	db *DB
}

// NewStorages connects to the configured database backend, applies the
// embedded migrations, and constructs all repositories over the shared
// connection.
//
// The backend is selected by cfg.DB.Driver; when empty it is inferred from
// the DSN (a postgres:// or postgresql:// scheme selects pgx, anything
// else is treated as a SQLite file path).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch resolveDriver(cfg.DB) {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		GroupRepository:   NewGroupRepository(db, log),
		TodoRepository:    NewTodoRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func resolveDriver(cfg config.DB) string {
	if cfg.Driver != "" {
		return cfg.Driver
	}

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return "pgx"
	}

	return "sqlite3"
}
