// Package store implements PostgreSQL persistence for users and tasks.
// Repositories translate driver-level failures into sentinel errors that the
// service and transport layers match with errors.Is.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/taskflow/go-task-flow/internal/config"
	"github.com/taskflow/go-task-flow/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the ping timeout used by
// readiness probes. Single-row INSERT/UPDATE/DELETE statements are the only
// write unit in this schema, so no cross-statement transactions are needed.
type DB struct {
	*sql.DB
	pingTimeout time.Duration
	logger      *logger.Logger
}

// NewConnectPostgres opens a pgx-backed database/sql connection, applies the
// pool limits, and verifies connectivity with a bounded ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:          conn,
		pingTimeout: cfg.PingTimeout,
		logger:      log,
	}, nil
}

// Ready probes the database with the configured ping timeout. A non-nil
// return means the store must be treated as unavailable and API requests
// rejected with 503 instead of hanging.
func (db *DB) Ready(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, db.pingTimeout)
	defer cancel()

	return db.PingContext(pingCtx)
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns the empty string for non-postgres failures.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
