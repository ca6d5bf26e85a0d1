// Package database wraps a pgx-driven *sql.DB with the transaction helpers
// the repositories need. Two scopes are offered: WithTx (default isolation,
// used for plain writes) and WithSerializableTx (SERIALIZABLE, used where a
// read must stay consistent with a subsequent write in the same scope).
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tapestack/tapestack/pkg/logger"
)

// Database is the shared connection pool handed to repositories.
type Database struct {
	db *sql.DB
}

// NewPool opens a pgx stdlib pool against dbURL and verifies connectivity.
func NewPool(ctx context.Context, dbURL string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Debug("database pool opened", "max_open_conns", 25)
	return &Database{db: db}, nil
}

// DB returns the underlying *sql.DB for non-transactional queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a transaction at the default isolation level.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withTx(ctx, nil, fn)
}

// WithSerializableTx runs fn inside a SERIALIZABLE transaction. Postgres
// aborts one of two transactions whose read/write sets would produce
// write-skew; callers should translate SQLSTATE 40001 into their domain
// conflict error.
func (d *Database) WithSerializableTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (d *Database) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("rollback tx after %w: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks connectivity for the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close shuts the pool down.
func (d *Database) Close() {
	_ = d.db.Close()
}
