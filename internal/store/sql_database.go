package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"notewell/internal/config"
	"notewell/internal/logger"
	"notewell/migrations"
)

const (
	retryAttempts    = 3
	retryBaseBackoff = 100 * time.Millisecond
)

// DB wraps a database/sql connection together with the dialect-specific
// pieces repositories need: a squirrel statement builder configured with the
// right placeholder format and an error classifier for retry decisions.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// NewConnect opens a database connection for the configured DSN. A DSN with a
// "postgres://" or "postgresql://" scheme selects the PostgreSQL backend; any
// other value is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// retry runs op, repeating it after a short backoff when the connection's
// error classifier marks the failure as transient. At most retryAttempts
// attempts are made; the last error is returned unchanged.
func (db *DB) retry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = op()
		if err == nil || attempt == retryAttempts {
			return err
		}
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(retryBaseBackoff * time.Duration(attempt)):
		}
	}
}

// queryContext is QueryContext wrapped in classifier-driven retries.
func (db *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	var rows *sql.Rows
	err := db.retry(ctx, func() error {
		var queryErr error
		rows, queryErr = db.DB.QueryContext(ctx, query, args...)
		return queryErr
	})

	return rows, err
}

// execContext is ExecContext wrapped in classifier-driven retries.
func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	err := db.retry(ctx, func() error {
		var execErr error
		result, execErr = db.DB.ExecContext(ctx, query, args...)
		return execErr
	})

	return result, err
}
