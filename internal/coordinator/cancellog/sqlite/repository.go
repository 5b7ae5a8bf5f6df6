// Package sqlite provides a SQLite-backed implementation of
// cancellog.Repository.
//
// WAL mode is enabled on Open so readers never block the coordinator's
// writes while a status view reads the log.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopdeploy/storefront-orders/internal/coordinator/cancellog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// keeping the storefront binary trivially cross-compilable.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on Open. The table is append-only: each
// row is an immutable event in a cancellation attempt's lifecycle.
const schema = `
CREATE TABLE IF NOT EXISTS cancel_logs (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Order being cancelled. Not UNIQUE: one row per transition.
    order_id       TEXT NOT NULL,

    -- REQUESTED, CANCELLED or FAILED.
    status         TEXT NOT NULL,

    -- Failure reason on FAILED rows.
    error_message  TEXT NOT NULL DEFAULT '',

    -- W3C trace_id / span_id from the active OTel span, if any.
    trace_id       TEXT NOT NULL DEFAULT '',
    span_id        TEXT NOT NULL DEFAULT '',

    -- RFC3339 stored as TEXT, the SQLite idiom.
    updated_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cancel_logs_order_id ON cancel_logs(order_id, updated_at);
CREATE INDEX IF NOT EXISTS idx_cancel_logs_trace_id ON cancel_logs(trace_id);
`

// Repository is the SQLite implementation of cancellog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts one cancel log row. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *cancellog.Entry) error {
	const q = `
		INSERT INTO cancel_logs
			(order_id, status, error_message, trace_id, span_id, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		string(entry.Status),
		entry.ErrorMessage,
		entry.TraceID,
		entry.SpanID,
		entry.UpdatedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save cancel log for %q: %w", entry.OrderID, err)
	}
	return nil
}

// GetLatest returns the most recent log row for one order.
func (r *Repository) GetLatest(ctx context.Context, orderID string) (*cancellog.Entry, error) {
	const q = `
		SELECT order_id, status, error_message, trace_id, span_id, updated_at
		FROM   cancel_logs
		WHERE  order_id = ?
		ORDER  BY updated_at DESC, id DESC
		LIMIT  1`

	row := r.db.QueryRowContext(ctx, q, orderID)

	var entry cancellog.Entry
	var updatedAt string
	err := row.Scan(
		&entry.OrderID,
		&entry.Status,
		&entry.ErrorMessage,
		&entry.TraceID,
		&entry.SpanID,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: no cancel log for %q", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get latest for %q: %w", orderID, err)
	}

	entry.UpdatedAt, err = parseRFC3339(updatedAt)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
