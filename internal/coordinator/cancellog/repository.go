package cancellog

import "context"

// Repository is the port for persisting cancel log entries. The coordinator
// depends on this abstraction, not on SQLite, so tests can use an in-memory
// implementation and a nil repository disables auditing entirely.
type Repository interface {
	// Save appends one row; the log is append-only, never an upsert.
	Save(ctx context.Context, entry *Entry) error
}
