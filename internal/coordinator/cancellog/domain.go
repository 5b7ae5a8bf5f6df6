// Package cancellog defines an append-only audit trail of cancellation
// attempts. Each attempt writes one row when the remote call is issued and
// one when it settles, tagged with the active trace so a row can be joined
// directly with the distributed trace that produced it.
package cancellog

import "time"

// Status is the lifecycle state of one cancellation attempt.
type Status string

const (
	// StatusRequested: the remote cancel call has been issued.
	StatusRequested Status = "REQUESTED"
	// StatusCancelled: the remote call succeeded.
	StatusCancelled Status = "CANCELLED"
	// StatusFailed: the remote call settled with an error.
	StatusFailed Status = "FAILED"
)

// Entry is a single row in the cancel_logs table: a point-in-time snapshot
// of a cancellation attempt.
type Entry struct {
	// OrderID identifies the order being cancelled; multiple rows exist per
	// order, one per transition.
	OrderID string

	// Status is the attempt's state when this row was written.
	Status Status

	// ErrorMessage holds the failure reason on FAILED rows, empty otherwise.
	ErrorMessage string

	// TraceID is the W3C trace ID of the OpenTelemetry span active when the
	// row was written. Empty when no span was recording.
	TraceID string

	// SpanID pinpoints the exact span within the trace.
	SpanID string

	// UpdatedAt is the wall-clock time of this row.
	UpdatedAt time.Time
}
