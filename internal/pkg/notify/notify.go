// Package notify implements the user-facing notification collaborator:
// fire-and-forget success/error messages standing in for toast popups.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
)

var _ ports.Notifier = (*Slog)(nil)

// Slog emits notifications as structured log records.
type Slog struct{}

func NewSlog() *Slog { return &Slog{} }

func (Slog) Success(message string) { slog.Info("notification", "level", "success", "message", message) }
func (Slog) Error(message string)   { slog.Warn("notification", "level", "error", "message", message) }

var _ ports.Notifier = (*Writer)(nil)

// Writer prints notifications to a terminal-style writer.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer { return &Writer{out: out} }

func (w *Writer) Success(message string) { w.print("OK", message) }
func (w *Writer) Error(message string)   { w.print("ERROR", message) }

func (w *Writer) print(prefix, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "[%s] %s\n", prefix, message)
}

var _ ports.Notifier = (*Recorder)(nil)

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}
