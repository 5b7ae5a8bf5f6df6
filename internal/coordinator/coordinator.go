// Package coordinator drives order cancellation: the only mutating,
// irreversible action in this subsystem. It serializes cancel requests per
// order so a double click or two views showing the same order can never
// issue two remote cancel calls inside one in-flight window.
package coordinator

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shopdeploy/storefront-orders/internal/coordinator/cancellog"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/store"
)

var tracer = otel.Tracer("storefront/coordinator")

// Outcome is what a Cancel caller observes once the call settles.
type Outcome string

const (
	// OutcomeCancelled: the remote call succeeded and the cache was
	// reconciled.
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeAlreadyInProgress: another cancel for the same order is in
	// flight; no second remote request was issued.
	OutcomeAlreadyInProgress Outcome = "already_in_progress"
	// OutcomeNotCancellable: the order is unknown to the cache or already
	// terminal. Redundant UI triggers land here as a no-op.
	OutcomeNotCancellable Outcome = "not_cancellable"
	// OutcomeFailed: the remote call was issued and failed; the returned
	// error carries the reason.
	OutcomeFailed Outcome = "failed"
)

// Coordinator owns the per-order in-flight set. The set is empty at rest;
// an id is present exactly while its cancel request has been issued but not
// yet settled.
type Coordinator struct {
	store  *store.Store
	client ports.OrderService
	logs   cancellog.Repository // nil-safe: audit logging skipped if nil

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New wires a coordinator to the store it reconciles and the service client
// it issues cancels through. logs may be nil.
func New(st *store.Store, client ports.OrderService, logs cancellog.Repository) *Coordinator {
	return &Coordinator{
		store:    st,
		client:   client,
		logs:     logs,
		inFlight: make(map[string]struct{}),
	}
}

// InFlight reports whether a cancel for orderID is currently running.
// Views use it to render a per-order "Cancelling" state.
func (c *Coordinator) InFlight(orderID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, busy := c.inFlight[orderID]
	return busy
}

// Cancel runs the cancellation workflow for one order. User intent must
// already be confirmed by the caller.
//
// The order must exist in the cache with a non-terminal status, and no other
// cancel for the same id may be in flight; otherwise Cancel returns without
// contacting the remote service. The in-flight entry is released on every
// exit path, so a failed attempt never blocks a retry.
func (c *Coordinator) Cancel(ctx context.Context, orderID string) (Outcome, error) {
	order, ok := c.store.Get(orderID)
	if !ok {
		return OutcomeNotCancellable, nil
	}
	if !order.CanCancel() {
		return OutcomeNotCancellable, nil
	}

	if !c.acquire(orderID) {
		slog.InfoContext(ctx, "cancel already in progress", "order_id", orderID)
		return OutcomeAlreadyInProgress, nil
	}
	defer c.release(orderID)

	ctx, span := tracer.Start(ctx, "coordinator.Cancel")
	span.SetAttributes(attribute.String("order.id", orderID))
	defer span.End()

	c.audit(ctx, orderID, cancellog.StatusRequested, "")

	updated, err := c.client.Cancel(ctx, orderID)
	if err != nil {
		slog.ErrorContext(ctx, "cancel failed", "order_id", orderID, "error", err)
		c.audit(ctx, orderID, cancellog.StatusFailed, err.Error())
		if ports.IsKind(err, ports.KindConflict) {
			// The server thinks the order is already finalized; resync so
			// the cache reflects its authoritative status.
			c.store.Refresh(ctx, orderID)
		}
		return OutcomeFailed, err
	}

	c.store.ApplyCancellation(orderID, updated)
	c.audit(ctx, orderID, cancellog.StatusCancelled, "")
	slog.InfoContext(ctx, "order cancelled", "order_id", orderID)
	return OutcomeCancelled, nil
}

// acquire adds orderID to the in-flight set, returning false if it was
// already present.
func (c *Coordinator) acquire(orderID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[orderID]; busy {
		return false
	}
	c.inFlight[orderID] = struct{}{}
	return true
}

func (c *Coordinator) release(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, orderID)
}

func (c *Coordinator) audit(ctx context.Context, orderID string, status cancellog.Status, errMsg string) {
	if c.logs == nil {
		return
	}
	entry := cancellog.NewEntry(ctx, orderID, status, errMsg)
	if err := c.logs.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to write cancel log", "order_id", orderID, "error", err)
	}
}
