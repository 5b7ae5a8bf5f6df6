// Package views renders the order store's state for a terminal. Views hold
// no business logic: they read store snapshots, trigger fetches on mount and
// delegate the cancel action to the coordinator.
package views

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopdeploy/storefront-orders/internal/coordinator"
	"github.com/shopdeploy/storefront-orders/internal/pkg/format"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/store"
)

const confirmCancelPrompt = "Are you sure you want to cancel this order?"

// ListView is the "My Orders" page.
type ListView struct {
	store    *store.Store
	coord    *coordinator.Coordinator
	notifier ports.Notifier
	confirm  ports.ConfirmFunc
	out      io.Writer
	mounted  bool
}

func NewListView(st *store.Store, coord *coordinator.Coordinator, notifier ports.Notifier, confirm ports.ConfirmFunc, out io.Writer) *ListView {
	return &ListView{store: st, coord: coord, notifier: notifier, confirm: confirm, out: out}
}

// Mount triggers the list fetch exactly once per mount.
func (v *ListView) Mount(ctx context.Context) {
	if v.mounted {
		return
	}
	v.mounted = true
	v.store.LoadMine(ctx)
}

// Render writes the current list state: loading, error, empty or populated.
func (v *ListView) Render() {
	fmt.Fprintln(v.out, "My Orders")
	fmt.Fprintln(v.out, "=========")

	if v.store.ListLoading() {
		fmt.Fprintln(v.out, "Loading your orders...")
		return
	}
	if err := v.store.ListErr(); err != nil {
		fmt.Fprintf(v.out, "%s Please try again.\n", err.Message)
		return
	}

	orders := v.store.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(v.out, "No Orders Yet")
		fmt.Fprintln(v.out, "You haven't placed any orders yet. Start shopping to see your orders here!")
		return
	}

	for _, o := range orders {
		v.renderOrder(o)
	}
}

func (v *ListView) renderOrder(o *entity.Order) {
	fmt.Fprintf(v.out, "\nOrder #%s  placed on %s\n", format.ShortRef(o.ID), format.Date(o.CreatedAt))
	fmt.Fprintf(v.out, "  %s  [%s:%s]\n", format.Price(o.TotalAmount), format.StatusColor(o.CurrentStatus), o.CurrentStatus)
	for _, item := range o.Items {
		fmt.Fprintf(v.out, "  %d x %s  %s\n", item.Qty, item.Title, format.Price(item.LineTotal()))
	}
	fmt.Fprintf(v.out, "  Shipping to: %s, %s\n", o.ShippingAddress.AddressLine1, o.ShippingAddress.City)
	if v.coord.InFlight(o.ID) {
		fmt.Fprintln(v.out, "  Cancelling...")
	} else if o.CanCancel() {
		fmt.Fprintln(v.out, "  [Cancel Order available]")
	}
}

// CancelOrder confirms intent and delegates to the coordinator. The outcome
// surfaces as a transient notification, never as persisted view state.
func (v *ListView) CancelOrder(ctx context.Context, orderID string) {
	order, ok := v.store.Get(orderID)
	if !ok || !order.CanCancel() {
		return
	}
	if !v.confirm(confirmCancelPrompt) {
		return
	}
	outcome, err := v.coord.Cancel(ctx, orderID)
	notifyOutcome(v.notifier, outcome, err)
}

// notifyOutcome translates a settled cancel into the toast the original
// storefront showed.
func notifyOutcome(notifier ports.Notifier, outcome coordinator.Outcome, err error) {
	switch outcome {
	case coordinator.OutcomeCancelled:
		notifier.Success("Order cancelled successfully")
	case coordinator.OutcomeFailed:
		message := "Failed to cancel order"
		var svcErr *ports.ServiceError
		if errors.As(err, &svcErr) && svcErr.Message != "" {
			message = svcErr.Message
		}
		notifier.Error(message)
	}
	// Already-in-progress and not-cancellable are silent: the action is
	// disabled or hidden in the UI and the coordinator logged the event.
}
