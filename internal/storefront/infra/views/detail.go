package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopdeploy/storefront-orders/internal/coordinator"
	"github.com/shopdeploy/storefront-orders/internal/pkg/format"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/store"
)

const (
	confirmCancelDetailPrompt = "Are you sure you want to cancel this order? This action cannot be undone."
	placeholderImage          = "https://via.placeholder.com/100"
)

// DetailView is the single-order page.
type DetailView struct {
	store    *store.Store
	coord    *coordinator.Coordinator
	notifier ports.Notifier
	confirm  ports.ConfirmFunc
	out      io.Writer
	lastID   string
}

func NewDetailView(st *store.Store, coord *coordinator.Coordinator, notifier ports.Notifier, confirm ports.ConfirmFunc, out io.Writer) *DetailView {
	return &DetailView{store: st, coord: coord, notifier: notifier, confirm: confirm, out: out}
}

// Show triggers the detail fetch once per distinct order id.
func (v *DetailView) Show(ctx context.Context, orderID string) {
	if orderID == v.lastID {
		return
	}
	v.lastID = orderID
	v.store.LoadOne(ctx, orderID)
}

// Render writes the current detail state: loading, not-found, error or the
// full order breakdown.
func (v *DetailView) Render() {
	if v.store.DetailLoading() {
		fmt.Fprintln(v.out, "Loading order...")
		return
	}
	if v.store.CurrentNotFound() {
		fmt.Fprintln(v.out, "Order not found")
		fmt.Fprintln(v.out, "Back to Orders: /orders")
		return
	}
	if err := v.store.DetailErr(); err != nil {
		fmt.Fprintf(v.out, "%s Please try again.\n", err.Message)
		return
	}
	order := v.store.Current()
	if order == nil {
		return
	}

	fmt.Fprintf(v.out, "Order #%s\n", format.ShortRef(order.ID))
	fmt.Fprintf(v.out, "Placed on %s\n", format.Date(order.CreatedAt))
	fmt.Fprintf(v.out, "%s  [%s:%s]\n", format.Price(order.TotalAmount), format.StatusColor(order.CurrentStatus), order.CurrentStatus)
	if v.coord.InFlight(order.ID) {
		fmt.Fprintln(v.out, "Cancelling Order...")
	} else if order.CanCancel() {
		fmt.Fprintln(v.out, "[Cancel This Order available]")
	}

	fmt.Fprintln(v.out, "\nOrder Items")
	for _, item := range order.Items {
		image := item.Image
		if image == "" {
			image = placeholderImage
		}
		fmt.Fprintf(v.out, "  %s (%s)\n", item.Title, image)
		fmt.Fprintf(v.out, "    Quantity: %d  Price: %s  Total: %s\n",
			item.Qty, format.Price(item.Price), format.Price(item.LineTotal()))
	}

	fmt.Fprintln(v.out, "\nOrder Summary")
	fmt.Fprintf(v.out, "  Items Price:    %s\n", format.Price(order.ItemsPrice))
	if order.ShippingPrice == 0 {
		fmt.Fprintln(v.out, "  Shipping Price: FREE")
	} else {
		fmt.Fprintf(v.out, "  Shipping Price: %s\n", format.Price(order.ShippingPrice))
	}
	fmt.Fprintf(v.out, "  Tax (18%% GST):  %s\n", format.Price(order.TaxPrice))
	fmt.Fprintf(v.out, "  Total Amount:   %s\n", format.Price(order.TotalAmount))

	addr := order.ShippingAddress
	fmt.Fprintln(v.out, "\nShipping Address")
	fmt.Fprintf(v.out, "  %s\n", addr.FullName)
	fmt.Fprintf(v.out, "  %s\n", addr.AddressLine1)
	if addr.AddressLine2 != "" {
		fmt.Fprintf(v.out, "  %s\n", addr.AddressLine2)
	}
	fmt.Fprintf(v.out, "  %s, %s %s\n", addr.City, addr.State, addr.Pincode)
	fmt.Fprintf(v.out, "  %s\n", addr.DisplayCountry())
	fmt.Fprintf(v.out, "  Phone: %s\n", addr.Phone)

	fmt.Fprintln(v.out, "\nPayment Information")
	fmt.Fprintf(v.out, "  Method: %s\n", strings.ToUpper(order.PaymentMethod))
	fmt.Fprintf(v.out, "  Status: %s [%s]\n", strings.ToUpper(string(order.PaymentStatus)), format.PaymentStatusColor(order.PaymentStatus))
	if order.PaymentID != "" {
		fmt.Fprintf(v.out, "  Payment ID: %s\n", order.PaymentID)
	}

	if len(order.StatusHistory) > 0 {
		fmt.Fprintln(v.out, "\nOrder Status History")
		for _, ev := range order.StatusHistory {
			fmt.Fprintf(v.out, "  %s  %s", format.Date(ev.Timestamp), ev.Status)
			if ev.Note != "" {
				fmt.Fprintf(v.out, "  (%s)", ev.Note)
			}
			fmt.Fprintln(v.out)
		}
	}
}

// Cancel confirms intent for the currently viewed order and delegates to
// the coordinator.
func (v *DetailView) Cancel(ctx context.Context) {
	order := v.store.Current()
	if order == nil || !order.CanCancel() {
		return
	}
	if !v.confirm(confirmCancelDetailPrompt) {
		return
	}
	outcome, err := v.coord.Cancel(ctx, order.ID)
	notifyOutcome(v.notifier, outcome, err)
}
