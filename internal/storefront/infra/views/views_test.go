package views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdeploy/storefront-orders/internal/coordinator"
	"github.com/shopdeploy/storefront-orders/internal/pkg/notify"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/store"
	"github.com/shopdeploy/storefront-orders/internal/storefront/infra/adapters/service"
)

func confirmAlways(string) bool { return true }
func confirmNever(string) bool  { return false }

func sampleOrder(id string, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID: id,
		Items: []entity.OrderItem{
			{ID: id + "-i1", Title: "Wireless Mouse", Qty: 2, Price: 500},
		},
		ItemsPrice:    1000,
		ShippingPrice: 0,
		TaxPrice:      180,
		TotalAmount:   1180,
		CurrentStatus: status,
		PaymentMethod: "upi",
		PaymentStatus: entity.PaymentPending,
		ShippingAddress: entity.Address{
			FullName:     "Asha Raman",
			AddressLine1: "14 MG Road",
			City:         "Bengaluru",
			State:        "Karnataka",
			Pincode:      "560001",
			Phone:        "+91 98450 12345",
		},
		StatusHistory: []entity.StatusEvent{
			{Status: entity.StatusPending, Note: "Order placed", Timestamp: time.Now().Add(-time.Hour)},
		},
		CreatedAt: time.Now().Add(-time.Hour),
	}
}

func TestListViewEmptyState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := store.New(service.NewFakeOrderService())
	coord := coordinator.New(st, service.NewFakeOrderService(), nil)
	var out bytes.Buffer

	view := NewListView(st, coord, notify.NewRecorder(), confirmNever, &out)
	view.Mount(ctx)
	view.Render()

	assert.Contains(t, out.String(), "No Orders Yet")
	assert.NotContains(t, out.String(), "Please try again")
}

func TestListViewRendersOrders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := service.NewFakeOrderService(sampleOrder("0123456789abcdef", entity.StatusPending))
	st := store.New(fake)
	coord := coordinator.New(st, fake, nil)
	var out bytes.Buffer

	view := NewListView(st, coord, notify.NewRecorder(), confirmNever, &out)
	view.Mount(ctx)
	view.Render()

	rendered := out.String()
	assert.Contains(t, rendered, "Order #89ABCDEF")
	assert.Contains(t, rendered, "2 x Wireless Mouse")
	assert.Contains(t, rendered, "₹1,180.00")
	assert.Contains(t, rendered, "Cancel Order available")
}

func TestListViewHidesCancelForTerminalOrders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := service.NewFakeOrderService(sampleOrder("ord1", entity.StatusDelivered))
	st := store.New(fake)
	coord := coordinator.New(st, fake, nil)
	var out bytes.Buffer

	view := NewListView(st, coord, notify.NewRecorder(), confirmNever, &out)
	view.Mount(ctx)
	view.Render()

	assert.NotContains(t, out.String(), "Cancel Order available")
}

func TestDetailViewNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := service.NewFakeOrderService()
	st := store.New(fake)
	coord := coordinator.New(st, fake, nil)
	var out bytes.Buffer

	view := NewDetailView(st, coord, notify.NewRecorder(), confirmNever, &out)
	view.Show(ctx, "abc123")
	view.Render()

	rendered := out.String()
	assert.Contains(t, rendered, "Order not found")
	assert.Contains(t, rendered, "Back to Orders")
}

func TestDetailViewRendersBreakdown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := service.NewFakeOrderService(sampleOrder("ord1", entity.StatusProcessing))
	st := store.New(fake)
	coord := coordinator.New(st, fake, nil)
	var out bytes.Buffer

	view := NewDetailView(st, coord, notify.NewRecorder(), confirmNever, &out)
	view.Show(ctx, "ord1")
	view.Render()

	rendered := out.String()
	// Line total is computed from unit price and quantity.
	assert.Contains(t, rendered, "Total: ₹1,000.00")
	assert.Contains(t, rendered, "Shipping Price: FREE")
	assert.Contains(t, rendered, "Tax (18% GST):  ₹180.00")
	assert.Contains(t, rendered, "Total Amount:   ₹1,180.00")
	assert.Contains(t, rendered, "India")
	assert.Contains(t, rendered, "Method: UPI")
	assert.Contains(t, rendered, "Order Status History")
	assert.Contains(t, rendered, placeholderImage)
}

func TestDetailViewCancelDeclined(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := service.NewFakeOrderService(sampleOrder("ord1", entity.StatusPending))
	st := store.New(fake)
	coord := coordinator.New(st, fake, nil)
	recorder := notify.NewRecorder()

	view := NewDetailView(st, coord, recorder, confirmNever, &bytes.Buffer{})
	view.Show(ctx, "ord1")
	view.Cancel(ctx)

	assert.Empty(t, recorder.Successes)
	assert.Empty(t, recorder.Errors)
	assert.Equal(t, entity.StatusPending, st.Current().CurrentStatus)
}

func TestDetailViewCancelConfirmed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fake := service.NewFakeOrderService(sampleOrder("ord1", entity.StatusPending))
	st := store.New(fake)
	coord := coordinator.New(st, fake, nil)
	recorder := notify.NewRecorder()

	view := NewDetailView(st, coord, recorder, confirmAlways, &bytes.Buffer{})
	view.Show(ctx, "ord1")
	view.Cancel(ctx)

	require.Equal(t, []string{"Order cancelled successfully"}, recorder.Successes)
	assert.Equal(t, entity.StatusCancelled, st.Current().CurrentStatus)
}

// gatedCancelService parks Cancel between two channels so a test can render
// views while the call is still in flight.
type gatedCancelService struct {
	*service.FakeOrderService
	entered chan struct{}
	release chan struct{}
}

func (g *gatedCancelService) Cancel(ctx context.Context, orderID string) (*entity.Order, error) {
	close(g.entered)
	<-g.release
	return g.FakeOrderService.Cancel(ctx, orderID)
}

func TestListViewShowsCancellingWhileInFlight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gated := &gatedCancelService{
		FakeOrderService: service.NewFakeOrderService(sampleOrder("ord1", entity.StatusPending)),
		entered:          make(chan struct{}),
		release:          make(chan struct{}),
	}
	st := store.New(gated)
	coord := coordinator.New(st, gated, nil)
	recorder := notify.NewRecorder()
	var out bytes.Buffer

	view := NewListView(st, coord, recorder, confirmAlways, &out)
	view.Mount(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		view.CancelOrder(ctx, "ord1")
	}()
	<-gated.entered

	out.Reset()
	view.Render()
	assert.Contains(t, out.String(), "Cancelling...")
	assert.NotContains(t, out.String(), "Cancel Order available")

	close(gated.release)
	<-done

	out.Reset()
	view.Render()
	assert.NotContains(t, out.String(), "Cancelling...")
	assert.Contains(t, out.String(), "cancelled")
	assert.Equal(t, []string{"Order cancelled successfully"}, recorder.Successes)
}

func TestListViewCancelConflictNotifiesError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// The cache holds a stale cancellable copy while the service already
	// finalized the order, so the cancel comes back as a conflict.
	stale := service.NewFakeOrderService(sampleOrder("ord1", entity.StatusPending))
	fresh := service.NewFakeOrderService(sampleOrder("ord1", entity.StatusDelivered))
	st := store.New(stale)
	st.LoadMine(ctx)
	coord := coordinator.New(st, fresh, nil)
	recorder := notify.NewRecorder()

	view := NewListView(st, coord, recorder, confirmAlways, &bytes.Buffer{})
	view.CancelOrder(ctx, "ord1")

	require.Len(t, recorder.Errors, 1)
	assert.Contains(t, recorder.Errors[0], "finalized")
	assert.Empty(t, recorder.Successes)
}
