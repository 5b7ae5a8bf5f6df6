package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdeploy/storefront-orders/internal/order-service/app"
	"github.com/shopdeploy/storefront-orders/internal/order-service/httpx"
	"github.com/shopdeploy/storefront-orders/internal/pkg/cache"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
)

func devServer(t *testing.T, seed ...*entity.Order) *httptest.Server {
	t.Helper()
	book := app.NewOrderBook(seed...)
	handler := httpx.NewHandler(book, cache.NewMemoryCache("order-service-test"))
	srv := httptest.NewServer(httpx.NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv
}

func seedOrder(id string, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID: id,
		Items: []entity.OrderItem{
			{ID: id + "-i1", Title: "Bluetooth Keyboard", Qty: 1, Price: 2500, Image: "https://cdn.example.com/kb.jpg"},
		},
		ItemsPrice:    2500,
		ShippingPrice: 100,
		TaxPrice:      450,
		TotalAmount:   3050,
		CurrentStatus: status,
		PaymentMethod: "card",
		PaymentStatus: entity.PaymentPaid,
		PaymentID:     "pay_123",
		ShippingAddress: entity.Address{
			FullName:     "Ravi Kumar",
			AddressLine1: "22 Brigade Road",
			City:         "Bengaluru",
			State:        "Karnataka",
			Pincode:      "560025",
			Country:      "India",
			Phone:        "+91 99000 11223",
		},
		StatusHistory: []entity.StatusEvent{
			{Status: entity.StatusPending, Note: "Order placed", Timestamp: time.Now().Add(-2 * time.Hour).UTC()},
		},
		CreatedAt: time.Now().Add(-2 * time.Hour).UTC(),
	}
}

func TestFetchMineRoundTrip(t *testing.T) {
	t.Parallel()
	srv := devServer(t, seedOrder("ord-a", entity.StatusPending), seedOrder("ord-b", entity.StatusShipped))
	client := NewHTTPOrderService(srv.URL, "")

	orders, err := client.FetchMine(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "ord-a", orders[0].ID)
	assert.Equal(t, entity.StatusPending, orders[0].CurrentStatus)
	assert.Equal(t, "ord-b", orders[1].ID)
	assert.Equal(t, entity.StatusShipped, orders[1].CurrentStatus)

	first := orders[0]
	assert.Equal(t, 3050.0, first.TotalAmount)
	require.Len(t, first.Items, 1)
	assert.Equal(t, "Bluetooth Keyboard", first.Items[0].Title)
	assert.Equal(t, "Bengaluru", first.ShippingAddress.City)
	assert.Equal(t, entity.PaymentPaid, first.PaymentStatus)
	assert.NoError(t, first.Validate())
}

func TestFetchOneRoundTrip(t *testing.T) {
	t.Parallel()
	srv := devServer(t, seedOrder("ord-a", entity.StatusProcessing))
	client := NewHTTPOrderService(srv.URL, "")

	order, err := client.FetchOne(context.Background(), "ord-a")
	require.NoError(t, err)
	assert.Equal(t, "ord-a", order.ID)
	assert.Equal(t, entity.StatusProcessing, order.CurrentStatus)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, "Order placed", order.StatusHistory[0].Note)
}

func TestFetchOneNotFound(t *testing.T) {
	t.Parallel()
	srv := devServer(t)
	client := NewHTTPOrderService(srv.URL, "")

	_, err := client.FetchOne(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, ports.IsKind(err, ports.KindNotFound))
}

func TestCancelRoundTrip(t *testing.T) {
	t.Parallel()
	srv := devServer(t, seedOrder("ord-a", entity.StatusPending))
	client := NewHTTPOrderService(srv.URL, "")

	order, err := client.Cancel(context.Background(), "ord-a")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, order.CurrentStatus)
	require.Len(t, order.StatusHistory, 2)
	assert.Equal(t, "Cancelled by customer", order.StatusHistory[1].Note)

	// A refetch after cancel must see the cancelled state even through the
	// server's read cache.
	refetched, err := client.FetchOne(context.Background(), "ord-a")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, refetched.CurrentStatus)
}

func TestCancelTerminalOrderIsConflict(t *testing.T) {
	t.Parallel()
	srv := devServer(t, seedOrder("ord-a", entity.StatusDelivered))
	client := NewHTTPOrderService(srv.URL, "")

	_, err := client.Cancel(context.Background(), "ord-a")
	require.Error(t, err)
	assert.True(t, ports.IsKind(err, ports.KindConflict))

	var svcErr *ports.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "order is already finalized", svcErr.Message)
}

func TestUnreachableServerIsNetworkFailure(t *testing.T) {
	t.Parallel()
	srv := devServer(t)
	url := srv.URL
	srv.Close()

	client := NewHTTPOrderService(url, "")
	_, err := client.FetchMine(context.Background())
	require.Error(t, err)
	assert.True(t, ports.IsKind(err, ports.KindNetworkFailure))
}

func TestUnauthorizedMapsFromStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token_expired","message":"session expired"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPOrderService(srv.URL, "stale-token")
	_, err := client.FetchMine(context.Background())
	require.Error(t, err)
	assert.True(t, ports.IsKind(err, ports.KindUnauthorized))

	var svcErr *ports.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "session expired", svcErr.Message)
}

func TestUnexpectedStatusIsUnknown(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPOrderService(srv.URL, "")
	_, err := client.FetchOne(context.Background(), "ord-a")
	require.Error(t, err)
	assert.True(t, ports.IsKind(err, ports.KindUnknown))
}
