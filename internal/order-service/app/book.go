// Package app holds the development order service's in-memory order book.
// It stands in for the real remote order service so the storefront can be
// exercised end to end without backend infrastructure.
package app

import (
	"errors"
	"sync"
	"time"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrAlreadyFinal: cancel attempted on a delivered or cancelled order.
	ErrAlreadyFinal = errors.New("order is already finalized")
)

// OrderBook is the authoritative order state for one dev-server process.
type OrderBook struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
	seq    []string
}

func NewOrderBook(seed ...*entity.Order) *OrderBook {
	b := &OrderBook{orders: make(map[string]*entity.Order)}
	for _, o := range seed {
		b.orders[o.ID] = o
		b.seq = append(b.seq, o.ID)
	}
	return b
}

// List returns all orders in insertion order.
func (b *OrderBook) List() []*entity.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*entity.Order, 0, len(b.seq))
	for _, id := range b.seq {
		out = append(out, b.orders[id])
	}
	return out
}

func (b *OrderBook) Get(orderID string) (*entity.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.orders[orderID]
	return o, ok
}

// Cancel transitions an order to cancelled and appends the status event.
// Terminal orders return ErrAlreadyFinal; the HTTP layer maps that to 409.
func (b *OrderBook) Cancel(orderID string) (*entity.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if o.CurrentStatus.IsTerminal() {
		return nil, ErrAlreadyFinal
	}

	cancelled := *o
	cancelled.CurrentStatus = entity.StatusCancelled
	cancelled.StatusHistory = append(append([]entity.StatusEvent{}, o.StatusHistory...), entity.StatusEvent{
		Status:    entity.StatusCancelled,
		Note:      "Cancelled by customer",
		Timestamp: time.Now().UTC(),
	})
	b.orders[orderID] = &cancelled
	return &cancelled, nil
}
