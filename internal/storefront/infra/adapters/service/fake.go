package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
)

// Ensure FakeOrderService implements the port at compile time.
var _ ports.OrderService = (*FakeOrderService)(nil)

// FakeOrderService is an in-memory implementation of ports.OrderService
// intended for development and tests only. It mirrors the remote service's
// cancel semantics, including the conflict on terminal orders.
type FakeOrderService struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	seq    []string
}

// NewFakeOrderService returns a fake pre-populated with the given orders.
func NewFakeOrderService(seed ...*entity.Order) *FakeOrderService {
	f := &FakeOrderService{orders: make(map[string]*entity.Order)}
	for _, o := range seed {
		f.orders[o.ID] = o
		f.seq = append(f.seq, o.ID)
	}
	return f
}

func (f *FakeOrderService) FetchMine(ctx context.Context) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Order, 0, len(f.seq))
	for _, id := range f.seq {
		out = append(out, f.orders[id])
	}
	return out, nil
}

func (f *FakeOrderService) FetchOne(ctx context.Context, orderID string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, &ports.ServiceError{Kind: ports.KindNotFound, Message: "order not found"}
	}
	return o, nil
}

func (f *FakeOrderService) Cancel(ctx context.Context, orderID string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, &ports.ServiceError{Kind: ports.KindNotFound, Message: "order not found"}
	}
	if o.CurrentStatus.IsTerminal() {
		return nil, &ports.ServiceError{Kind: ports.KindConflict, Message: "order is already finalized"}
	}

	cancelled := *o
	cancelled.CurrentStatus = entity.StatusCancelled
	cancelled.StatusHistory = append(append([]entity.StatusEvent{}, o.StatusHistory...), entity.StatusEvent{
		Status:    entity.StatusCancelled,
		Note:      "Cancelled by customer",
		Timestamp: time.Now().UTC(),
	})
	f.orders[orderID] = &cancelled
	return &cancelled, nil
}
