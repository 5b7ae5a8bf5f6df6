// Package store holds the session-scoped order cache: the single source of
// truth for order data and request status flags, consumed reactively by the
// list and detail views.
//
// All mutation happens inside this package. The cancellation coordinator
// reconciles through ApplyCancellation; views only read. Concurrent fetches
// targeting the same order are resolved last-write-wins by completion time:
// whichever remote call settles last determines the cached value.
package store

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
)

var tracer = otel.Tracer("storefront/store")

// LoadError is a fetch failure captured as data. Views read it instead of
// catching; nothing thrown by the service client crosses the store boundary.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string { return e.Message }
func (e *LoadError) Unwrap() error { return e.Err }

// Store caches the customer's orders for one browsing session. Create it at
// session start with New and drop it at logout; it holds no global state.
type Store struct {
	client ports.OrderService

	mu              sync.RWMutex
	orders          []*entity.Order
	index           map[string]int
	listLoading     bool
	listErr         *LoadError
	current         *entity.Order
	currentNotFound bool
	detailLoading   bool
	detailErr       *LoadError

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func New(client ports.OrderService) *Store {
	return &Store{
		client: client,
		index:  make(map[string]int),
		subs:   make(map[int]func()),
	}
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners fire after every state mutation, outside the store
// lock, so they may read back from the store freely.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	listeners := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// LoadMine fetches the caller's order set. On success the cached list is
// fully replaced, dropping orders the session no longer owns. On failure
// the prior list is left untouched and the error is recorded for the list
// view to surface.
func (s *Store) LoadMine(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "store.LoadMine")
	defer span.End()

	s.mu.Lock()
	s.listLoading = true
	s.listErr = nil
	s.mu.Unlock()
	s.notify()

	fetched, err := s.client.FetchMine(ctx)

	s.mu.Lock()
	s.listLoading = false
	if err != nil {
		s.listErr = &LoadError{Message: "could not load your orders", Err: err}
		s.mu.Unlock()
		slog.ErrorContext(ctx, "failed to fetch orders", "error", err)
		s.notify()
		return
	}

	orders := make([]*entity.Order, 0, len(fetched))
	index := make(map[string]int, len(fetched))
	for _, o := range fetched {
		if vErr := o.Validate(); vErr != nil {
			slog.WarnContext(ctx, "dropping malformed order from list", "order_id", o.ID, "error", vErr)
			continue
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	s.orders = orders
	s.index = index
	s.mu.Unlock()

	slog.InfoContext(ctx, "orders loaded", "count", len(orders))
	s.notify()
}

// LoadOne fetches a single order and makes it the currently viewed order.
// On any failure the currently viewed order is cleared; NotFound sets the
// explicit not-found sentinel so the detail view never shows a stale
// spinner, other failures record a detail-scoped error.
func (s *Store) LoadOne(ctx context.Context, orderID string) {
	ctx, span := tracer.Start(ctx, "store.LoadOne")
	span.SetAttributes(attribute.String("order.id", orderID))
	defer span.End()

	if orderID == "" {
		s.mu.Lock()
		s.current = nil
		s.currentNotFound = true
		s.detailLoading = false
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.detailLoading = true
	s.detailErr = nil
	s.currentNotFound = false
	s.mu.Unlock()
	s.notify()

	order, err := s.client.FetchOne(ctx, orderID)
	if err == nil {
		if vErr := order.Validate(); vErr != nil {
			err = vErr
		}
	}

	s.mu.Lock()
	s.detailLoading = false
	if err != nil {
		s.current = nil
		if ports.IsKind(err, ports.KindNotFound) {
			s.currentNotFound = true
		} else {
			s.detailErr = &LoadError{Message: "could not load this order", Err: err}
		}
		s.mu.Unlock()
		slog.ErrorContext(ctx, "failed to fetch order", "order_id", orderID, "error", err)
		s.notify()
		return
	}
	s.upsertLocked(order)
	s.current = order
	s.mu.Unlock()
	s.notify()
}

// Refresh re-fetches one order in the background to resync the cache with
// the server's authoritative state, e.g. after a cancel was rejected with a
// conflict. It touches neither loading flags nor the not-found sentinel;
// failures are logged and otherwise ignored.
func (s *Store) Refresh(ctx context.Context, orderID string) {
	ctx, span := tracer.Start(ctx, "store.Refresh")
	span.SetAttributes(attribute.String("order.id", orderID))
	defer span.End()

	order, err := s.client.FetchOne(ctx, orderID)
	if err != nil {
		slog.WarnContext(ctx, "order resync failed", "order_id", orderID, "error", err)
		return
	}
	if vErr := order.Validate(); vErr != nil {
		slog.WarnContext(ctx, "order resync returned malformed order", "order_id", orderID, "error", vErr)
		return
	}

	s.mu.Lock()
	s.upsertLocked(order)
	if s.current != nil && s.current.ID == order.ID {
		s.current = order
	}
	s.mu.Unlock()
	s.notify()
}

// ApplyCancellation replaces the cached entry for orderID with the record
// the cancel call returned, in both the list cache and the currently viewed
// slot when the ids match. It never creates an entry: cancellation only
// targets orders the session already knows about.
//
// Intended for the cancellation coordinator; views must not call it.
func (s *Store) ApplyCancellation(orderID string, updated *entity.Order) {
	s.mu.Lock()
	if i, ok := s.index[orderID]; ok {
		s.orders[i] = updated
	}
	if s.current != nil && s.current.ID == orderID {
		s.current = updated
	}
	s.mu.Unlock()
	s.notify()
}

// upsertLocked inserts or replaces one cache entry. Caller holds s.mu.
func (s *Store) upsertLocked(order *entity.Order) {
	if i, ok := s.index[order.ID]; ok {
		s.orders[i] = order
		return
	}
	s.index[order.ID] = len(s.orders)
	s.orders = append(s.orders, order)
}

// Get returns the cached order for id, if any.
func (s *Store) Get(orderID string) (*entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[orderID]
	if !ok {
		return nil, false
	}
	return s.orders[i], true
}

// Orders returns a snapshot of the cached list in its original order.
func (s *Store) Orders() []*entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) ListLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLoading
}

func (s *Store) ListErr() *LoadError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listErr
}

// Current returns the currently viewed order, or nil.
func (s *Store) Current() *entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// CurrentNotFound reports the explicit not-found sentinel, distinct from
// "still loading".
func (s *Store) CurrentNotFound() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentNotFound
}

func (s *Store) DetailLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detailLoading
}

func (s *Store) DetailErr() *LoadError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detailErr
}
