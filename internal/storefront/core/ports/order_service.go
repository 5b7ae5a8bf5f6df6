package ports

import (
	"context"

	"github.com/shopdeploy/storefront-orders/internal/storefront/core/domain/entity"
)

// OrderService is the port for the remote order service. Implementations
// must translate transport failures into *ServiceError so callers can
// branch on Kind without knowing the wire protocol.
type OrderService interface {
	// FetchMine returns the authenticated customer's orders.
	FetchMine(ctx context.Context) ([]*entity.Order, error)

	// FetchOne returns a single order by id.
	FetchOne(ctx context.Context, orderID string) (*entity.Order, error)

	// Cancel asks the service to cancel an order and returns the updated
	// record (expected CurrentStatus = cancelled).
	Cancel(ctx context.Context, orderID string) (*entity.Order, error)
}
