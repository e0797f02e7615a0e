package ports

import (
	"context"

	"toyrental/internal/core/domain/model/kernel"
	"toyrental/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their item and delivery children; Get always returns
// the complete aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items and
	// deliveries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// delivery status changes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextNumber returns the next sequential order number for the given
	// year. The read-and-increment is serialized by the storage layer so
	// concurrent checkouts never observe the same value.
	NextNumber(ctx context.Context, year int) (int, error)
}
