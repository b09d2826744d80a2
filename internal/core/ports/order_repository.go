package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Add assigns the store-generated identifier and contract number back onto
// the aggregate; Update applies a compare-and-swap on the stored version and
// returns a ConflictError when a concurrent writer won.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its detail lines.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllByAgency retrieves every order belonging to an agency,
	// newest first.
	GetAllByAgency(ctx context.Context, agencyID kernel.ID) ([]*order.Order, error)
}
