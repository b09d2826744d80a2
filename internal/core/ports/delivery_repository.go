package ports

import (
	"context"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
)

// DeliverySnapshot answers read-only questions about an order's delivery for
// the order lifecycle guards.
type DeliverySnapshot interface {
	// ExistsForOrder reports whether a delivery record exists for the order.
	ExistsForOrder(ctx context.Context, orderID kernel.ID) (bool, error)

	// IsDeliveredForOrder reports whether the order's delivery is DELIVERED.
	// Returns false when no delivery exists.
	IsDeliveredForOrder(ctx context.Context, orderID kernel.ID) (bool, error)
}

// DeliveryRepository defines the persistence contract for vehicle delivery
// aggregates. An order has at most one delivery; Add fails on a duplicate.
type DeliveryRepository interface {
	DeliverySnapshot

	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.VehicleDelivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.VehicleDelivery) error

	// Get retrieves a delivery aggregate by its identifier.
	Get(ctx context.Context, id kernel.ID) (*delivery.VehicleDelivery, error)

	// GetByOrder retrieves the delivery belonging to an order.
	GetByOrder(ctx context.Context, orderID kernel.ID) (*delivery.VehicleDelivery, error)
}
