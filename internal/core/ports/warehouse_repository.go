package ports

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/warehouse"
)

// WarehouseReleaseNoteRepository defines the persistence contract for release
// note aggregates.
type WarehouseReleaseNoteRepository interface {
	// Add persists a new release note aggregate to storage.
	Add(ctx context.Context, aggregate *warehouse.WarehouseReleaseNote) error

	// Update persists changes to an existing release note aggregate.
	Update(ctx context.Context, aggregate *warehouse.WarehouseReleaseNote) error

	// Delete removes a note. Callers must check EnsureDeletable first.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves a release note aggregate by its identifier.
	Get(ctx context.Context, id kernel.ID) (*warehouse.WarehouseReleaseNote, error)

	// GetAllByAgency retrieves every note of an agency, newest first.
	GetAllByAgency(ctx context.Context, agencyID kernel.ID) ([]*warehouse.WarehouseReleaseNote, error)
}

// VehicleRepository defines the persistence contract for vehicle stock rows.
// The release workflow loads a note's vehicles and writes their new stock
// statuses in the same unit of work as the note itself.
type VehicleRepository interface {
	// Add persists a new vehicle row.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists a vehicle's stock status.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its identifier.
	Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)

	// GetAllByIDs retrieves the given vehicles. Returns an
	// ObjectNotFoundError if any id is absent.
	GetAllByIDs(ctx context.Context, ids []kernel.ID) ([]*vehicle.Vehicle, error)
}
