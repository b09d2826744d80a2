package ports

import (
	"context"

	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/kernel"
)

// ImportRequestRepository defines the persistence contract for import request
// aggregates.
type ImportRequestRepository interface {
	// Add persists a new import request aggregate to storage.
	Add(ctx context.Context, aggregate *intake.ImportRequest) error

	// Update persists changes to an existing import request aggregate.
	Update(ctx context.Context, aggregate *intake.ImportRequest) error

	// Get retrieves an import request aggregate with its line items.
	Get(ctx context.Context, id kernel.ID) (*intake.ImportRequest, error)

	// GetAllByAgency retrieves every request of an agency, newest first.
	GetAllByAgency(ctx context.Context, agencyID kernel.ID) ([]*intake.ImportRequest, error)
}
