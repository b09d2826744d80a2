package ports

import (
	"context"

	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/kernel"
)

// AppointmentRepository defines the persistence contract for test-drive
// appointment aggregates.
type AppointmentRepository interface {
	// Add persists a new appointment aggregate to storage.
	Add(ctx context.Context, aggregate *appointment.TestDriveAppointment) error

	// Update persists changes to an existing appointment aggregate.
	Update(ctx context.Context, aggregate *appointment.TestDriveAppointment) error

	// Delete removes an appointment. Callers must check EnsureDeletable first.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves an appointment aggregate by its identifier.
	Get(ctx context.Context, id kernel.ID) (*appointment.TestDriveAppointment, error)

	// GetAllByCustomer retrieves every appointment of a customer, soonest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*appointment.TestDriveAppointment, error)
}
