package vehicle

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New(
	"Vehicle must be created via NewVehicle constructor")

// Vehicle is a single physical unit in the warehouse. The release workflow
// moves it IN_STOCK -> RESERVED -> RELEASED as its note advances, and back to
// IN_STOCK when the note is cancelled mid-flight.
type Vehicle struct {
	id     kernel.ID
	status Status

	isConstructed bool
}

// NewVehicle creates a vehicle record in IN_STOCK status.
func NewVehicle() *Vehicle {
	return &Vehicle{
		status:        InStock,
		isConstructed: true,
	}
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(id kernel.ID, status Status) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &Vehicle{
		id:            id,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.ID {
	return v.id
}

// Status returns the current stock status.
func (v *Vehicle) Status() Status {
	return v.status
}

// AssignID sets the identifier assigned by the store on first insert.
// Assigning twice is an error.
func (v *Vehicle) AssignID(id kernel.ID) error {
	if !v.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("vehicle already has id %s", v.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

// Reserve claims the vehicle for a release note leaving PENDING_APPROVAL.
func (v *Vehicle) Reserve() error {
	return v.transitionTo(Reserved)
}

// Release hands the vehicle over when its note reaches RELEASED.
func (v *Vehicle) Release() error {
	return v.transitionTo(Released)
}

// Return puts a reserved vehicle back in stock after its note is cancelled.
func (v *Vehicle) Return() error {
	return v.transitionTo(InStock)
}

func (v *Vehicle) transitionTo(target Status) error {
	if !v.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(Kind, v.status.String(), target.String())
	}
	v.status = target
	return nil
}
