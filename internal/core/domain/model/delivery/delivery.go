package delivery

import (
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a VehicleDelivery instance was not
// created through NewVehicleDelivery or RestoreVehicleDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"VehicleDelivery must be created via NewVehicleDelivery constructor")

// VehicleDelivery is the delivery aggregate: 1:1 with a confirmed order.
// Transitioning into DELIVERED stamps the actual delivery date exactly once;
// requesting DELIVERED again is a no-op, and all edits are blocked afterwards.
type VehicleDelivery struct {
	id                   kernel.ID
	orderID              kernel.ID
	employeeID           kernel.ID
	expectedDeliveryDate time.Time
	deliveryDate         *time.Time
	status               Status

	isConstructed bool
}

// NewVehicleDelivery creates a new delivery in PREPARING status for an order.
func NewVehicleDelivery(
	orderID kernel.ID,
	employeeID kernel.ID,
	expectedDeliveryDate time.Time,
) (*VehicleDelivery, error) {
	delivery := &VehicleDelivery{
		status:        Preparing,
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setOrderID(orderID),
		delivery.setEmployeeID(employeeID),
		delivery.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreVehicleDelivery reconstructs a delivery from persistence.
func RestoreVehicleDelivery(
	id kernel.ID,
	orderID kernel.ID,
	employeeID kernel.ID,
	expectedDeliveryDate time.Time,
	deliveryDate *time.Time,
	status Status,
) (*VehicleDelivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	delivery, err := NewVehicleDelivery(orderID, employeeID, expectedDeliveryDate)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	delivery.id = id
	delivery.deliveryDate = deliveryDate
	delivery.status = status
	return delivery, nil
}

// Validate ensures the VehicleDelivery instance was properly constructed.
func (d *VehicleDelivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery identifier; zero until first persisted.
func (d *VehicleDelivery) ID() kernel.ID {
	return d.id
}

// OrderID returns the order this delivery fulfils.
func (d *VehicleDelivery) OrderID() kernel.ID {
	return d.orderID
}

// EmployeeID returns the employee responsible for the delivery.
func (d *VehicleDelivery) EmployeeID() kernel.ID {
	return d.employeeID
}

// ExpectedDeliveryDate returns the planned delivery date.
func (d *VehicleDelivery) ExpectedDeliveryDate() time.Time {
	return d.expectedDeliveryDate
}

// DeliveryDate returns the actual delivery date; nil until delivered.
func (d *VehicleDelivery) DeliveryDate() *time.Time {
	return d.deliveryDate
}

// Status returns the current delivery status.
func (d *VehicleDelivery) Status() Status {
	return d.status
}

// AssignID sets the identifier assigned by the store on first insert.
func (d *VehicleDelivery) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("delivery already has id %s", d.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// TransitionTo moves the delivery to the target status.
//
// Entering DELIVERED stamps the delivery date to now, exactly once; requesting
// DELIVERED when already DELIVERED succeeds without touching the stamp, because
// callers retry webhook-style and the record is already final.
func (d *VehicleDelivery) TransitionTo(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if d.status == Delivered && target == Delivered {
		return nil
	}

	allowed, stamps := d.status.CanTransitionTo(target)
	if !allowed {
		return errs.NewInvalidTransitionError(Kind, d.status.String(), target.String())
	}

	d.status = target
	for _, stamp := range stamps {
		if stamp == lifecycle.StampDeliveryDate && d.deliveryDate == nil {
			stamped := now.UTC()
			d.deliveryDate = &stamped
		}
	}
	return nil
}

// Update changes the responsible employee and the expected delivery date.
// Blocked once the delivery is DELIVERED.
func (d *VehicleDelivery) Update(employeeID kernel.ID, expectedDeliveryDate time.Time) error {
	if d.status == Delivered {
		return errs.NewImmutableAfterDeliveryError(d.id.Int64())
	}

	if err := errors.Join(
		d.setEmployeeID(employeeID),
		d.setExpectedDeliveryDate(expectedDeliveryDate),
	); err != nil {
		return err
	}
	return nil
}

func (d *VehicleDelivery) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.orderID = id
	return nil
}

func (d *VehicleDelivery) setEmployeeID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.employeeID = id
	return nil
}

func (d *VehicleDelivery) setExpectedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}
	d.expectedDeliveryDate = date.UTC()
	return nil
}
