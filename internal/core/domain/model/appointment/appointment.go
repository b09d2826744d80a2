package appointment

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrAppointmentIsNotConstructed is returned when a TestDriveAppointment
// instance was not created through NewTestDriveAppointment or
// RestoreTestDriveAppointment.
var ErrAppointmentIsNotConstructed = errors.New(
	"TestDriveAppointment must be created via NewTestDriveAppointment constructor")

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// TestDriveAppointment books a customer into a slot with a specific vehicle.
// It can be edited or deleted only while SCHEDULED; ARRIVED and CANCELLED
// freeze the record.
type TestDriveAppointment struct {
	id                kernel.ID
	customerID        kernel.ID
	vehicleID         kernel.ID
	dateOfAppointment time.Time
	timeOfAppointment string
	status            Status

	isConstructed bool
}

// NewTestDriveAppointment creates an appointment in SCHEDULED status.
// timeOfAppointment is a 24h "HH:MM" wall-clock slot.
func NewTestDriveAppointment(
	customerID kernel.ID,
	vehicleID kernel.ID,
	dateOfAppointment time.Time,
	timeOfAppointment string,
) (*TestDriveAppointment, error) {
	appointment := &TestDriveAppointment{
		status:        Scheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		appointment.setCustomerID(customerID),
		appointment.setVehicleID(vehicleID),
		appointment.setSlot(dateOfAppointment, timeOfAppointment),
	); err != nil {
		return nil, err
	}

	return appointment, nil
}

// RestoreTestDriveAppointment reconstructs an appointment from persistence.
func RestoreTestDriveAppointment(
	id kernel.ID,
	customerID kernel.ID,
	vehicleID kernel.ID,
	dateOfAppointment time.Time,
	timeOfAppointment string,
	status Status,
) (*TestDriveAppointment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	appointment, err := NewTestDriveAppointment(
		customerID, vehicleID, dateOfAppointment, timeOfAppointment)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	appointment.id = id
	appointment.status = status
	return appointment, nil
}

// Validate ensures the TestDriveAppointment instance was properly constructed.
func (a *TestDriveAppointment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAppointmentIsNotConstructed
	}
	return nil
}

// ID returns the appointment identifier; zero until first persisted.
func (a *TestDriveAppointment) ID() kernel.ID {
	return a.id
}

// CustomerID returns the booked customer.
func (a *TestDriveAppointment) CustomerID() kernel.ID {
	return a.customerID
}

// VehicleID returns the vehicle to be test-driven.
func (a *TestDriveAppointment) VehicleID() kernel.ID {
	return a.vehicleID
}

// DateOfAppointment returns the appointment date.
func (a *TestDriveAppointment) DateOfAppointment() time.Time {
	return a.dateOfAppointment
}

// TimeOfAppointment returns the "HH:MM" slot.
func (a *TestDriveAppointment) TimeOfAppointment() string {
	return a.timeOfAppointment
}

// Status returns the current appointment status.
func (a *TestDriveAppointment) Status() Status {
	return a.status
}

// AssignID sets the identifier assigned by the store on first insert.
func (a *TestDriveAppointment) AssignID(id kernel.ID) error {
	if !a.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("appointment already has id %s", a.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// TransitionTo closes the appointment as ARRIVED or CANCELLED.
func (a *TestDriveAppointment) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !a.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(Kind, a.status.String(), target.String())
	}
	a.status = target
	return nil
}

// Update reschedules the appointment. Legal only while SCHEDULED.
func (a *TestDriveAppointment) Update(
	vehicleID kernel.ID,
	dateOfAppointment time.Time,
	timeOfAppointment string,
) error {
	if a.status != Scheduled {
		return errs.NewGuardViolationError(Kind,
			"only a SCHEDULED appointment can be edited")
	}

	if err := errors.Join(
		a.setVehicleID(vehicleID),
		a.setSlot(dateOfAppointment, timeOfAppointment),
	); err != nil {
		return err
	}
	return nil
}

// EnsureDeletable reports whether the appointment may be deleted. Closed
// appointments stay on record.
func (a *TestDriveAppointment) EnsureDeletable() error {
	if a.status != Scheduled {
		return errs.NewGuardViolationError(Kind,
			"only a SCHEDULED appointment can be deleted")
	}
	return nil
}

func (a *TestDriveAppointment) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.customerID = id
	return nil
}

func (a *TestDriveAppointment) setVehicleID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.vehicleID = id
	return nil
}

func (a *TestDriveAppointment) setSlot(date time.Time, timeOfDay string) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("dateOfAppointment")
	}
	if !timeOfDayPattern.MatchString(timeOfDay) {
		return errs.NewValueIsInvalidErrorWithCause("timeOfAppointment",
			fmt.Errorf("%q is not a HH:MM time of day", timeOfDay))
	}
	a.dateOfAppointment = date.UTC()
	a.timeOfAppointment = timeOfDay
	return nil
}
