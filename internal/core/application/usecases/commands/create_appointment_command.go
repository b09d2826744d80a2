package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrCreateAppointmentCommandIsNotConstructed is returned when a
// CreateAppointmentCommand instance was not created through
// NewCreateAppointmentCommand.
var ErrCreateAppointmentCommandIsNotConstructed = errors.New(
	"CreateAppointmentCommand must be created via NewCreateAppointmentCommand constructor")

// CreateAppointmentCommand represents a request to book a test drive.
type CreateAppointmentCommand struct { //nolint:recvcheck //using for validation
	customerID        kernel.ID
	vehicleID         kernel.ID
	dateOfAppointment time.Time
	timeOfAppointment string

	guard guard.ConstructorGuard
}

// NewCreateAppointmentCommand creates a command to book a test drive.
// Fine-grained slot validation (the HH:MM shape) lives in the aggregate.
func NewCreateAppointmentCommand(
	customerID int64,
	vehicleID int64,
	dateOfAppointment time.Time,
	timeOfAppointment string,
) (CreateAppointmentCommand, error) {
	var violations []errs.FieldViolation

	if customerID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "customerId", Message: "must be a positive identifier"})
	}
	if vehicleID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "vehicleId", Message: "must be a positive identifier"})
	}
	if dateOfAppointment.IsZero() {
		violations = append(violations, errs.FieldViolation{
			Field: "dateOfAppointment", Message: "is required"})
	}
	if timeOfAppointment == "" {
		violations = append(violations, errs.FieldViolation{
			Field: "timeOfAppointment", Message: "is required"})
	}
	if len(violations) > 0 {
		return CreateAppointmentCommand{}, errs.NewValidationError(violations...)
	}

	return CreateAppointmentCommand{
		customerID:        kernel.ID(customerID),
		vehicleID:         kernel.ID(vehicleID),
		dateOfAppointment: dateOfAppointment,
		timeOfAppointment: timeOfAppointment,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAppointmentCommandIsNotConstructed)
}

// CustomerID returns the booking customer.
func (c CreateAppointmentCommand) CustomerID() kernel.ID {
	return c.customerID
}

// VehicleID returns the vehicle to be test-driven.
func (c CreateAppointmentCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

// DateOfAppointment returns the appointment date.
func (c CreateAppointmentCommand) DateOfAppointment() time.Time {
	return c.dateOfAppointment
}

// TimeOfAppointment returns the "HH:MM" slot.
func (c CreateAppointmentCommand) TimeOfAppointment() string {
	return c.timeOfAppointment
}

// CreateAppointmentCommandHandler books a test drive in SCHEDULED status.
type CreateAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

// NewCreateAppointmentCommandHandler creates a handler for appointment booking.
func NewCreateAppointmentCommandHandler(uowFactory AppointmentUoWFactory) CreateAppointmentCommandHandler {
	return CreateAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command and returns the persisted appointment.
func (h *CreateAppointmentCommandHandler) Handle(ctx context.Context, cmd CreateAppointmentCommand) (*appointment.TestDriveAppointment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := appointment.NewTestDriveAppointment(
		cmd.CustomerID(), cmd.VehicleID(), cmd.DateOfAppointment(), cmd.TimeOfAppointment())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AppointmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
