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

// ErrUpdateAppointmentCommandIsNotConstructed is returned when an
// UpdateAppointmentCommand instance was not created through
// NewUpdateAppointmentCommand.
var ErrUpdateAppointmentCommandIsNotConstructed = errors.New(
	"UpdateAppointmentCommand must be created via NewUpdateAppointmentCommand constructor")

// UpdateAppointmentCommand represents a request to reschedule a test drive.
// Legal only while the appointment is still SCHEDULED.
type UpdateAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID     kernel.ID
	vehicleID         kernel.ID
	dateOfAppointment time.Time
	timeOfAppointment string

	guard guard.ConstructorGuard
}

// NewUpdateAppointmentCommand creates a command to reschedule an appointment.
func NewUpdateAppointmentCommand(
	appointmentID int64,
	vehicleID int64,
	dateOfAppointment time.Time,
	timeOfAppointment string,
) (UpdateAppointmentCommand, error) {
	var violations []errs.FieldViolation

	if appointmentID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "appointmentId", Message: "must be a positive identifier"})
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
		return UpdateAppointmentCommand{}, errs.NewValidationError(violations...)
	}

	return UpdateAppointmentCommand{
		appointmentID:     kernel.ID(appointmentID),
		vehicleID:         kernel.ID(vehicleID),
		dateOfAppointment: dateOfAppointment,
		timeOfAppointment: timeOfAppointment,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the appointment to reschedule.
func (c UpdateAppointmentCommand) AppointmentID() kernel.ID {
	return c.appointmentID
}

// VehicleID returns the new vehicle.
func (c UpdateAppointmentCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

// DateOfAppointment returns the new date.
func (c UpdateAppointmentCommand) DateOfAppointment() time.Time {
	return c.dateOfAppointment
}

// TimeOfAppointment returns the new "HH:MM" slot.
func (c UpdateAppointmentCommand) TimeOfAppointment() string {
	return c.timeOfAppointment
}

// UpdateAppointmentCommandHandler reschedules a SCHEDULED appointment.
type UpdateAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

// NewUpdateAppointmentCommandHandler creates a handler for appointment updates.
func NewUpdateAppointmentCommandHandler(uowFactory AppointmentUoWFactory) UpdateAppointmentCommandHandler {
	return UpdateAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reschedule command and returns the updated appointment.
func (h *UpdateAppointmentCommandHandler) Handle(ctx context.Context, cmd UpdateAppointmentCommand) (*appointment.TestDriveAppointment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appointmentRepo := uow.AppointmentRepository()
	aggregate, err := appointmentRepo.Get(ctx, cmd.AppointmentID())
	if err != nil {
		return nil, err
	}

	err = aggregate.Update(cmd.VehicleID(), cmd.DateOfAppointment(), cmd.TimeOfAppointment())
	if err != nil {
		return nil, err
	}

	if err = appointmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
