package commands

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrUpdateAppointmentStatusCommandIsNotConstructed is returned when an
// UpdateAppointmentStatusCommand instance was not created through
// NewUpdateAppointmentStatusCommand.
var ErrUpdateAppointmentStatusCommandIsNotConstructed = errors.New(
	"UpdateAppointmentStatusCommand must be created via NewUpdateAppointmentStatusCommand constructor")

// UpdateAppointmentStatusCommand represents a request to close a test drive
// as ARRIVED or CANCELLED.
type UpdateAppointmentStatusCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.ID
	target        appointment.Status

	guard guard.ConstructorGuard
}

// NewUpdateAppointmentStatusCommand creates a command to close an appointment.
func NewUpdateAppointmentStatusCommand(appointmentID int64, targetTag string) (UpdateAppointmentStatusCommand, error) {
	var violations []errs.FieldViolation

	if appointmentID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "appointmentId", Message: "must be a positive identifier"})
	}
	target, err := appointment.ParseStatus(targetTag)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Field: "status", Message: "is not a valid appointment status tag"})
	}
	if len(violations) > 0 {
		return UpdateAppointmentStatusCommand{}, errs.NewValidationError(violations...)
	}

	return UpdateAppointmentStatusCommand{
		appointmentID: kernel.ID(appointmentID),
		target:        target,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAppointmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAppointmentStatusCommandIsNotConstructed)
}

// AppointmentID returns the appointment to close.
func (c UpdateAppointmentStatusCommand) AppointmentID() kernel.ID {
	return c.appointmentID
}

// Target returns the parsed target status.
func (c UpdateAppointmentStatusCommand) Target() appointment.Status {
	return c.target
}

// UpdateAppointmentStatusCommandHandler closes an appointment.
type UpdateAppointmentStatusCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

// NewUpdateAppointmentStatusCommandHandler creates a handler for appointment closings.
func NewUpdateAppointmentStatusCommandHandler(uowFactory AppointmentUoWFactory) UpdateAppointmentStatusCommandHandler {
	return UpdateAppointmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status command and returns the updated appointment.
func (h *UpdateAppointmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateAppointmentStatusCommand) (*appointment.TestDriveAppointment, error) {
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

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
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
