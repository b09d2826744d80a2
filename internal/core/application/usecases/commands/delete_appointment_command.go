package commands

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrDeleteAppointmentCommandIsNotConstructed is returned when a
// DeleteAppointmentCommand instance was not created through
// NewDeleteAppointmentCommand.
var ErrDeleteAppointmentCommandIsNotConstructed = errors.New(
	"DeleteAppointmentCommand must be created via NewDeleteAppointmentCommand constructor")

// DeleteAppointmentCommand represents a request to delete a still-SCHEDULED
// test drive.
type DeleteAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteAppointmentCommand creates a command to delete an appointment.
func NewDeleteAppointmentCommand(appointmentID int64) (DeleteAppointmentCommand, error) {
	if appointmentID <= 0 {
		return DeleteAppointmentCommand{}, errs.NewValidationError(errs.FieldViolation{
			Field: "appointmentId", Message: "must be a positive identifier"})
	}
	return DeleteAppointmentCommand{
		appointmentID: kernel.ID(appointmentID),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the appointment to delete.
func (c DeleteAppointmentCommand) AppointmentID() kernel.ID {
	return c.appointmentID
}

// DeleteAppointmentCommandHandler deletes a SCHEDULED appointment; closed
// appointments stay on record.
type DeleteAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

// NewDeleteAppointmentCommandHandler creates a handler for appointment deletion.
func NewDeleteAppointmentCommandHandler(uowFactory AppointmentUoWFactory) DeleteAppointmentCommandHandler {
	return DeleteAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteAppointmentCommandHandler) Handle(ctx context.Context, cmd DeleteAppointmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appointmentRepo := uow.AppointmentRepository()
	aggregate, err := appointmentRepo.Get(ctx, cmd.AppointmentID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err = appointmentRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
