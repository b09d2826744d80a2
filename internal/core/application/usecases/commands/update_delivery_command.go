package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrUpdateDeliveryCommandIsNotConstructed is returned when an
// UpdateDeliveryCommand instance was not created through
// NewUpdateDeliveryCommand.
var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor")

// UpdateDeliveryCommand represents a request to reassign a delivery's
// employee or move its expected date. Blocked once the delivery is DELIVERED.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID           kernel.ID
	employeeID           kernel.ID
	expectedDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to update a delivery.
func NewUpdateDeliveryCommand(deliveryID, employeeID int64, expectedDeliveryDate time.Time) (UpdateDeliveryCommand, error) {
	var violations []errs.FieldViolation

	if deliveryID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "deliveryId", Message: "must be a positive identifier"})
	}
	if employeeID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "employeeId", Message: "must be a positive identifier"})
	}
	if expectedDeliveryDate.IsZero() {
		violations = append(violations, errs.FieldViolation{
			Field: "expectedDeliveryDate", Message: "is required"})
	}
	if len(violations) > 0 {
		return UpdateDeliveryCommand{}, errs.NewValidationError(violations...)
	}

	return UpdateDeliveryCommand{
		deliveryID:           kernel.ID(deliveryID),
		employeeID:           kernel.ID(employeeID),
		expectedDeliveryDate: expectedDeliveryDate,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to update.
func (c UpdateDeliveryCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}

// EmployeeID returns the new responsible employee.
func (c UpdateDeliveryCommand) EmployeeID() kernel.ID {
	return c.employeeID
}

// ExpectedDeliveryDate returns the new planned date.
func (c UpdateDeliveryCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

// UpdateDeliveryCommandHandler applies delivery edits within the window the
// aggregate allows.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery updates.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated delivery.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (*delivery.VehicleDelivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.EmployeeID(), cmd.ExpectedDeliveryDate()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
