package commands

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrDeletePaymentCommandIsNotConstructed is returned when a
// DeletePaymentCommand instance was not created through
// NewDeletePaymentCommand.
var ErrDeletePaymentCommandIsNotConstructed = errors.New(
	"DeletePaymentCommand must be created via NewDeletePaymentCommand constructor")

// DeletePaymentCommand represents a request to remove a payment from the
// ledger. Only UNPAID payments may go.
type DeletePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeletePaymentCommand creates a command to delete a payment.
func NewDeletePaymentCommand(paymentID int64) (DeletePaymentCommand, error) {
	if paymentID <= 0 {
		return DeletePaymentCommand{}, errs.NewValidationError(errs.FieldViolation{
			Field: "paymentId", Message: "must be a positive identifier"})
	}
	return DeletePaymentCommand{
		paymentID: kernel.ID(paymentID),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrDeletePaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to delete.
func (c DeletePaymentCommand) PaymentID() kernel.ID {
	return c.paymentID
}

// DeletePaymentCommandHandler removes an UNPAID payment. Anything that has
// moved past UNPAID is immutable history and stays.
type DeletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewDeletePaymentCommandHandler creates a handler for payment deletion.
func NewDeletePaymentCommandHandler(uowFactory PaymentUoWFactory) DeletePaymentCommandHandler {
	return DeletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeletePaymentCommandHandler) Handle(ctx context.Context, cmd DeletePaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err = paymentRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
