package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrConfirmCashPaymentCommandIsNotConstructed is returned when a
// ConfirmCashPaymentCommand instance was not created through
// NewConfirmCashPaymentCommand.
var ErrConfirmCashPaymentCommandIsNotConstructed = errors.New(
	"ConfirmCashPaymentCommand must be created via NewConfirmCashPaymentCommand constructor")

// ConfirmCashPaymentCommand represents an operator confirming that a CASH
// payment was received at the counter.
type ConfirmCashPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.ID

	guard guard.ConstructorGuard
}

// NewConfirmCashPaymentCommand creates a command to settle a cash payment.
func NewConfirmCashPaymentCommand(paymentID int64) (ConfirmCashPaymentCommand, error) {
	if paymentID <= 0 {
		return ConfirmCashPaymentCommand{}, errs.NewValidationError(errs.FieldViolation{
			Field: "paymentId", Message: "must be a positive identifier"})
	}
	return ConfirmCashPaymentCommand{
		paymentID: kernel.ID(paymentID),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCashPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCashPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to settle.
func (c ConfirmCashPaymentCommand) PaymentID() kernel.ID {
	return c.paymentID
}

// ConfirmCashPaymentCommandHandler settles a cash payment: UNPAID moves to
// PAID and the payment date is stamped.
type ConfirmCashPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	now        func() time.Time
}

// NewConfirmCashPaymentCommandHandler creates a handler for cash confirmations.
func NewConfirmCashPaymentCommandHandler(uowFactory PaymentUoWFactory) ConfirmCashPaymentCommandHandler {
	return ConfirmCashPaymentCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the cash confirmation command and returns the updated payment.
func (h *ConfirmCashPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmCashPaymentCommand) (*payment.Payment, error) {
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

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ConfirmCash(h.now()); err != nil {
		return nil, err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
