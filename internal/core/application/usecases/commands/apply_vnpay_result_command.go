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

// ErrApplyVnpayResultCommandIsNotConstructed is returned when an
// ApplyVnpayResultCommand instance was not created through
// NewApplyVnpayResultCommand.
var ErrApplyVnpayResultCommandIsNotConstructed = errors.New(
	"ApplyVnpayResultCommand must be created via NewApplyVnpayResultCommand constructor")

// ApplyVnpayResultCommand carries the authoritative outcome of a VNPay
// checkout session, delivered by the gateway's return callback.
type ApplyVnpayResultCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.ID
	approved  bool
	vnpayCode string

	guard guard.ConstructorGuard
}

// NewApplyVnpayResultCommand creates a command from a gateway callback.
func NewApplyVnpayResultCommand(paymentID int64, approved bool, vnpayCode string) (ApplyVnpayResultCommand, error) {
	var violations []errs.FieldViolation

	if paymentID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "paymentId", Message: "must be a positive identifier"})
	}
	if vnpayCode == "" {
		violations = append(violations, errs.FieldViolation{
			Field: "vnpayCode", Message: "is required"})
	}
	if len(violations) > 0 {
		return ApplyVnpayResultCommand{}, errs.NewValidationError(violations...)
	}

	return ApplyVnpayResultCommand{
		paymentID: kernel.ID(paymentID),
		approved:  approved,
		vnpayCode: vnpayCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyVnpayResultCommand) Validate() error {
	return c.guard.Validate(ErrApplyVnpayResultCommandIsNotConstructed)
}

// PaymentID returns the payment the callback refers to.
func (c ApplyVnpayResultCommand) PaymentID() kernel.ID {
	return c.paymentID
}

// Approved reports whether the gateway approved the payment.
func (c ApplyVnpayResultCommand) Approved() bool {
	return c.approved
}

// VnpayCode returns the gateway's response code.
func (c ApplyVnpayResultCommand) VnpayCode() string {
	return c.vnpayCode
}

// ApplyVnpayResultCommandHandler applies a VNPay callback to the payment.
// Approval settles an UNPAID or OVERDUE payment as PAID; a declined result
// records the code and leaves the status alone. Repeated callbacks for an
// already settled payment are no-ops, so gateway retries stay safe.
type ApplyVnpayResultCommandHandler struct {
	uowFactory PaymentUoWFactory
	now        func() time.Time
}

// NewApplyVnpayResultCommandHandler creates a handler for VNPay callbacks.
func NewApplyVnpayResultCommandHandler(uowFactory PaymentUoWFactory) ApplyVnpayResultCommandHandler {
	return ApplyVnpayResultCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the callback command and returns the updated payment.
func (h *ApplyVnpayResultCommandHandler) Handle(ctx context.Context, cmd ApplyVnpayResultCommand) (*payment.Payment, error) {
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

	if err = aggregate.ApplyVnpayResult(cmd.Approved(), cmd.VnpayCode(), h.now()); err != nil {
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
