package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrAccruePenaltiesCommandIsNotConstructed is returned when an
// AccruePenaltiesCommand instance was not created through
// NewAccruePenaltiesCommand.
var ErrAccruePenaltiesCommandIsNotConstructed = errors.New(
	"AccruePenaltiesCommand must be created via NewAccruePenaltiesCommand constructor")

// AccruePenaltiesCommand represents one run of the overdue-payment sweep at a
// given point in time.
type AccruePenaltiesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewAccruePenaltiesCommand creates a command for a sweep at the given time.
func NewAccruePenaltiesCommand(asOf time.Time) (AccruePenaltiesCommand, error) {
	if asOf.IsZero() {
		return AccruePenaltiesCommand{}, errs.NewValidationError(errs.FieldViolation{
			Field: "asOf", Message: "is required"})
	}
	return AccruePenaltiesCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AccruePenaltiesCommand) Validate() error {
	return c.guard.Validate(ErrAccruePenaltiesCommandIsNotConstructed)
}

// AsOf returns the sweep's point in time.
func (c AccruePenaltiesCommand) AsOf() time.Time {
	return c.asOf
}

// AccruePenaltiesCommandHandler marks due UNPAID payments OVERDUE and
// recomputes their penalty from the injected policy. Run periodically by the
// penalty accrual job, never by user action.
type AccruePenaltiesCommandHandler struct {
	uowFactory PaymentUoWFactory
	policy     payment.PenaltyPolicy
}

// NewAccruePenaltiesCommandHandler creates a handler for the penalty sweep.
func NewAccruePenaltiesCommandHandler(
	uowFactory PaymentUoWFactory,
	policy payment.PenaltyPolicy,
) AccruePenaltiesCommandHandler {
	return AccruePenaltiesCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes one sweep and returns how many payments were touched.
func (h *AccruePenaltiesCommandHandler) Handle(ctx context.Context, cmd AccruePenaltiesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	due, err := paymentRepo.GetAllUnpaidDueBefore(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}

	touched := 0
	for _, aggregate := range due {
		if err = aggregate.AccruePenalty(h.policy, cmd.AsOf()); err != nil {
			return 0, err
		}
		if err = paymentRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		touched++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return touched, nil
}
