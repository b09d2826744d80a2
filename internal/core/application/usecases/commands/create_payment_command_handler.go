package commands

import (
	"context"

	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
)

// CreatePaymentCommandHandler handles the business logic for adding a payment
// to an order's ledger. The overpayment invariant is enforced here: the
// non-cancelled payment sum plus the new amount must not exceed the order's
// grand total (equality is allowed).
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for payment creation operations.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment creation command and returns the persisted payment.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
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

	orderRepo := uow.OrderRepository()
	paymentRepo := uow.PaymentRepository()

	owner, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if owner.Status() == order.Cancelled {
		return nil, errs.NewGuardViolationError(order.Kind,
			"a cancelled order accepts no payments")
	}

	committed, err := paymentRepo.NonCancelledTotal(ctx, owner.ID())
	if err != nil {
		return nil, err
	}
	if committed.Add(cmd.Amount()) > owner.TotalAmount() {
		return nil, errs.NewOverpaymentError(
			owner.ID().Int64(), cmd.Amount().Int64(),
			(owner.TotalAmount() - committed).Int64())
	}

	aggregate, err := payment.NewPayment(
		owner.ID(), cmd.Amount(), cmd.Method(), cmd.Form(), cmd.NumberCycle(), cmd.DueDate())
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
