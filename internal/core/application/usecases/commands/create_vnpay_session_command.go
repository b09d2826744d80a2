package commands

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/ports"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrCreateVnpaySessionCommandIsNotConstructed is returned when a
// CreateVnpaySessionCommand instance was not created through
// NewCreateVnpaySessionCommand.
var ErrCreateVnpaySessionCommandIsNotConstructed = errors.New(
	"CreateVnpaySessionCommand must be created via NewCreateVnpaySessionCommand constructor")

// CreateVnpaySessionCommand represents a request to open a VNPay checkout
// session for a VNPAY payment.
type CreateVnpaySessionCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateVnpaySessionCommand creates a command to open a checkout session.
func NewCreateVnpaySessionCommand(paymentID int64) (CreateVnpaySessionCommand, error) {
	if paymentID <= 0 {
		return CreateVnpaySessionCommand{}, errs.NewValidationError(errs.FieldViolation{
			Field: "paymentId", Message: "must be a positive identifier"})
	}
	return CreateVnpaySessionCommand{
		paymentID: kernel.ID(paymentID),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVnpaySessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateVnpaySessionCommandIsNotConstructed)
}

// PaymentID returns the payment to open a session for.
func (c CreateVnpaySessionCommand) PaymentID() kernel.ID {
	return c.paymentID
}

// CreateVnpaySessionCommandHandler opens a VNPay checkout session. The session
// records a transaction reference on the payment but never changes its status;
// the authoritative outcome arrives later through the gateway callback.
// Re-opening a session for a still-unpaid payment is allowed and replaces the
// previous reference.
type CreateVnpaySessionCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.VnpayGateway
}

// NewCreateVnpaySessionCommandHandler creates a handler for VNPay session creation.
func NewCreateVnpaySessionCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.VnpayGateway,
) CreateVnpaySessionCommandHandler {
	return CreateVnpaySessionCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the session command and returns the pending session.
func (h *CreateVnpaySessionCommandHandler) Handle(ctx context.Context, cmd CreateVnpaySessionCommand) (ports.PaymentSession, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PaymentSession{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.PaymentSession{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return ports.PaymentSession{}, err
	}

	session, err := h.gateway.CreateSession(ctx, aggregate)
	if err != nil {
		return ports.PaymentSession{}, err
	}

	if err = aggregate.RecordVnpaySession(session.TxnRef); err != nil {
		return ports.PaymentSession{}, err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return ports.PaymentSession{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.PaymentSession{}, err
	}

	return session, nil
}
