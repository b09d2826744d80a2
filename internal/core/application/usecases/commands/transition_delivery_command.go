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

// ErrTransitionDeliveryCommandIsNotConstructed is returned when a
// TransitionDeliveryCommand instance was not created through
// NewTransitionDeliveryCommand.
var ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
	"TransitionDeliveryCommand must be created via NewTransitionDeliveryCommand constructor")

// TransitionDeliveryCommand represents a request to move a delivery to a
// target status given by its wire tag.
type TransitionDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.ID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewTransitionDeliveryCommand creates a command to transition a delivery.
func NewTransitionDeliveryCommand(deliveryID int64, targetTag string) (TransitionDeliveryCommand, error) {
	var violations []errs.FieldViolation

	if deliveryID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "deliveryId", Message: "must be a positive identifier"})
	}
	target, err := delivery.ParseStatus(targetTag)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Field: "status", Message: "is not a valid delivery status tag"})
	}
	if len(violations) > 0 {
		return TransitionDeliveryCommand{}, errs.NewValidationError(violations...)
	}

	return TransitionDeliveryCommand{
		deliveryID: kernel.ID(deliveryID),
		target:     target,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to transition.
func (c TransitionDeliveryCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}

// Target returns the parsed target status.
func (c TransitionDeliveryCommand) Target() delivery.Status {
	return c.target
}

// TransitionDeliveryCommandHandler moves a delivery through its lifecycle.
// Entering DELIVERED stamps the delivery date; repeating the request on an
// already delivered record is a no-op and still succeeds.
type TransitionDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewTransitionDeliveryCommandHandler creates a handler for delivery transitions.
func NewTransitionDeliveryCommandHandler(uowFactory DeliveryUoWFactory) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the transition command and returns the updated delivery.
func (h *TransitionDeliveryCommandHandler) Handle(ctx context.Context, cmd TransitionDeliveryCommand) (*delivery.VehicleDelivery, error) {
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

	if err = aggregate.TransitionTo(cmd.Target(), h.now()); err != nil {
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
