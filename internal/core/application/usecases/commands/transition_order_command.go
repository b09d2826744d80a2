package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrTransitionOrderCommandIsNotConstructed is returned when a
// TransitionOrderCommand instance was not created through
// NewTransitionOrderCommand.
var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor")

// TransitionOrderCommand represents a request to move an order to a target
// status given by its wire tag, e.g. "PENDING_DELIVERY".
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// The target tag must parse to a valid order status; whether the edge is
// legal from the current status is decided by the aggregate.
func NewTransitionOrderCommand(orderID int64, targetTag string) (TransitionOrderCommand, error) {
	var violations []errs.FieldViolation

	if orderID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "orderId", Message: "must be a positive identifier"})
	}
	target, err := order.ParseStatus(targetTag)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Field: "status", Message: "is not a valid order status tag"})
	}
	if len(violations) > 0 {
		return TransitionOrderCommand{}, errs.NewValidationError(violations...)
	}

	return TransitionOrderCommand{
		orderID: kernel.ID(orderID),
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Target returns the parsed target status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}
