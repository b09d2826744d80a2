package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrCreateDeliveryCommandIsNotConstructed is returned when a
// CreateDeliveryCommand instance was not created through
// NewCreateDeliveryCommand.
var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor")

// CreateDeliveryCommand represents a request to schedule the delivery of an
// order's vehicles.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.ID
	employeeID           kernel.ID
	expectedDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to schedule a delivery.
func NewCreateDeliveryCommand(orderID, employeeID int64, expectedDeliveryDate time.Time) (CreateDeliveryCommand, error) {
	var violations []errs.FieldViolation

	if orderID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "orderId", Message: "must be a positive identifier"})
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
		return CreateDeliveryCommand{}, errs.NewValidationError(violations...)
	}

	return CreateDeliveryCommand{
		orderID:              kernel.ID(orderID),
		employeeID:           kernel.ID(employeeID),
		expectedDeliveryDate: expectedDeliveryDate,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to deliver.
func (c CreateDeliveryCommand) OrderID() kernel.ID {
	return c.orderID
}

// EmployeeID returns the employee responsible for the delivery.
func (c CreateDeliveryCommand) EmployeeID() kernel.ID {
	return c.employeeID
}

// ExpectedDeliveryDate returns the planned delivery date.
func (c CreateDeliveryCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

// CreateDeliveryCommandHandler schedules a delivery for a confirmed order.
// An order has at most one delivery, and the order must have reached
// CONFIRMED before one can exist.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command and returns the persisted delivery.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.VehicleDelivery, error) {
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
	deliveryRepo := uow.DeliveryRepository()

	owner, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	switch owner.Status() {
	case order.Confirmed, order.PendingDelivery:
	default:
		return nil, errs.NewGuardViolationError(delivery.Kind,
			"the order must be CONFIRMED before a delivery can be scheduled")
	}

	exists, err := deliveryRepo.ExistsForOrder(ctx, owner.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewGuardViolationError(delivery.Kind,
			"the order already has a delivery")
	}

	aggregate, err := delivery.NewVehicleDelivery(
		owner.ID(), cmd.EmployeeID(), cmd.ExpectedDeliveryDate())
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
