package commands

import (
	"context"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the detail lines, derives the grand total inside the aggregate and
// persists the order in PENDING status; the repository assigns the identifier
// and the contract number on insert.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	details := make([]order.Detail, 0, len(cmd.Details()))
	for _, input := range cmd.Details() {
		price, err := kernel.NewMoney(input.UnitWholesalePrice)
		if err != nil {
			return nil, err
		}
		discount, err := kernel.NewDiscount(input.DiscountBasisPoints)
		if err != nil {
			return nil, err
		}
		detail, err := order.NewDetail(
			kernel.ID(input.VehicleTypeDetailID), input.Quantity, price, discount)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	aggregate, err := order.NewOrder(
		cmd.AgencyID(), cmd.EmployeeID(), cmd.CustomerID(), details, cmd.Notes())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
