package commands

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/ports"
)

// defaultDeliveryLeadTime is the expected-date offset for a delivery created
// implicitly by the CONFIRMED -> PENDING_DELIVERY side effect.
const defaultDeliveryLeadTime = 7 * 24 * time.Hour

// TransitionOrderCommandHandler moves an order through its lifecycle.
//
// The cross-entity guards (paid total, paid-payment lock, delivery status) are
// evaluated on a snapshot taken at the start of the unit of work. Two side
// effects belong to this handler: entering PENDING_DELIVERY creates a
// PREPARING delivery if the order has none yet, and entering CANCELLED
// cancels the order's open payments.
type TransitionOrderCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
	now        func() time.Time
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderLifecycleUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the transition command and returns the updated order.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
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
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	paidTotal, err := paymentRepo.PaidTotal(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}
	hasPaid, err := paymentRepo.HasPaidPayment(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}
	deliveryExists, err := deliveryRepo.ExistsForOrder(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}
	delivered, err := deliveryRepo.IsDeliveredForOrder(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if cmd.Target() == order.PendingDelivery && !deliveryExists {
		created, deliveryErr := delivery.NewVehicleDelivery(
			aggregate.ID(), aggregate.EmployeeID(), h.now().Add(defaultDeliveryLeadTime))
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		if deliveryErr = deliveryRepo.Add(ctx, created); deliveryErr != nil {
			return nil, deliveryErr
		}
		deliveryExists = true
	}

	err = aggregate.TransitionTo(cmd.Target(), order.TransitionContext{
		PaidTotal:         paidTotal,
		HasPaidPayment:    hasPaid,
		DeliveryExists:    deliveryExists,
		DeliveryDelivered: delivered,
	})
	if err != nil {
		return nil, err
	}

	if cmd.Target() == order.Cancelled {
		if err = h.cancelOpenPayments(ctx, paymentRepo, aggregate); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// cancelOpenPayments cancels every UNPAID and OVERDUE payment of a cancelled
// order. PAID payments cannot exist here: the order-lock guard already blocks
// cancellation once money has moved.
func (h *TransitionOrderCommandHandler) cancelOpenPayments(
	ctx context.Context,
	paymentRepo ports.PaymentRepository,
	aggregate *order.Order,
) error {
	payments, err := paymentRepo.GetAllByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, p := range payments {
		if p.Status() == payment.Paid || p.Status() == payment.Cancelled {
			continue
		}
		if err = p.Cancel(); err != nil {
			return err
		}
		if err = paymentRepo.Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
