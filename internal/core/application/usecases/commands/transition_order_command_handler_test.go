package commands_test

import (
	"context"
	"testing"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1_000_000)
	require.NoError(t, err)
	discount, err := kernel.NewDiscount(0)
	require.NoError(t, err)
	detail, err := order.NewDetail(kernel.ID(1), 1, price, discount)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.ID(42), kernel.ID(10), kernel.ID(20), nil,
		"AGO-42", "", status, []order.Detail{detail})
	require.NoError(t, err)
	return aggregate
}

func restorePaymentInStatus(t *testing.T, id int64, status payment.Status) *payment.Payment {
	t.Helper()

	amount, err := kernel.NewMoney(250_000)
	require.NoError(t, err)
	restored, err := payment.RestorePayment(
		kernel.ID(id), kernel.ID(42), amount, payment.Cash, payment.FullPayment,
		1, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		nil, kernel.Money(0), nil, nil, status)
	require.NoError(t, err)
	return restored
}

func newLifecycleMocks(uow *MockUoW, orderRepo *MockOrderRepository,
	paymentRepo *MockPaymentRepository, deliveryRepo *MockDeliveryRepository,
) *MockOrderLifecycleUoWFactory {
	uowFactory := &MockOrderLifecycleUoWFactory{}
	uowFactory.On("Create").Return(uow)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	return uowFactory
}

func TestTransitionOrderCommandHandler_Handle_CreatesDeliveryOnPendingDelivery(t *testing.T) {
	ctx := context.Background()
	aggregate := restoreOrderInStatus(t, order.Confirmed)
	orderID := aggregate.ID()

	orderRepo := &MockOrderRepository{}
	paymentRepo := &MockPaymentRepository{}
	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	uowFactory := newLifecycleMocks(uow, orderRepo, paymentRepo, deliveryRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		orderRepo.On("Get", ctx, orderID).Return(aggregate, nil),
		paymentRepo.On("PaidTotal", ctx, orderID).Return(kernel.Money(0), nil),
		paymentRepo.On("HasPaidPayment", ctx, orderID).Return(false, nil),
		deliveryRepo.On("ExistsForOrder", ctx, orderID).Return(false, nil),
		deliveryRepo.On("IsDeliveredForOrder", ctx, orderID).Return(false, nil),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.VehicleDelivery")).Return(nil),
		orderRepo.On("Update", ctx, aggregate).Return(nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	cmd, err := commands.NewTransitionOrderCommand(orderID.Int64(), "PENDING_DELIVERY")
	require.NoError(t, err)

	handler := commands.NewTransitionOrderCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PendingDelivery, updated.Status())

	added := deliveryRepo.Calls[len(deliveryRepo.Calls)-1].Arguments.Get(1).(*delivery.VehicleDelivery)
	assert.Equal(t, delivery.Preparing, added.Status())
	assert.Equal(t, orderID, added.OrderID())
	assert.Equal(t, aggregate.EmployeeID(), added.EmployeeID())

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_CancelBlockedByPaidPayment(t *testing.T) {
	ctx := context.Background()
	aggregate := restoreOrderInStatus(t, order.Approved)
	orderID := aggregate.ID()

	orderRepo := &MockOrderRepository{}
	paymentRepo := &MockPaymentRepository{}
	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	uowFactory := newLifecycleMocks(uow, orderRepo, paymentRepo, deliveryRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, orderID).Return(aggregate, nil)
	paymentRepo.On("PaidTotal", ctx, orderID).Return(kernel.Money(250_000), nil)
	paymentRepo.On("HasPaidPayment", ctx, orderID).Return(true, nil)
	deliveryRepo.On("ExistsForOrder", ctx, orderID).Return(false, nil)
	deliveryRepo.On("IsDeliveredForOrder", ctx, orderID).Return(false, nil)

	cmd, err := commands.NewTransitionOrderCommand(orderID.Int64(), "CANCELLED")
	require.NoError(t, err)

	handler := commands.NewTransitionOrderCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrOrderLocked)
	assert.Nil(t, updated)
	assert.Equal(t, order.Approved, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_CancelClosesOpenPayments(t *testing.T) {
	ctx := context.Background()
	aggregate := restoreOrderInStatus(t, order.Pending)
	orderID := aggregate.ID()

	openPayment := restorePaymentInStatus(t, 7, payment.Unpaid)
	closedPayment := restorePaymentInStatus(t, 8, payment.Cancelled)

	orderRepo := &MockOrderRepository{}
	paymentRepo := &MockPaymentRepository{}
	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	uowFactory := newLifecycleMocks(uow, orderRepo, paymentRepo, deliveryRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, orderID).Return(aggregate, nil)
	orderRepo.On("Update", ctx, aggregate).Return(nil)
	paymentRepo.On("PaidTotal", ctx, orderID).Return(kernel.Money(0), nil)
	paymentRepo.On("HasPaidPayment", ctx, orderID).Return(false, nil)
	paymentRepo.On("GetAllByOrder", ctx, orderID).
		Return([]*payment.Payment{openPayment, closedPayment}, nil)
	paymentRepo.On("Update", ctx, openPayment).Return(nil)
	deliveryRepo.On("ExistsForOrder", ctx, orderID).Return(false, nil)
	deliveryRepo.On("IsDeliveredForOrder", ctx, orderID).Return(false, nil)

	cmd, err := commands.NewTransitionOrderCommand(orderID.Int64(), "CANCELLED")
	require.NoError(t, err)

	handler := commands.NewTransitionOrderCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	assert.Equal(t, payment.Cancelled, openPayment.Status())
	paymentRepo.AssertNumberOfCalls(t, "Update", 1)
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_CompletionRequiresFullPaidTotal(t *testing.T) {
	ctx := context.Background()
	aggregate := restoreOrderInStatus(t, order.Paid)
	orderID := aggregate.ID()

	orderRepo := &MockOrderRepository{}
	paymentRepo := &MockPaymentRepository{}
	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	uowFactory := newLifecycleMocks(uow, orderRepo, paymentRepo, deliveryRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, orderID).Return(aggregate, nil)
	paymentRepo.On("PaidTotal", ctx, orderID).Return(kernel.Money(400_000), nil)
	paymentRepo.On("HasPaidPayment", ctx, orderID).Return(true, nil)
	deliveryRepo.On("ExistsForOrder", ctx, orderID).Return(true, nil)
	deliveryRepo.On("IsDeliveredForOrder", ctx, orderID).Return(true, nil)

	cmd, err := commands.NewTransitionOrderCommand(orderID.Int64(), "COMPLETED")
	require.NoError(t, err)

	handler := commands.NewTransitionOrderCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrGuardViolation)
	assert.Nil(t, updated)
	assert.Equal(t, order.Paid, aggregate.Status())
}

func TestTransitionOrderCommandHandler_Handle_UndeclaredEdge(t *testing.T) {
	ctx := context.Background()
	aggregate := restoreOrderInStatus(t, order.Pending)
	orderID := aggregate.ID()

	orderRepo := &MockOrderRepository{}
	paymentRepo := &MockPaymentRepository{}
	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	uowFactory := newLifecycleMocks(uow, orderRepo, paymentRepo, deliveryRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, orderID).Return(aggregate, nil)
	paymentRepo.On("PaidTotal", ctx, orderID).Return(kernel.Money(0), nil)
	paymentRepo.On("HasPaidPayment", ctx, orderID).Return(false, nil)
	deliveryRepo.On("ExistsForOrder", ctx, orderID).Return(false, nil)
	deliveryRepo.On("IsDeliveredForOrder", ctx, orderID).Return(false, nil)

	cmd, err := commands.NewTransitionOrderCommand(orderID.Int64(), "DELIVERED")
	require.NoError(t, err)

	handler := commands.NewTransitionOrderCommandHandler(uowFactory)
	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, aggregate.Status())
}
