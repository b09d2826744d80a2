package commands_test

import (
	"context"
	"testing"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmCashPaymentCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	aggregate := restorePaymentInStatus(t, 7, payment.Unpaid)

	orderRepo := &MockOrderRepository{}
	paymentRepo := &MockPaymentRepository{}
	uow := &MockUoW{}
	uowFactory := newPaymentMocks(uow, orderRepo, paymentRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		paymentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil),
		paymentRepo.On("Update", ctx, aggregate).Return(nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	cmd, err := commands.NewConfirmCashPaymentCommand(aggregate.ID().Int64())
	require.NoError(t, err)

	handler := commands.NewConfirmCashPaymentCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.Paid, updated.Status())
	require.NotNil(t, updated.PaymentDate())
	uow.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
}

func TestConfirmCashPaymentCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := context.Background()
	aggregate := restorePaymentInStatus(t, 7, payment.Paid)

	orderRepo := &MockOrderRepository{}
	paymentRepo := &MockPaymentRepository{}
	uow := &MockUoW{}
	uowFactory := newPaymentMocks(uow, orderRepo, paymentRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	paymentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	cmd, err := commands.NewConfirmCashPaymentCommand(aggregate.ID().Int64())
	require.NoError(t, err)

	handler := commands.NewConfirmCashPaymentCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Nil(t, updated)
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
