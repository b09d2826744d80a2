package commands_test

import (
	"context"
	"testing"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/warehouse"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreNoteInStatus(t *testing.T, status warehouse.Status, vehicleIDs ...kernel.ID) *warehouse.WarehouseReleaseNote {
	t.Helper()

	amount, err := kernel.NewMoney(2_000_000)
	require.NoError(t, err)
	note, err := warehouse.RestoreWarehouseReleaseNote(
		kernel.ID(5), kernel.ID(10), kernel.ID(20),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		amount, "agency restock", "", status, vehicleIDs)
	require.NoError(t, err)
	return note
}

func restoreVehiclesInStatus(t *testing.T, status vehicle.Status, ids ...kernel.ID) []*vehicle.Vehicle {
	t.Helper()

	vehicles := make([]*vehicle.Vehicle, 0, len(ids))
	for _, id := range ids {
		v, err := vehicle.RestoreVehicle(id, status)
		require.NoError(t, err)
		vehicles = append(vehicles, v)
	}
	return vehicles
}

func newWarehouseMocks(uow *MockUoW, noteRepo *MockNoteRepository,
	vehicleRepo *MockVehicleRepository,
) *MockWarehouseUoWFactory {
	uowFactory := &MockWarehouseUoWFactory{}
	uowFactory.On("Create").Return(uow)
	uow.On("WarehouseReleaseNoteRepository").Return(noteRepo)
	uow.On("VehicleRepository").Return(vehicleRepo).Maybe()
	return uowFactory
}

func TestUpdateReleaseNoteStatusCommandHandler_Handle_ApprovalReservesVehicles(t *testing.T) {
	ctx := context.Background()
	vehicleIDs := []kernel.ID{101, 102}
	note := restoreNoteInStatus(t, warehouse.PendingApproval, vehicleIDs...)
	vehicles := restoreVehiclesInStatus(t, vehicle.InStock, vehicleIDs...)

	noteRepo := &MockNoteRepository{}
	vehicleRepo := &MockVehicleRepository{}
	uow := &MockUoW{}
	uowFactory := newWarehouseMocks(uow, noteRepo, vehicleRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		noteRepo.On("Get", ctx, note.ID()).Return(note, nil),
		vehicleRepo.On("GetAllByIDs", ctx, vehicleIDs).Return(vehicles, nil),
		vehicleRepo.On("Update", ctx, vehicles[0]).Return(nil),
		vehicleRepo.On("Update", ctx, vehicles[1]).Return(nil),
		noteRepo.On("Update", ctx, note).Return(nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	cmd, err := commands.NewUpdateReleaseNoteStatusCommand(
		note.ID().Int64(), "CREATED", "approved by manager", "agency restock")
	require.NoError(t, err)

	handler := commands.NewUpdateReleaseNoteStatusCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, warehouse.Created, updated.Status())
	for _, v := range vehicles {
		assert.Equal(t, vehicle.Reserved, v.Status())
	}
	uow.AssertExpectations(t)
	noteRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
}

func TestUpdateReleaseNoteStatusCommandHandler_Handle_ReleaseFreesVehicles(t *testing.T) {
	ctx := context.Background()
	vehicleIDs := []kernel.ID{101}
	note := restoreNoteInStatus(t, warehouse.Processing, vehicleIDs...)
	vehicles := restoreVehiclesInStatus(t, vehicle.Reserved, vehicleIDs...)

	noteRepo := &MockNoteRepository{}
	vehicleRepo := &MockVehicleRepository{}
	uow := &MockUoW{}
	uowFactory := newWarehouseMocks(uow, noteRepo, vehicleRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	noteRepo.On("Get", ctx, note.ID()).Return(note, nil)
	noteRepo.On("Update", ctx, note).Return(nil)
	vehicleRepo.On("GetAllByIDs", ctx, vehicleIDs).Return(vehicles, nil)
	vehicleRepo.On("Update", ctx, vehicles[0]).Return(nil)

	cmd, err := commands.NewUpdateReleaseNoteStatusCommand(
		note.ID().Int64(), "RELEASED", "", "agency restock")
	require.NoError(t, err)

	handler := commands.NewUpdateReleaseNoteStatusCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, warehouse.Released, updated.Status())
	assert.Equal(t, vehicle.Released, vehicles[0].Status())
}

func TestUpdateReleaseNoteStatusCommandHandler_Handle_CancelReturnsReservedVehicles(t *testing.T) {
	ctx := context.Background()
	vehicleIDs := []kernel.ID{101, 102}
	note := restoreNoteInStatus(t, warehouse.Created, vehicleIDs...)
	vehicles := restoreVehiclesInStatus(t, vehicle.Reserved, vehicleIDs...)

	noteRepo := &MockNoteRepository{}
	vehicleRepo := &MockVehicleRepository{}
	uow := &MockUoW{}
	uowFactory := newWarehouseMocks(uow, noteRepo, vehicleRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	noteRepo.On("Get", ctx, note.ID()).Return(note, nil)
	noteRepo.On("Update", ctx, note).Return(nil)
	vehicleRepo.On("GetAllByIDs", ctx, vehicleIDs).Return(vehicles, nil)
	vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil)

	cmd, err := commands.NewUpdateReleaseNoteStatusCommand(
		note.ID().Int64(), "CANCELLED", "out of stock at depot", "agency restock")
	require.NoError(t, err)

	handler := commands.NewUpdateReleaseNoteStatusCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, warehouse.Cancelled, updated.Status())
	for _, v := range vehicles {
		assert.Equal(t, vehicle.InStock, v.Status())
	}
	vehicleRepo.AssertNumberOfCalls(t, "Update", 2)
}

func TestUpdateReleaseNoteStatusCommandHandler_Handle_CancelFromPendingLeavesVehiclesAlone(t *testing.T) {
	ctx := context.Background()
	note := restoreNoteInStatus(t, warehouse.PendingApproval, kernel.ID(101))

	noteRepo := &MockNoteRepository{}
	vehicleRepo := &MockVehicleRepository{}
	uow := &MockUoW{}
	uowFactory := newWarehouseMocks(uow, noteRepo, vehicleRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	noteRepo.On("Get", ctx, note.ID()).Return(note, nil)
	noteRepo.On("Update", ctx, note).Return(nil)

	cmd, err := commands.NewUpdateReleaseNoteStatusCommand(
		note.ID().Int64(), "CANCELLED", "", "agency restock")
	require.NoError(t, err)

	handler := commands.NewUpdateReleaseNoteStatusCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, warehouse.Cancelled, updated.Status())
	vehicleRepo.AssertNotCalled(t, "GetAllByIDs", mock.Anything, mock.Anything)
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateReleaseNoteStatusCommandHandler_Handle_UndeclaredEdge(t *testing.T) {
	ctx := context.Background()
	note := restoreNoteInStatus(t, warehouse.Created, kernel.ID(101))

	noteRepo := &MockNoteRepository{}
	vehicleRepo := &MockVehicleRepository{}
	uow := &MockUoW{}
	uowFactory := newWarehouseMocks(uow, noteRepo, vehicleRepo)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	noteRepo.On("Get", ctx, note.ID()).Return(note, nil)

	cmd, err := commands.NewUpdateReleaseNoteStatusCommand(
		note.ID().Int64(), "RELEASED", "", "agency restock")
	require.NoError(t, err)

	handler := commands.NewUpdateReleaseNoteStatusCommandHandler(uowFactory)
	updated, err := handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Nil(t, updated)
	noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
