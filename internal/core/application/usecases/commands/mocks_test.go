package commands_test

import (
	"context"
	"errors"
	"time"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/warehouse"
	"dealership/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var errNotImplemented = errors.New("not implemented in mock")

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByAgency(_ context.Context, _ kernel.ID) ([]*order.Order, error) {
	return nil, errNotImplemented
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.ID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetAllUnpaidDueBefore(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) PaidTotal(ctx context.Context, orderID kernel.ID) (kernel.Money, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockPaymentRepository) NonCancelledTotal(ctx context.Context, orderID kernel.ID) (kernel.Money, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockPaymentRepository) HasPaidPayment(ctx context.Context, orderID kernel.ID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.VehicleDelivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.VehicleDelivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.ID) (*delivery.VehicleDelivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.VehicleDelivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrder(_ context.Context, _ kernel.ID) (*delivery.VehicleDelivery, error) {
	return nil, errNotImplemented
}

func (m *MockDeliveryRepository) ExistsForOrder(ctx context.Context, orderID kernel.ID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) IsDeliveredForOrder(ctx context.Context, orderID kernel.ID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockNoteRepository struct{ mock.Mock }

func (m *MockNoteRepository) Add(ctx context.Context, n *warehouse.WarehouseReleaseNote) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoteRepository) Update(ctx context.Context, n *warehouse.WarehouseReleaseNote) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNoteRepository) Get(ctx context.Context, id kernel.ID) (*warehouse.WarehouseReleaseNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.WarehouseReleaseNote), args.Error(1)
}

func (m *MockNoteRepository) GetAllByAgency(_ context.Context, _ kernel.ID) ([]*warehouse.WarehouseReleaseNote, error) {
	return nil, errNotImplemented
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(_ context.Context, _ kernel.ID) (*vehicle.Vehicle, error) {
	return nil, errNotImplemented
}

func (m *MockVehicleRepository) GetAllByIDs(ctx context.Context, ids []kernel.ID) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockImportRequestRepository struct{ mock.Mock }

func (m *MockImportRequestRepository) Add(ctx context.Context, r *intake.ImportRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockImportRequestRepository) Update(ctx context.Context, r *intake.ImportRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockImportRequestRepository) Get(ctx context.Context, id kernel.ID) (*intake.ImportRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*intake.ImportRequest), args.Error(1)
}

func (m *MockImportRequestRepository) GetAllByAgency(_ context.Context, _ kernel.ID) ([]*intake.ImportRequest, error) {
	return nil, errNotImplemented
}

type MockAppointmentRepository struct{ mock.Mock }

func (m *MockAppointmentRepository) Add(ctx context.Context, a *appointment.TestDriveAppointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, a *appointment.TestDriveAppointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Get(ctx context.Context, id kernel.ID) (*appointment.TestDriveAppointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.TestDriveAppointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAllByCustomer(_ context.Context, _ kernel.ID) ([]*appointment.TestDriveAppointment, error) {
	return nil, errNotImplemented
}

// MockUoW satisfies every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) WarehouseReleaseNoteRepository() ports.WarehouseReleaseNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseReleaseNoteRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) ImportRequestRepository() ports.ImportRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportRequestRepository)
}

func (m *MockUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderLifecycleUoWFactory struct{ mock.Mock }

func (m *MockOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderLifecycleUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockImportRequestUoWFactory struct{ mock.Mock }

func (m *MockImportRequestUoWFactory) Create() commands.ImportRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.ImportRequestUoW)
}

type MockAppointmentUoWFactory struct{ mock.Mock }

func (m *MockAppointmentUoWFactory) Create() commands.AppointmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AppointmentUoW)
}

type MockVnpayGateway struct{ mock.Mock }

func (m *MockVnpayGateway) CreateSession(ctx context.Context, p *payment.Payment) (ports.PaymentSession, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(ports.PaymentSession), args.Error(1)
}
