// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction; every repository
// obtained from it runs inside that transaction, so a business operation that
// touches several aggregates commits or rolls back as a whole.
//
// Concurrency is optimistic: every aggregate row carries a version column.
// Repositories remember the version they read within the unit of work and
// update with a compare-and-swap; a lost race surfaces as a ConflictError,
// never as a silently overwritten row.
package postgres

import (
	"context"

	"dealership/internal/adapters/out/postgres/appointmentrepo"
	"dealership/internal/adapters/out/postgres/deliveryrepo"
	"dealership/internal/adapters/out/postgres/intakerepo"
	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/adapters/out/postgres/paymentrepo"
	"dealership/internal/adapters/out/postgres/vehiclerepo"
	"dealership/internal/adapters/out/postgres/warehouserepo"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state and version bookkeeping.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
		versions:          make(map[string]int64),
	}
}

// GormUnitOfWork coordinates one database transaction across the repositories
// and remembers the row versions read within it for compare-and-swap updates.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
	versions          map[string]int64
}

// Begin starts the transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused after.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. The unit of work cannot be reused after.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns the order repository bound to this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PaymentRepository returns the payment repository bound to this unit of work.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// DeliveryRepository returns the delivery repository bound to this unit of work.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// WarehouseReleaseNoteRepository returns the release note repository bound to
// this unit of work.
func (uow *GormUnitOfWork) WarehouseReleaseNoteRepository() ports.WarehouseReleaseNoteRepository {
	return warehouserepo.NewGormWarehouseReleaseNoteRepository(uow.conn(), uow)
}

// VehicleRepository returns the vehicle repository bound to this unit of work.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

// ImportRequestRepository returns the import request repository bound to this
// unit of work.
func (uow *GormUnitOfWork) ImportRequestRepository() ports.ImportRequestRepository {
	return intakerepo.NewGormImportRequestRepository(uow.conn(), uow)
}

// AppointmentRepository returns the appointment repository bound to this unit
// of work.
func (uow *GormUnitOfWork) AppointmentRepository() ports.AppointmentRepository {
	return appointmentrepo.NewGormAppointmentRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// RememberVersion records the row version read for a key ("table/id") so a
// later update within the same unit of work can compare-and-swap against it.
func (uow *GormUnitOfWork) RememberVersion(key string, version int64) {
	uow.versions[key] = version
}

// KnownVersion returns the remembered row version for a key, if any.
func (uow *GormUnitOfWork) KnownVersion(key string) (int64, bool) {
	version, ok := uow.versions[key]
	return version, ok
}
