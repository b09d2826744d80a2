package deliveryrepo

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// session is the slice of the unit of work the repository needs.
type session interface {
	TrackAggregate(id kernel.ID, aggregate any)
	RememberVersion(key string, version int64)
	KnownVersion(key string) (int64, bool)
}

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	session session
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, session session) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		session: session,
	}
}

func versionKey(id int64) string {
	return fmt.Sprintf("vehicle_deliveries/%d", id)
}

// Add inserts a new delivery and assigns the generated identifier back to the
// aggregate. The unique index on order_id rejects a second delivery for the
// same order.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.VehicleDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.session.RememberVersion(versionKey(dto.ID), 1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the delivery row with a compare-and-swap on the version read
// earlier in this unit of work.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.VehicleDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	current, known := r.session.KnownVersion(versionKey(dto.ID))
	if !known {
		return errs.NewObjectNotFoundError("delivery", dto.ID)
	}

	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, current).
		Updates(map[string]any{
			"employee_id":            dto.EmployeeID,
			"expected_delivery_date": dto.ExpectedDeliveryDate,
			"delivery_date":          dto.DeliveryDate,
			"status":                 dto.Status,
			"version":                current + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("delivery", dto.ID)
	}

	r.session.RememberVersion(versionKey(dto.ID), current+1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by identifier.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.ID) (*delivery.VehicleDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// GetByOrder retrieves the delivery belonging to an order.
func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*delivery.VehicleDelivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery for order", orderID.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// ExistsForOrder reports whether a delivery record exists for the order.
func (r *GormDeliveryRepository) ExistsForOrder(ctx context.Context, orderID kernel.ID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("order_id = ?", orderID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsDeliveredForOrder reports whether the order's delivery is DELIVERED.
// Returns false when no delivery exists.
func (r *GormDeliveryRepository) IsDeliveredForOrder(ctx context.Context, orderID kernel.ID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("order_id = ? AND status = ?", orderID.Int64(), delivery.Delivered.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
