package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// session is the slice of the unit of work the repository needs: aggregate
// tracking plus the row-version bookkeeping for optimistic locking.
type session interface {
	TrackAggregate(id kernel.ID, aggregate any)
	RememberVersion(key string, version int64)
	KnownVersion(key string) (int64, bool)
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	session session
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, session session) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		session: session,
	}
}

func versionKey(id int64) string {
	return fmt.Sprintf("orders/%d", id)
}

// Add inserts a new order with its detail lines, assigns the generated
// identifier back to the aggregate and derives the contract number from it.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

	contractNumber := fmt.Sprintf("AGO-%d", dto.ID)
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("contract_number", contractNumber).Error
	if err != nil {
		return err
	}
	if err = aggregate.AssignContractNumber(contractNumber); err != nil {
		return err
	}

	r.session.RememberVersion(versionKey(dto.ID), 1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row with a compare-and-swap on the version read
// earlier in this unit of work. Detail lines are immutable and left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	current, known := r.session.KnownVersion(versionKey(dto.ID))
	if !known {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, current).
		Updates(map[string]any{
			"notes":   dto.Notes,
			"status":  dto.Status,
			"version": current + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", dto.ID)
	}

	r.session.RememberVersion(versionKey(dto.ID), current+1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its detail lines by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Details").First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// GetAllByAgency retrieves an agency's orders, oldest first.
func (r *GormOrderRepository) GetAllByAgency(ctx context.Context, agencyID kernel.ID) ([]*order.Order, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Details").
		Order("id").
		Find(&dtos, "agency_id = ?", agencyID.Int64()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		r.session.RememberVersion(versionKey(dto.ID), dto.Version)
		orders = append(orders, aggregate)
	}

	return orders, nil
}
