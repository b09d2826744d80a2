package vehiclerepo

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// session is the slice of the unit of work the repository needs.
type session interface {
	TrackAggregate(id kernel.ID, aggregate any)
	RememberVersion(key string, version int64)
	KnownVersion(key string) (int64, bool)
}

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	session session
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, session session) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		session: session,
	}
}

func versionKey(id int64) string {
	return fmt.Sprintf("vehicles/%d", id)
}

// Add inserts a new vehicle row and assigns the generated identifier back to
// the aggregate.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
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

// Update writes the vehicle's stock status with a compare-and-swap on the
// version read earlier in this unit of work.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	current, known := r.session.KnownVersion(versionKey(dto.ID))
	if !known {
		return errs.NewObjectNotFoundError("vehicle", dto.ID)
	}

	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("id = ? AND version = ?", dto.ID, current).
		Updates(map[string]any{
			"status":  dto.Status,
			"version": current + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("vehicle", dto.ID)
	}

	r.session.RememberVersion(versionKey(dto.ID), current+1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by identifier.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// GetAllByIDs retrieves the given vehicles. Missing ids surface as an
// ObjectNotFoundError so a note can never be approved against phantom stock.
func (r *GormVehicleRepository) GetAllByIDs(ctx context.Context, ids []kernel.ID) ([]*vehicle.Vehicle, error) {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Int64())
	}

	var dtos []VehicleDTO
	err := r.db.WithContext(ctx).Order("id").Find(&dtos, "id IN ?", raw).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) != len(raw) {
		found := make(map[int64]struct{}, len(dtos))
		for _, dto := range dtos {
			found[dto.ID] = struct{}{}
		}
		for _, id := range raw {
			if _, ok := found[id]; !ok {
				return nil, errs.NewObjectNotFoundError("vehicle", id)
			}
		}
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.session.RememberVersion(versionKey(dto.ID), dto.Version)
		vehicles = append(vehicles, aggregate)
	}
	return vehicles, nil
}
