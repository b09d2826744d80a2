package intakerepo

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/intake"
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

// GormImportRequestRepository implements ports.ImportRequestRepository using
// GORM.
type GormImportRequestRepository struct {
	db      *gorm.DB
	session session
}

// NewGormImportRequestRepository creates a new GORM import request repository.
func NewGormImportRequestRepository(db *gorm.DB, session session) *GormImportRequestRepository {
	return &GormImportRequestRepository{
		db:      db,
		session: session,
	}
}

func versionKey(id int64) string {
	return fmt.Sprintf("import_requests/%d", id)
}

// Add inserts a new import request with its lines and assigns the generated
// identifier back to the aggregate.
func (r *GormImportRequestRepository) Add(ctx context.Context, aggregate *intake.ImportRequest) error {
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

// Update writes the request row with a compare-and-swap on the version read
// earlier in this unit of work. Lines are fixed after creation and are not
// rewritten.
func (r *GormImportRequestRepository) Update(ctx context.Context, aggregate *intake.ImportRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	current, known := r.session.KnownVersion(versionKey(dto.ID))
	if !known {
		return errs.NewObjectNotFoundError("import request", dto.ID)
	}

	result := r.db.WithContext(ctx).Model(&ImportRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, current).
		Updates(map[string]any{
			"note":    dto.Note,
			"status":  dto.Status,
			"version": current + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("import request", dto.ID)
	}

	r.session.RememberVersion(versionKey(dto.ID), current+1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an import request with its line items.
func (r *GormImportRequestRepository) Get(ctx context.Context, id kernel.ID) (*intake.ImportRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ImportRequestDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("import request", id.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// GetAllByAgency retrieves every request of an agency, newest first.
func (r *GormImportRequestRepository) GetAllByAgency(ctx context.Context, agencyID kernel.ID) ([]*intake.ImportRequest, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ImportRequestDTO
	err := r.db.WithContext(ctx).Preload("Lines").Order("id DESC").
		Find(&dtos, "agency_id = ?", agencyID.Int64()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*intake.ImportRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.session.RememberVersion(versionKey(dto.ID), dto.Version)
		requests = append(requests, request)
	}
	return requests, nil
}
