package warehouserepo

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/warehouse"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// session is the slice of the unit of work the repository needs.
type session interface {
	TrackAggregate(id kernel.ID, aggregate any)
	RememberVersion(key string, version int64)
	KnownVersion(key string) (int64, bool)
}

// GormWarehouseReleaseNoteRepository implements
// ports.WarehouseReleaseNoteRepository using GORM.
type GormWarehouseReleaseNoteRepository struct {
	db      *gorm.DB
	session session
}

// NewGormWarehouseReleaseNoteRepository creates a new GORM release note
// repository.
func NewGormWarehouseReleaseNoteRepository(db *gorm.DB, session session) *GormWarehouseReleaseNoteRepository {
	return &GormWarehouseReleaseNoteRepository{
		db:      db,
		session: session,
	}
}

func versionKey(id int64) string {
	return fmt.Sprintf("warehouse_release_notes/%d", id)
}

// Add inserts a new release note and assigns the generated identifier back to
// the aggregate.
func (r *GormWarehouseReleaseNoteRepository) Add(ctx context.Context, aggregate *warehouse.WarehouseReleaseNote) error {
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

// Update writes the note row with a compare-and-swap on the version read
// earlier in this unit of work.
func (r *GormWarehouseReleaseNoteRepository) Update(ctx context.Context, aggregate *warehouse.WarehouseReleaseNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	current, known := r.session.KnownVersion(versionKey(dto.ID))
	if !known {
		return errs.NewObjectNotFoundError("release note", dto.ID)
	}

	result := r.db.WithContext(ctx).Model(&NoteDTO{}).
		Where("id = ? AND version = ?", dto.ID, current).
		Updates(map[string]any{
			"reason":      dto.Reason,
			"note":        dto.Note,
			"status":      dto.Status,
			"vehicle_ids": dto.VehicleIDs,
			"version":     current + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("release note", dto.ID)
	}

	r.session.RememberVersion(versionKey(dto.ID), current+1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a release note row. Callers check EnsureDeletable first.
func (r *GormWarehouseReleaseNoteRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&NoteDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("release note", id.String())
	}
	return nil
}

// Get retrieves a release note by identifier.
func (r *GormWarehouseReleaseNoteRepository) Get(ctx context.Context, id kernel.ID) (*warehouse.WarehouseReleaseNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("release note", id.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// GetAllByAgency retrieves every note of an agency, newest first.
func (r *GormWarehouseReleaseNoteRepository) GetAllByAgency(ctx context.Context, agencyID kernel.ID) ([]*warehouse.WarehouseReleaseNote, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NoteDTO
	err := r.db.WithContext(ctx).Order("id DESC").
		Find(&dtos, "agency_id = ?", agencyID.Int64()).Error
	if err != nil {
		return nil, err
	}

	notes := make([]*warehouse.WarehouseReleaseNote, 0, len(dtos))
	for _, dto := range dtos {
		note, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.session.RememberVersion(versionKey(dto.ID), dto.Version)
		notes = append(notes, note)
	}
	return notes, nil
}
