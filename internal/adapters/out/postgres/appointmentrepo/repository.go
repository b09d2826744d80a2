package appointmentrepo

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/appointment"
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

// GormAppointmentRepository implements ports.AppointmentRepository using GORM.
type GormAppointmentRepository struct {
	db      *gorm.DB
	session session
}

// NewGormAppointmentRepository creates a new GORM appointment repository.
func NewGormAppointmentRepository(db *gorm.DB, session session) *GormAppointmentRepository {
	return &GormAppointmentRepository{
		db:      db,
		session: session,
	}
}

func versionKey(id int64) string {
	return fmt.Sprintf("test_drive_appointments/%d", id)
}

// Add inserts a new appointment and assigns the generated identifier back to
// the aggregate.
func (r *GormAppointmentRepository) Add(ctx context.Context, aggregate *appointment.TestDriveAppointment) error {
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

// Update writes the appointment row with a compare-and-swap on the version
// read earlier in this unit of work.
func (r *GormAppointmentRepository) Update(ctx context.Context, aggregate *appointment.TestDriveAppointment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	current, known := r.session.KnownVersion(versionKey(dto.ID))
	if !known {
		return errs.NewObjectNotFoundError("appointment", dto.ID)
	}

	result := r.db.WithContext(ctx).Model(&AppointmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, current).
		Updates(map[string]any{
			"vehicle_id":          dto.VehicleID,
			"date_of_appointment": dto.DateOfAppointment,
			"time_of_appointment": dto.TimeOfAppointment,
			"status":              dto.Status,
			"version":             current + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("appointment", dto.ID)
	}

	r.session.RememberVersion(versionKey(dto.ID), current+1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an appointment row. Callers check EnsureDeletable first.
func (r *GormAppointmentRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AppointmentDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("appointment", id.String())
	}
	return nil
}

// Get retrieves an appointment by identifier.
func (r *GormAppointmentRepository) Get(ctx context.Context, id kernel.ID) (*appointment.TestDriveAppointment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AppointmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("appointment", id.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// GetAllByCustomer retrieves every appointment of a customer, soonest first.
func (r *GormAppointmentRepository) GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*appointment.TestDriveAppointment, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AppointmentDTO
	err := r.db.WithContext(ctx).
		Order("date_of_appointment, time_of_appointment, id").
		Find(&dtos, "customer_id = ?", customerID.Int64()).Error
	if err != nil {
		return nil, err
	}

	appointments := make([]*appointment.TestDriveAppointment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.session.RememberVersion(versionKey(dto.ID), dto.Version)
		appointments = append(appointments, aggregate)
	}
	return appointments, nil
}
