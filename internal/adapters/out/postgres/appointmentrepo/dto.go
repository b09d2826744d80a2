package appointmentrepo

import (
	"time"

	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/kernel"
)

// AppointmentDTO is the GORM row for test-drive appointments. The time of day
// is kept as the "HH:MM" wire string next to the date column.
type AppointmentDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID        int64 `gorm:"index;not null"`
	VehicleID         int64 `gorm:"not null"`
	DateOfAppointment time.Time
	TimeOfAppointment string
	Status            string `gorm:"not null"`
	Version           int64  `gorm:"not null"`
	CreatedAt         time.Time
}

// TableName overrides the default GORM table naming.
func (AppointmentDTO) TableName() string {
	return "test_drive_appointments"
}

func fromDomain(aggregate *appointment.TestDriveAppointment) AppointmentDTO {
	return AppointmentDTO{
		ID:                aggregate.ID().Int64(),
		CustomerID:        aggregate.CustomerID().Int64(),
		VehicleID:         aggregate.VehicleID().Int64(),
		DateOfAppointment: aggregate.DateOfAppointment(),
		TimeOfAppointment: aggregate.TimeOfAppointment(),
		Status:            aggregate.Status().String(),
	}
}

func toDomain(dto AppointmentDTO) (*appointment.TestDriveAppointment, error) {
	status, err := appointment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return appointment.RestoreTestDriveAppointment(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		kernel.ID(dto.VehicleID),
		dto.DateOfAppointment,
		dto.TimeOfAppointment,
		status,
	)
}
