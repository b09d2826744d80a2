package vehiclerepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
)

// VehicleDTO is the GORM row for vehicle stock entries. Only the stock status
// lives here; descriptive vehicle data sits outside this service.
type VehicleDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Status    string `gorm:"not null"`
	Version   int64  `gorm:"not null"`
	CreatedAt time.Time
}

// TableName overrides the default GORM table naming.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:     aggregate.ID().Int64(),
		Status: aggregate.Status().String(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	status, err := vehicle.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreVehicle(kernel.ID(dto.ID), status)
}
