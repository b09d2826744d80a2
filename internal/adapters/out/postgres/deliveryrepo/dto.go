package deliveryrepo

import (
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"
)

// DeliveryDTO is the GORM row for vehicle deliveries. An order has at most
// one delivery, enforced by the unique index on order_id.
type DeliveryDTO struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement"`
	OrderID              int64  `gorm:"uniqueIndex;not null"`
	EmployeeID           int64  `gorm:"not null"`
	ExpectedDeliveryDate time.Time
	DeliveryDate         *time.Time
	Status               string `gorm:"not null"`
	Version              int64  `gorm:"not null"`
	CreatedAt            time.Time
}

// TableName overrides the default GORM table naming.
func (DeliveryDTO) TableName() string {
	return "vehicle_deliveries"
}

func fromDomain(aggregate *delivery.VehicleDelivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                   aggregate.ID().Int64(),
		OrderID:              aggregate.OrderID().Int64(),
		EmployeeID:           aggregate.EmployeeID().Int64(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		DeliveryDate:         aggregate.DeliveryDate(),
		Status:               aggregate.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.VehicleDelivery, error) {
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreVehicleDelivery(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrderID),
		kernel.ID(dto.EmployeeID),
		dto.ExpectedDeliveryDate,
		dto.DeliveryDate,
		status,
	)
}
