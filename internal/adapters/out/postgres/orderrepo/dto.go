// Package orderrepo persists order aggregates through GORM.
// Handles the mapping between the order domain model and its relational shape:
// one row per order plus one row per detail line.
package orderrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
)

// OrderDTO is the database shape of an order aggregate. The status column
// stores the wire tag string; the version column backs optimistic locking.
type OrderDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	AgencyID       int64  `gorm:"index"`
	CustomerID     *int64 `gorm:"index"`
	EmployeeID     int64
	ContractNumber string `gorm:"uniqueIndex"`
	Notes          string
	Status         string           `gorm:"index"`
	Details        []OrderDetailDTO `gorm:"foreignKey:OrderID"`
	Version        int64
	CreatedAt      time.Time
}

// TableName overrides GORM's naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO is one order line row. Lines are immutable after insert.
type OrderDetailDTO struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	OrderID             int64 `gorm:"index"`
	VehicleTypeDetailID int64
	Quantity            int
	UnitWholesalePrice  int64
	DiscountBps         int64
}

// TableName overrides GORM's naming convention.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *int64
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Int64()
		customerID = &raw
	}

	details := make([]OrderDetailDTO, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		details = append(details, OrderDetailDTO{
			OrderID:             aggregate.ID().Int64(),
			VehicleTypeDetailID: detail.VehicleTypeDetailID().Int64(),
			Quantity:            detail.Quantity(),
			UnitWholesalePrice:  detail.UnitWholesalePrice().Int64(),
			DiscountBps:         detail.Discount().BasisPoints(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Int64(),
		AgencyID:       aggregate.AgencyID().Int64(),
		CustomerID:     customerID,
		EmployeeID:     aggregate.EmployeeID().Int64(),
		ContractNumber: aggregate.ContractNumber(),
		Notes:          aggregate.Notes(),
		Status:         aggregate.Status().String(),
		Details:        details,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var customerID *kernel.ID
	if dto.CustomerID != nil {
		id := kernel.ID(*dto.CustomerID)
		customerID = &id
	}

	details := make([]order.Detail, 0, len(dto.Details))
	for _, line := range dto.Details {
		price, priceErr := kernel.NewMoney(line.UnitWholesalePrice)
		if priceErr != nil {
			return nil, priceErr
		}
		discount, discountErr := kernel.NewDiscount(line.DiscountBps)
		if discountErr != nil {
			return nil, discountErr
		}
		detail, detailErr := order.NewDetail(
			kernel.ID(line.VehicleTypeDetailID), line.Quantity, price, discount)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, detail)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.AgencyID),
		kernel.ID(dto.EmployeeID),
		customerID,
		dto.ContractNumber,
		dto.Notes,
		status,
		details,
	)
}
