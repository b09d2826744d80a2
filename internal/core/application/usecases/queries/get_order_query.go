// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read through
// gorm with raw SQL and return flat response structs, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery instance
// was not created through NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery retrieves a single order with its detail lines and the derived
// payment totals.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValidationError(errs.FieldViolation{
			Field: "orderId", Message: "must be a positive identifier"})
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderDetailResponse is one order line in a GetOrderQueryResponse.
// LineTotal is the discounted quantity price in minor currency units.
type OrderDetailResponse struct {
	ID                  int64
	VehicleTypeDetailID int64
	Quantity            int
	UnitWholesalePrice  int64
	DiscountBasisPoints int64
	LineTotal           int64
}

// GetOrderQueryResponse is the full read model of one order. PaidTotal sums
// the PAID payments; RemainingAmount is TotalAmount minus PaidTotal.
type GetOrderQueryResponse struct {
	ID              int64
	AgencyID        int64
	EmployeeID      int64
	CustomerID      *int64
	ContractNumber  string
	Notes           string
	Status          string
	CreatedAt       time.Time
	TotalAmount     int64
	PaidTotal       int64
	RemainingAmount int64
	Details         []OrderDetailResponse
}
