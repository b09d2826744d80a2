package queries

import (
	"errors"
	"time"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrListPaymentsByOrderQueryIsNotConstructed is returned when a
// ListPaymentsByOrderQuery instance was not created through
// NewListPaymentsByOrderQuery.
var ErrListPaymentsByOrderQueryIsNotConstructed = errors.New(
	"ListPaymentsByOrderQuery must be created via NewListPaymentsByOrderQuery constructor")

// ListPaymentsByOrderQuery retrieves an order's payment ledger, oldest first.
type ListPaymentsByOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewListPaymentsByOrderQuery creates a query for the given order's ledger.
func NewListPaymentsByOrderQuery(orderID int64) (ListPaymentsByOrderQuery, error) {
	if orderID <= 0 {
		return ListPaymentsByOrderQuery{}, errs.NewValidationError(errs.FieldViolation{
			Field: "orderId", Message: "must be a positive identifier"})
	}
	return ListPaymentsByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPaymentsByOrderQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsByOrderQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is read.
func (q ListPaymentsByOrderQuery) OrderID() int64 {
	return q.orderID
}

// PaymentResponse is one ledger row. Amounts are minor currency units.
type PaymentResponse struct {
	ID            int64
	OrderID       int64
	Amount        int64
	Method        string
	Form          string
	NumberCycle   int
	DueDate       time.Time
	PaymentDate   *time.Time
	PenaltyAmount int64
	VnpayCode     *string
	VnpayTxnRef   *string
	Status        string
}
