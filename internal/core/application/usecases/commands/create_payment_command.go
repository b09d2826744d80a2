package commands

import (
	"errors"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrCreatePaymentCommandIsNotConstructed is returned when a
// CreatePaymentCommand instance was not created through
// NewCreatePaymentCommand.
var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor")

// CreatePaymentCommand represents a request to add a payment (or installment
// cycle) to an order's ledger.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	amount      kernel.Money
	method      payment.Method
	form        payment.Form
	numberCycle int
	dueDate     time.Time

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to add a payment to an order.
func NewCreatePaymentCommand(
	orderID int64,
	amount int64,
	methodTag string,
	formTag string,
	numberCycle int,
	dueDate time.Time,
) (CreatePaymentCommand, error) {
	var violations []errs.FieldViolation

	if orderID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "orderId", Message: "must be a positive identifier"})
	}
	if amount <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "amount", Message: "must be greater than 0"})
	}
	method, err := payment.ParseMethod(methodTag)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Field: "paymentMethod", Message: "is not a valid payment method tag"})
	}
	form, err := payment.ParseForm(formTag)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Field: "paymentForm", Message: "is not a valid payment form tag"})
	}
	if numberCycle < 1 {
		violations = append(violations, errs.FieldViolation{
			Field: "numberCycle", Message: "must be at least 1"})
	}
	if dueDate.IsZero() {
		violations = append(violations, errs.FieldViolation{
			Field: "dueDate", Message: "is required"})
	}
	if len(violations) > 0 {
		return CreatePaymentCommand{}, errs.NewValidationError(violations...)
	}

	return CreatePaymentCommand{
		orderID:     kernel.ID(orderID),
		amount:      kernel.Money(amount),
		method:      method,
		form:        form,
		numberCycle: numberCycle,
		dueDate:     dueDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// OrderID returns the order the payment belongs to.
func (c CreatePaymentCommand) OrderID() kernel.ID {
	return c.orderID
}

// Amount returns the payment amount in minor currency units.
func (c CreatePaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the parsed payment method.
func (c CreatePaymentCommand) Method() payment.Method {
	return c.method
}

// Form returns the parsed payment form.
func (c CreatePaymentCommand) Form() payment.Form {
	return c.form
}

// NumberCycle returns the installment cycle number.
func (c CreatePaymentCommand) NumberCycle() int {
	return c.numberCycle
}

// DueDate returns when the payment falls due.
func (c CreatePaymentCommand) DueDate() time.Time {
	return c.dueDate
}
