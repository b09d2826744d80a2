package commands

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// instance was not created through NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor")

// OrderDetailInput is one raw order line as submitted by the caller.
// Amounts are minor currency units; the discount is in basis points.
type OrderDetailInput struct {
	VehicleTypeDetailID int64
	Quantity            int
	UnitWholesalePrice  int64
	DiscountBasisPoints int64
}

// CreateOrderCommand represents a request to register a new agency order with
// at least one detail line. Input-shape problems are reported as a single
// aggregated ValidationError naming every offending field.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	agencyID   kernel.ID
	employeeID kernel.ID
	customerID *kernel.ID
	details    []OrderDetailInput
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new agency order.
func NewCreateOrderCommand(
	agencyID int64,
	employeeID int64,
	customerID *int64,
	details []OrderDetailInput,
	notes string,
) (CreateOrderCommand, error) {
	var violations []errs.FieldViolation

	if agencyID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "agencyId", Message: "must be a positive identifier"})
	}
	if employeeID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "employeeId", Message: "must be a positive identifier"})
	}
	if customerID != nil && *customerID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "customerId", Message: "must be a positive identifier when present"})
	}
	if len(details) == 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "details", Message: "at least one detail line is required"})
	}
	for i, d := range details {
		if d.VehicleTypeDetailID <= 0 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("details[%d].vehicleTypeDetailId", i),
				Message: "must be a positive identifier"})
		}
		if d.Quantity <= 0 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("details[%d].quantity", i),
				Message: "must be greater than 0"})
		}
		if d.UnitWholesalePrice < 0 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("details[%d].unitWholesalePrice", i),
				Message: "must not be negative"})
		}
		if d.DiscountBasisPoints < 0 || d.DiscountBasisPoints > 10000 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("details[%d].discountBasisPoints", i),
				Message: "must lie between 0 and 10000"})
		}
	}
	if len(violations) > 0 {
		return CreateOrderCommand{}, errs.NewValidationError(violations...)
	}

	cmd := CreateOrderCommand{
		agencyID:   kernel.ID(agencyID),
		employeeID: kernel.ID(employeeID),
		details:    details,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}
	if customerID != nil {
		id := kernel.ID(*customerID)
		cmd.customerID = &id
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// AgencyID returns the ordering agency.
func (c CreateOrderCommand) AgencyID() kernel.ID {
	return c.agencyID
}

// EmployeeID returns the employee submitting the order.
func (c CreateOrderCommand) EmployeeID() kernel.ID {
	return c.employeeID
}

// CustomerID returns the optional end customer.
func (c CreateOrderCommand) CustomerID() *kernel.ID {
	return c.customerID
}

// Details returns the raw order lines.
func (c CreateOrderCommand) Details() []OrderDetailInput {
	return c.details
}

// Notes returns the free-form notes text.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}
