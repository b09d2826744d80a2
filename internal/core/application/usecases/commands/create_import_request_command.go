package commands

import (
	"context"
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrCreateImportRequestCommandIsNotConstructed is returned when a
// CreateImportRequestCommand instance was not created through
// NewCreateImportRequestCommand.
var ErrCreateImportRequestCommandIsNotConstructed = errors.New(
	"CreateImportRequestCommand must be created via NewCreateImportRequestCommand constructor")

// ImportLineInput is one raw import request line as submitted by the caller.
type ImportLineInput struct {
	VehicleTypeID int64
	Version       string
	Color         string
	Quantity      int
}

// CreateImportRequestCommand represents a request to file a vehicle import
// request for an agency.
type CreateImportRequestCommand struct { //nolint:recvcheck //using for validation
	agencyID   kernel.ID
	employeeID kernel.ID
	note       string
	lines      []ImportLineInput

	guard guard.ConstructorGuard
}

// NewCreateImportRequestCommand creates a command to file an import request.
func NewCreateImportRequestCommand(
	agencyID int64,
	employeeID int64,
	note string,
	lines []ImportLineInput,
) (CreateImportRequestCommand, error) {
	var violations []errs.FieldViolation

	if agencyID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "agencyId", Message: "must be a positive identifier"})
	}
	if employeeID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "employeeId", Message: "must be a positive identifier"})
	}
	if len(lines) == 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "lineItems", Message: "at least one line item is required"})
	}
	for i, line := range lines {
		if line.VehicleTypeID <= 0 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("lineItems[%d].vehicleTypeId", i),
				Message: "must be a positive identifier"})
		}
		if line.Version == "" {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("lineItems[%d].version", i),
				Message: "is required"})
		}
		if line.Color == "" {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("lineItems[%d].color", i),
				Message: "is required"})
		}
		if line.Quantity <= 0 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("lineItems[%d].quantity", i),
				Message: "must be greater than 0"})
		}
	}
	if len(violations) > 0 {
		return CreateImportRequestCommand{}, errs.NewValidationError(violations...)
	}

	return CreateImportRequestCommand{
		agencyID:   kernel.ID(agencyID),
		employeeID: kernel.ID(employeeID),
		note:       note,
		lines:      lines,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateImportRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateImportRequestCommandIsNotConstructed)
}

// AgencyID returns the requesting agency.
func (c CreateImportRequestCommand) AgencyID() kernel.ID {
	return c.agencyID
}

// EmployeeID returns the filing employee.
func (c CreateImportRequestCommand) EmployeeID() kernel.ID {
	return c.employeeID
}

// Note returns the free-form note text.
func (c CreateImportRequestCommand) Note() string {
	return c.note
}

// Lines returns the raw line items.
func (c CreateImportRequestCommand) Lines() []ImportLineInput {
	return c.lines
}

// CreateImportRequestCommandHandler files an import request in REQUESTED status.
type CreateImportRequestCommandHandler struct {
	uowFactory ImportRequestUoWFactory
}

// NewCreateImportRequestCommandHandler creates a handler for import request creation.
func NewCreateImportRequestCommandHandler(uowFactory ImportRequestUoWFactory) CreateImportRequestCommandHandler {
	return CreateImportRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the persisted request.
func (h *CreateImportRequestCommandHandler) Handle(ctx context.Context, cmd CreateImportRequestCommand) (*intake.ImportRequest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := make([]intake.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		line, err := intake.NewLine(
			kernel.ID(input.VehicleTypeID), input.Version, input.Color, input.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	aggregate, err := intake.NewImportRequest(
		cmd.AgencyID(), cmd.EmployeeID(), cmd.Note(), lines)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ImportRequestRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
