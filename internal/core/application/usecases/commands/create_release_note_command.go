package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/warehouse"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrCreateReleaseNoteCommandIsNotConstructed is returned when a
// CreateReleaseNoteCommand instance was not created through
// NewCreateReleaseNoteCommand.
var ErrCreateReleaseNoteCommandIsNotConstructed = errors.New(
	"CreateReleaseNoteCommand must be created via NewCreateReleaseNoteCommand constructor")

// CreateReleaseNoteCommand represents a request to open a warehouse release
// note over a set of vehicles.
type CreateReleaseNoteCommand struct { //nolint:recvcheck //using for validation
	agencyID    kernel.ID
	employeeID  kernel.ID
	releaseDate time.Time
	totalAmount kernel.Money
	reason      string
	vehicleIDs  []kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateReleaseNoteCommand creates a command to open a release note.
func NewCreateReleaseNoteCommand(
	agencyID int64,
	employeeID int64,
	releaseDate time.Time,
	totalAmount int64,
	reason string,
	vehicleIDs []int64,
) (CreateReleaseNoteCommand, error) {
	var violations []errs.FieldViolation

	if agencyID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "agencyId", Message: "must be a positive identifier"})
	}
	if employeeID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "employeeId", Message: "must be a positive identifier"})
	}
	if releaseDate.IsZero() {
		violations = append(violations, errs.FieldViolation{
			Field: "releaseDate", Message: "is required"})
	}
	if totalAmount < 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "totalAmount", Message: "must not be negative"})
	}
	if len(vehicleIDs) == 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "vehicleIds", Message: "at least one vehicle is required"})
	}
	for i, id := range vehicleIDs {
		if id <= 0 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("vehicleIds[%d]", i),
				Message: "must be a positive identifier"})
		}
	}
	if len(violations) > 0 {
		return CreateReleaseNoteCommand{}, errs.NewValidationError(violations...)
	}

	ids := make([]kernel.ID, len(vehicleIDs))
	for i, id := range vehicleIDs {
		ids[i] = kernel.ID(id)
	}

	return CreateReleaseNoteCommand{
		agencyID:    kernel.ID(agencyID),
		employeeID:  kernel.ID(employeeID),
		releaseDate: releaseDate,
		totalAmount: kernel.Money(totalAmount),
		reason:      reason,
		vehicleIDs:  ids,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReleaseNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateReleaseNoteCommandIsNotConstructed)
}

// AgencyID returns the receiving agency.
func (c CreateReleaseNoteCommand) AgencyID() kernel.ID {
	return c.agencyID
}

// EmployeeID returns the issuing employee.
func (c CreateReleaseNoteCommand) EmployeeID() kernel.ID {
	return c.employeeID
}

// ReleaseDate returns the planned release date.
func (c CreateReleaseNoteCommand) ReleaseDate() time.Time {
	return c.releaseDate
}

// TotalAmount returns the declared value of the released vehicles.
func (c CreateReleaseNoteCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// Reason returns the release reason.
func (c CreateReleaseNoteCommand) Reason() string {
	return c.reason
}

// VehicleIDs returns the vehicles to be released.
func (c CreateReleaseNoteCommand) VehicleIDs() []kernel.ID {
	return c.vehicleIDs
}

// CreateReleaseNoteCommandHandler opens a release note in PENDING_APPROVAL.
// Every referenced vehicle must exist and still be IN_STOCK; reservation only
// happens later, when the note is approved.
type CreateReleaseNoteCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateReleaseNoteCommandHandler creates a handler for release note creation.
func NewCreateReleaseNoteCommandHandler(uowFactory WarehouseUoWFactory) CreateReleaseNoteCommandHandler {
	return CreateReleaseNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the persisted note.
func (h *CreateReleaseNoteCommandHandler) Handle(ctx context.Context, cmd CreateReleaseNoteCommand) (*warehouse.WarehouseReleaseNote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicles, err := uow.VehicleRepository().GetAllByIDs(ctx, cmd.VehicleIDs())
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if v.Status() != vehicle.InStock {
			return nil, errs.NewGuardViolationError(warehouse.Kind,
				fmt.Sprintf("vehicle %s is not IN_STOCK", v.ID()))
		}
	}

	aggregate, err := warehouse.NewWarehouseReleaseNote(
		cmd.AgencyID(), cmd.EmployeeID(), cmd.ReleaseDate(),
		cmd.TotalAmount(), cmd.Reason(), cmd.VehicleIDs())
	if err != nil {
		return nil, err
	}

	if err = uow.WarehouseReleaseNoteRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
