package intake

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrImportRequestIsNotConstructed is returned when an ImportRequest instance
// was not created through NewImportRequest or RestoreImportRequest.
var ErrImportRequestIsNotConstructed = errors.New(
	"ImportRequest must be created via NewImportRequest constructor")

// Line is one requested batch of vehicles of a given type, version and color.
type Line struct {
	vehicleTypeID kernel.ID
	version       string
	color         string
	quantity      int
}

// NewLine creates a validated import request line.
func NewLine(vehicleTypeID kernel.ID, version, color string, quantity int) (Line, error) {
	if err := vehicleTypeID.Validate(); err != nil {
		return Line{}, err
	}
	if version == "" {
		return Line{}, errs.NewValueIsRequiredError("version")
	}
	if color == "" {
		return Line{}, errs.NewValueIsRequiredError("color")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantity must be positive, got %d", quantity))
	}
	return Line{
		vehicleTypeID: vehicleTypeID,
		version:       version,
		color:         color,
		quantity:      quantity,
	}, nil
}

// VehicleTypeID returns the requested vehicle type.
func (l Line) VehicleTypeID() kernel.ID { return l.vehicleTypeID }

// Version returns the requested model version.
func (l Line) Version() string { return l.version }

// Color returns the requested color.
func (l Line) Color() string { return l.color }

// Quantity returns how many units are requested.
func (l Line) Quantity() int { return l.quantity }

// ImportRequest asks the manufacturer to stock an agency with vehicles.
// It is decided exactly once: REQUESTED moves to APPROVED or REJECTED and
// stops there.
type ImportRequest struct {
	id         kernel.ID
	agencyID   kernel.ID
	employeeID kernel.ID
	note       string
	status     Status
	lines      []Line

	isConstructed bool
}

// NewImportRequest creates a request in REQUESTED status with at least one line.
func NewImportRequest(
	agencyID kernel.ID,
	employeeID kernel.ID,
	note string,
	lines []Line,
) (*ImportRequest, error) {
	request := &ImportRequest{
		note:          note,
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setAgencyID(agencyID),
		request.setEmployeeID(employeeID),
		request.setLines(lines),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreImportRequest reconstructs a request from persistence.
func RestoreImportRequest(
	id kernel.ID,
	agencyID kernel.ID,
	employeeID kernel.ID,
	note string,
	status Status,
	lines []Line,
) (*ImportRequest, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	request, err := NewImportRequest(agencyID, employeeID, note, lines)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	request.id = id
	request.status = status
	return request, nil
}

// Validate ensures the ImportRequest instance was properly constructed.
func (r *ImportRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrImportRequestIsNotConstructed
	}
	return nil
}

// ID returns the request identifier; zero until first persisted.
func (r *ImportRequest) ID() kernel.ID {
	return r.id
}

// AgencyID returns the requesting agency.
func (r *ImportRequest) AgencyID() kernel.ID {
	return r.agencyID
}

// EmployeeID returns the employee who filed the request.
func (r *ImportRequest) EmployeeID() kernel.ID {
	return r.employeeID
}

// Note returns the free-form note text.
func (r *ImportRequest) Note() string {
	return r.note
}

// Status returns the current request status.
func (r *ImportRequest) Status() Status {
	return r.status
}

// Lines returns a copy of the request's line items.
func (r *ImportRequest) Lines() []Line {
	lines := make([]Line, len(r.lines))
	copy(lines, r.lines)
	return lines
}

// AssignID sets the identifier assigned by the store on first insert.
func (r *ImportRequest) AssignID(id kernel.ID) error {
	if !r.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("import request already has id %s", r.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// TransitionTo decides the request. Only REQUESTED has outgoing edges, so a
// decided request cannot be flipped.
func (r *ImportRequest) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !r.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(Kind, r.status.String(), target.String())
	}
	r.status = target
	return nil
}

func (r *ImportRequest) setAgencyID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.agencyID = id
	return nil
}

func (r *ImportRequest) setEmployeeID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.employeeID = id
	return nil
}

func (r *ImportRequest) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	r.lines = make([]Line, len(lines))
	copy(r.lines, lines)
	return nil
}
