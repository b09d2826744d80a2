package warehouse

import (
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrNoteIsNotConstructed is returned when a WarehouseReleaseNote instance was
// not created through NewWarehouseReleaseNote or RestoreWarehouseReleaseNote.
var ErrNoteIsNotConstructed = errors.New(
	"WarehouseReleaseNote must be created via NewWarehouseReleaseNote constructor")

// VehicleEffect tells the caller what to do with the note's vehicles after a
// transition. The note stays pure; the handler applies the effect to each
// Vehicle row inside the same unit of work.
type VehicleEffect int

const (
	// EffectNone means the transition does not touch the vehicles.
	EffectNone VehicleEffect = iota

	// EffectReserve moves each vehicle IN_STOCK -> RESERVED.
	EffectReserve

	// EffectRelease moves each vehicle RESERVED -> RELEASED.
	EffectRelease

	// EffectReturn moves each vehicle RESERVED -> IN_STOCK.
	EffectReturn
)

// WarehouseReleaseNote authorizes a set of vehicles to leave the warehouse.
// The agency, employee, release date and vehicle set are fixed at creation;
// once the note leaves PENDING_APPROVAL only note, reason and status may
// change.
type WarehouseReleaseNote struct {
	id          kernel.ID
	agencyID    kernel.ID
	employeeID  kernel.ID
	releaseDate time.Time
	totalAmount kernel.Money
	reason      string
	note        string
	status      Status
	vehicleIDs  []kernel.ID

	isConstructed bool
}

// NewWarehouseReleaseNote creates a note in PENDING_APPROVAL status.
// The vehicle set must be non-empty and free of duplicates.
func NewWarehouseReleaseNote(
	agencyID kernel.ID,
	employeeID kernel.ID,
	releaseDate time.Time,
	totalAmount kernel.Money,
	reason string,
	vehicleIDs []kernel.ID,
) (*WarehouseReleaseNote, error) {
	note := &WarehouseReleaseNote{
		totalAmount:   totalAmount,
		reason:        reason,
		status:        PendingApproval,
		isConstructed: true,
	}

	if err := errors.Join(
		note.setAgencyID(agencyID),
		note.setEmployeeID(employeeID),
		note.setReleaseDate(releaseDate),
		note.setVehicleIDs(vehicleIDs),
	); err != nil {
		return nil, err
	}

	return note, nil
}

// RestoreWarehouseReleaseNote reconstructs a note from persistence.
func RestoreWarehouseReleaseNote(
	id kernel.ID,
	agencyID kernel.ID,
	employeeID kernel.ID,
	releaseDate time.Time,
	totalAmount kernel.Money,
	reason string,
	noteText string,
	status Status,
	vehicleIDs []kernel.ID,
) (*WarehouseReleaseNote, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	note, err := NewWarehouseReleaseNote(
		agencyID, employeeID, releaseDate, totalAmount, reason, vehicleIDs)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	note.id = id
	note.note = noteText
	note.status = status
	return note, nil
}

// Validate ensures the WarehouseReleaseNote instance was properly constructed.
func (n *WarehouseReleaseNote) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNoteIsNotConstructed
	}
	return nil
}

// ID returns the note identifier; zero until first persisted.
func (n *WarehouseReleaseNote) ID() kernel.ID {
	return n.id
}

// AgencyID returns the agency the vehicles are released to.
func (n *WarehouseReleaseNote) AgencyID() kernel.ID {
	return n.agencyID
}

// EmployeeID returns the employee who issued the note.
func (n *WarehouseReleaseNote) EmployeeID() kernel.ID {
	return n.employeeID
}

// ReleaseDate returns the planned release date.
func (n *WarehouseReleaseNote) ReleaseDate() time.Time {
	return n.releaseDate
}

// TotalAmount returns the declared value of the released vehicles.
func (n *WarehouseReleaseNote) TotalAmount() kernel.Money {
	return n.totalAmount
}

// Reason returns the free-form reason for the release.
func (n *WarehouseReleaseNote) Reason() string {
	return n.reason
}

// Note returns the free-form note text.
func (n *WarehouseReleaseNote) Note() string {
	return n.note
}

// Status returns the current note status.
func (n *WarehouseReleaseNote) Status() Status {
	return n.status
}

// VehicleIDs returns a copy of the note's vehicle set.
func (n *WarehouseReleaseNote) VehicleIDs() []kernel.ID {
	ids := make([]kernel.ID, len(n.vehicleIDs))
	copy(ids, n.vehicleIDs)
	return ids
}

// AssignID sets the identifier assigned by the store on first insert.
func (n *WarehouseReleaseNote) AssignID(id kernel.ID) error {
	if !n.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("release note already has id %s", n.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

// TransitionTo moves the note to the target status and reports what to do with
// its vehicles: reserve them on leaving PENDING_APPROVAL, release them on
// reaching RELEASED, and return them to stock when the note is cancelled after
// they were reserved.
func (n *WarehouseReleaseNote) TransitionTo(target Status) (VehicleEffect, error) {
	if err := target.Validate(); err != nil {
		return EffectNone, err
	}
	if !n.status.CanTransitionTo(target) {
		return EffectNone, errs.NewInvalidTransitionError(Kind, n.status.String(), target.String())
	}

	from := n.status
	n.status = target

	switch {
	case from == PendingApproval && target == Created:
		return EffectReserve, nil
	case target == Released:
		return EffectRelease, nil
	case target == Cancelled && from != PendingApproval:
		return EffectReturn, nil
	default:
		return EffectNone, nil
	}
}

// UpdateNote changes the note and reason text. Legal until the note is
// terminal; the vehicle set stays fixed regardless.
func (n *WarehouseReleaseNote) UpdateNote(noteText, reason string) error {
	if n.status.IsTerminal() {
		return errs.NewGuardViolationError(Kind,
			"note and reason are frozen once the note is terminal")
	}
	n.note = noteText
	n.reason = reason
	return nil
}

// AddVehicle extends the vehicle set. Legal only while PENDING_APPROVAL; the
// set is fixed once the note has been approved.
func (n *WarehouseReleaseNote) AddVehicle(id kernel.ID) error {
	if n.status != PendingApproval {
		return errs.NewGuardViolationError(Kind,
			"vehicle set is fixed once the note leaves PENDING_APPROVAL")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	for _, existing := range n.vehicleIDs {
		if existing == id {
			return errs.NewValueIsInvalidErrorWithCause("vehicleIds",
				fmt.Errorf("vehicle %s is already on the note", id))
		}
	}
	n.vehicleIDs = append(n.vehicleIDs, id)
	return nil
}

// EnsureDeletable reports whether the note may be deleted. Only notes still in
// PENDING_APPROVAL may go; anything later has already touched the stock.
func (n *WarehouseReleaseNote) EnsureDeletable() error {
	if n.status != PendingApproval {
		return errs.NewGuardViolationError(Kind,
			"only a PENDING_APPROVAL note can be deleted")
	}
	return nil
}

func (n *WarehouseReleaseNote) setAgencyID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.agencyID = id
	return nil
}

func (n *WarehouseReleaseNote) setEmployeeID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.employeeID = id
	return nil
}

func (n *WarehouseReleaseNote) setReleaseDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("releaseDate")
	}
	n.releaseDate = date.UTC()
	return nil
}

func (n *WarehouseReleaseNote) setVehicleIDs(ids []kernel.ID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("vehicleIds")
	}
	seen := make(map[kernel.ID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("vehicleIds",
				fmt.Errorf("vehicle %s appears twice", id))
		}
		seen[id] = struct{}{}
	}
	n.vehicleIDs = make([]kernel.ID, len(ids))
	copy(n.vehicleIDs, ids)
	return nil
}
