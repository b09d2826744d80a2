package order

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDetailsAreRequired is returned when an order is created without any detail line.
	ErrDetailsAreRequired = errors.New("order requires at least one detail line")
)

// TransitionContext carries the read-only cross-entity facts an order
// transition may depend on. The caller snapshots them at the start of the unit
// of work; the aggregate never reaches into other aggregates' storage.
type TransitionContext struct {
	// PaidTotal is the sum over PAID payments of this order.
	PaidTotal kernel.Money

	// HasPaidPayment reports whether at least one payment of this order is PAID.
	HasPaidPayment bool

	// DeliveryExists reports whether a vehicle delivery exists for this order.
	DeliveryExists bool

	// DeliveryDelivered reports whether the vehicle delivery reached DELIVERED.
	DeliveryDelivered bool
}

// Order is the agency order aggregate root. It owns its detail lines and the
// derived grand total, and enforces the order status machine including the
// cross-entity guards against payments and the vehicle delivery.
//
// Invariants:
//   - at least one detail line, all lines immutable after creation
//   - totalAmount equals the sum of the detail line totals
//   - status only changes through TransitionTo
//   - orders are never deleted; CANCELLED is the terminal soft-delete
type Order struct {
	id             kernel.ID
	agencyID       kernel.ID
	employeeID     kernel.ID
	customerID     *kernel.ID
	contractNumber string
	notes          string
	status         Status
	details        []Detail
	totalAmount    kernel.Money

	isConstructed bool
}

// NewOrder creates a new order in PENDING status from agency, employee, an
// optional customer and at least one detail line. The grand total is computed
// from the lines here, once; the lines are immutable afterwards.
//
// The identifier and contract number are assigned by the repository on first
// insert.
func NewOrder(
	agencyID kernel.ID,
	employeeID kernel.ID,
	customerID *kernel.ID,
	details []Detail,
	notes string,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setAgencyID(agencyID),
		order.setEmployeeID(employeeID),
		order.setCustomerID(customerID),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. The grand total is
// recomputed from the restored lines so a stored total can never drift from
// its derivation.
func RestoreOrder(
	id kernel.ID,
	agencyID kernel.ID,
	employeeID kernel.ID,
	customerID *kernel.ID,
	contractNumber string,
	notes string,
	status Status,
	details []Detail,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewOrder(agencyID, employeeID, customerID, details, notes)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	order.id = id
	order.contractNumber = contractNumber
	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id == other.id
}

// ID returns the order identifier; zero until first persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// AgencyID returns the ordering agency.
func (o *Order) AgencyID() kernel.ID {
	return o.agencyID
}

// EmployeeID returns the employee who submitted the order.
func (o *Order) EmployeeID() kernel.ID {
	return o.employeeID
}

// CustomerID returns the end customer, if any.
func (o *Order) CustomerID() *kernel.ID {
	return o.customerID
}

// ContractNumber returns the contract number; empty until first persisted.
func (o *Order) ContractNumber() string {
	return o.contractNumber
}

// Notes returns the free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// Details returns a copy of the order lines.
func (o *Order) Details() []Detail {
	details := make([]Detail, len(o.details))
	copy(details, o.details)
	return details
}

// TotalAmount returns the derived grand total over all detail lines.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// AssignID sets the identifier assigned by the store on first insert.
// Assigning twice is an error.
func (o *Order) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has id %s", o.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// AssignContractNumber sets the contract number derived at first insert.
// Assigning twice is an error.
func (o *Order) AssignContractNumber(contractNumber string) error {
	if o.contractNumber != "" {
		return errs.NewValueIsInvalidErrorWithCause("contractNumber",
			fmt.Errorf("order already has contract number %s", o.contractNumber))
	}
	if contractNumber == "" {
		return errs.NewValueIsRequiredError("contractNumber")
	}
	o.contractNumber = contractNumber
	return nil
}

// UpdateNotes replaces the order notes. Notes stay editable until the order is terminal.
func (o *Order) UpdateNotes(notes string) error {
	if o.status.IsTerminal() {
		return errs.NewGuardViolationError(Kind, "notes are frozen once the order is terminal")
	}
	o.notes = notes
	return nil
}

// TransitionTo moves the order to the target status.
//
// The transition table decides reachability; on top of it the cross-entity
// guards apply:
//   - a move to PENDING_DELIVERY requires an existing vehicle delivery
//   - leaving DELIVERED for PAID or INSTALLMENT requires the delivery to be DELIVERED
//   - a move to CANCELLED is blocked once any payment is PAID (OrderLockedError)
//   - a move to COMPLETED requires the paid total to equal the order total
//
// Returns InvalidTransitionError for edges outside the table and
// GuardViolationError/OrderLockedError for failed guards; the order is left
// unchanged on any error.
func (o *Order) TransitionTo(target Status, ctx TransitionContext) error {
	if err := target.Validate(); err != nil {
		return err
	}

	allowed, _ := o.status.CanTransitionTo(target)
	if !allowed {
		return errs.NewInvalidTransitionError(Kind, o.status.String(), target.String())
	}

	switch target {
	case Cancelled:
		if ctx.HasPaidPayment {
			return errs.NewOrderLockedError(o.id.Int64())
		}
	case PendingDelivery:
		if !ctx.DeliveryExists {
			return errs.NewGuardViolationError(Kind, "a vehicle delivery must exist before the order can await delivery")
		}
	case Paid, Installment:
		if o.status == Delivered && !ctx.DeliveryDelivered {
			return errs.NewGuardViolationError(Kind, "vehicle delivery is not delivered yet")
		}
	case Completed:
		if ctx.PaidTotal != o.totalAmount {
			return errs.NewGuardViolationError(Kind, fmt.Sprintf(
				"paid total %s does not equal order total %s", ctx.PaidTotal, o.totalAmount))
		}
	}

	o.status = target
	return nil
}

func (o *Order) setAgencyID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.agencyID = id
	return nil
}

func (o *Order) setEmployeeID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.employeeID = id
	return nil
}

func (o *Order) setCustomerID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	customerID := *id
	o.customerID = &customerID
	return nil
}

func (o *Order) setDetails(details []Detail) error {
	if len(details) == 0 {
		return ErrDetailsAreRequired
	}

	total := kernel.Money(0)
	owned := make([]Detail, len(details))
	for i, detail := range details {
		if err := detail.Validate(); err != nil {
			return err
		}
		owned[i] = detail
		total = total.Add(detail.LineTotal())
	}

	o.details = owned
	o.totalAmount = total
	return nil
}
