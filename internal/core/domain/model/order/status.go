package order

import (
	"fmt"

	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// Kind is the entity kind tag used in lifecycle errors for orders.
const Kind = "order"

// Status represents the lifecycle state of an agency order.
//
// State transitions:
//
//	PENDING ──> APPROVED ──> CONFIRMED ──> PENDING_DELIVERY ──> DELIVERED ──┬──> PAID ──> COMPLETED
//	                                                                        └──> INSTALLMENT ──> PAID | COMPLETED
//
// Every non-terminal state may also move to CANCELLED (subject to the
// order-lock guard once money has been paid). COMPLETED and CANCELLED are
// terminal. The string form of each status is the wire contract with clients.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly submitted order.
	Pending

	// Approved means the manufacturer accepted the order.
	Approved

	// Confirmed means the agency confirmed the approved order; a vehicle
	// delivery may be prepared from this point on.
	Confirmed

	// PendingDelivery means the order is waiting on its vehicle delivery.
	PendingDelivery

	// Delivered means the vehicles reached the agency.
	Delivered

	// Paid means the full amount has been settled in one payment.
	Paid

	// Installment means the amount is being settled over payment cycles.
	Installment

	// Completed is the terminal happy-path state: delivered and fully paid.
	Completed

	// Cancelled is the terminal soft-delete state. Orders are never hard-deleted.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Pending:         "PENDING",
		Approved:        "APPROVED",
		Confirmed:       "CONFIRMED",
		PendingDelivery: "PENDING_DELIVERY",
		Delivered:       "DELIVERED",
		Paid:            "PAID",
		Installment:     "INSTALLMENT",
		Completed:       "COMPLETED",
		Cancelled:       "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "PENDING",
		Approved:        "APPROVED",
		Confirmed:       "CONFIRMED",
		PendingDelivery: "PENDING_DELIVERY",
		Delivered:       "DELIVERED",
		Paid:            "PAID",
		Installment:     "INSTALLMENT",
		Completed:       "COMPLETED",
		Cancelled:       "CANCELLED",
	}
}

// transitions is the order status chart. Any edge not listed is denied.
var transitions = lifecycle.NewChart[Status]().
	Allow(Pending, Approved, Cancelled).
	Allow(Approved, Confirmed, Cancelled).
	Allow(Confirmed, PendingDelivery, Cancelled).
	Allow(PendingDelivery, Delivered, Cancelled).
	Allow(Delivered, Paid, Installment, Cancelled).
	Allow(Paid, Completed).
	Allow(Installment, Paid, Completed, Cancelled)

// Validate checks if the Status value is one of the defined order statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire tag of the status, e.g. "PENDING_DELIVERY".
// Returns "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus converts a wire tag back into a Status.
func ParseStatus(tag string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == tag {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", tag))
}

// CanTransitionTo reports whether the edge to target is declared in the chart,
// plus any on-enter stamps. Cross-entity guards are evaluated separately by the
// aggregate; this is the pure table lookup.
func (s Status) CanTransitionTo(target Status) (bool, []lifecycle.Stamp) {
	return transitions.CanTransition(s, target)
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return transitions.IsTerminal(s)
}
