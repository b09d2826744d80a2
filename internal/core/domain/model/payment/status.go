package payment

import (
	"fmt"

	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// Kind is the entity kind tag used in lifecycle errors for payments.
const Kind = "payment"

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	UNPAID ──┬──> PAID
//	         ├──> OVERDUE ──> PAID | CANCELLED
//	         └──> CANCELLED
//
// PAID and CANCELLED are terminal. Entering PAID stamps the payment date.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unpaid is the initial status of every payment.
	Unpaid

	// Paid means the amount has been settled (cash confirmation or VNPay callback).
	Paid

	// Overdue means the due date passed while the payment was unpaid;
	// a penalty has been accrued.
	Overdue

	// Cancelled means the payment was voided, e.g. because its order was cancelled.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Unpaid:    "UNPAID",
		Paid:      "PAID",
		Overdue:   "OVERDUE",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unpaid:    "UNPAID",
		Paid:      "PAID",
		Overdue:   "OVERDUE",
		Cancelled: "CANCELLED",
	}
}

var transitions = lifecycle.NewChart[Status]().
	Allow(Unpaid, Paid, Overdue, Cancelled).
	Allow(Overdue, Paid, Cancelled).
	StampOnEnter(Paid, lifecycle.StampPaymentDate)

// Validate checks if the Status value is one of the defined payment statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire tag of the status. Returns "UNKNOWN" for invalid values.
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
		fmt.Errorf("%q is not a valid payment status", tag))
}

// CanTransitionTo reports whether the edge to target is declared, plus any
// on-enter stamps.
func (s Status) CanTransitionTo(target Status) (bool, []lifecycle.Stamp) {
	return transitions.CanTransition(s, target)
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return transitions.IsTerminal(s)
}
