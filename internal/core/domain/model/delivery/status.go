package delivery

import (
	"fmt"

	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// Kind is the entity kind tag used in lifecycle errors for vehicle deliveries.
const Kind = "vehicleDelivery"

// Status represents the lifecycle state of a vehicle delivery.
//
// State transitions:
//
//	PREPARING ──┬──> DELIVERING ──┬──> DELIVERED
//	            │        │        └──> RESCHEDULED
//	            ├──> RESCHEDULED ──> PREPARING | DELIVERING | CANCELLED
//	            └──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Entering DELIVERED stamps the actual
// delivery date, exactly once.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Preparing is the initial status: vehicles are being readied.
	Preparing

	// Delivering means the vehicles are on the road.
	Delivering

	// Delivered is the terminal happy-path state; the delivery date is stamped.
	Delivered

	// Rescheduled means the planned date slipped; the delivery resumes later.
	Rescheduled

	// Cancelled is the terminal abort state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Preparing:   "PREPARING",
		Delivering:  "DELIVERING",
		Delivered:   "DELIVERED",
		Rescheduled: "RESCHEDULED",
		Cancelled:   "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing:   "PREPARING",
		Delivering:  "DELIVERING",
		Delivered:   "DELIVERED",
		Rescheduled: "RESCHEDULED",
		Cancelled:   "CANCELLED",
	}
}

var transitions = lifecycle.NewChart[Status]().
	Allow(Preparing, Delivering, Rescheduled, Cancelled).
	Allow(Delivering, Delivered, Rescheduled).
	Allow(Rescheduled, Preparing, Delivering, Cancelled).
	StampOnEnter(Delivered, lifecycle.StampDeliveryDate)

// Validate checks if the Status value is one of the defined delivery statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
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
		fmt.Errorf("%q is not a valid delivery status", tag))
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
