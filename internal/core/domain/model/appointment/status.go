package appointment

import (
	"fmt"

	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// Kind is the entity kind tag used in lifecycle errors for appointments.
const Kind = "testDriveAppointment"

// Status represents the lifecycle state of a test-drive appointment.
//
// State transitions:
//
//	SCHEDULED ──┬──> ARRIVED
//	            └──> CANCELLED
//
// Both outcomes are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Scheduled is the initial status; the appointment is still editable.
	Scheduled

	// Arrived is the terminal state for a customer who showed up.
	Arrived

	// Cancelled is the terminal state for a called-off appointment.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Scheduled: "SCHEDULED",
		Arrived:   "ARRIVED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled: "SCHEDULED",
		Arrived:   "ARRIVED",
		Cancelled: "CANCELLED",
	}
}

var transitions = lifecycle.NewChart[Status]().
	Allow(Scheduled, Arrived, Cancelled)

// Validate checks if the Status value is one of the defined appointment statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid appointment status", s))
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
		fmt.Errorf("%q is not a valid appointment status", tag))
}

// CanTransitionTo reports whether the edge to target is declared.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, _ := transitions.CanTransition(s, target)
	return allowed
}

// IsTerminal reports whether the status has no outgoing edges.
func (s Status) IsTerminal() bool {
	return transitions.IsTerminal(s)
}
