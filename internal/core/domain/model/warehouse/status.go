package warehouse

import (
	"fmt"

	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// Kind is the entity kind tag used in lifecycle errors for release notes.
const Kind = "warehouseReleaseNote"

// Status represents the lifecycle state of a warehouse release note.
//
// State transitions:
//
//	PENDING_APPROVAL ──┬──> CREATED ──┬──> PROCESSING ──> RELEASED
//	                   │              └──> CANCELLED
//	                   └──> CANCELLED
//
// PROCESSING may also be cancelled. RELEASED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingApproval is the initial status; the vehicle set is still open.
	PendingApproval

	// Created means the note is approved and its vehicles are reserved.
	Created

	// Processing means warehouse staff are pulling the vehicles.
	Processing

	// Released is the terminal happy-path state; the vehicles have left.
	Released

	// Cancelled is the terminal abort state; reserved vehicles go back in stock.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		PendingApproval: "PENDING_APPROVAL",
		Created:         "CREATED",
		Processing:      "PROCESSING",
		Released:        "RELEASED",
		Cancelled:       "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingApproval: "PENDING_APPROVAL",
		Created:         "CREATED",
		Processing:      "PROCESSING",
		Released:        "RELEASED",
		Cancelled:       "CANCELLED",
	}
}

var transitions = lifecycle.NewChart[Status]().
	Allow(PendingApproval, Created, Cancelled).
	Allow(Created, Processing, Cancelled).
	Allow(Processing, Released, Cancelled)

// Validate checks if the Status value is one of the defined note statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid release note status", s))
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
		fmt.Errorf("%q is not a valid release note status", tag))
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
