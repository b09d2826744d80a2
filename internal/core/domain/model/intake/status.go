package intake

import (
	"fmt"

	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// Kind is the entity kind tag used in lifecycle errors for import requests.
const Kind = "importRequest"

// Status represents the lifecycle state of a vehicle import request.
//
// State transitions:
//
//	REQUESTED ──┬──> APPROVED
//	            └──> REJECTED
//
// Both outcomes are terminal. Approval only authorizes intake; creating the
// actual vehicle rows is a separate process.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Requested is the initial status.
	Requested

	// Approved is the terminal accept state.
	Approved

	// Rejected is the terminal refuse state.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Requested: "REQUESTED",
		Approved:  "APPROVED",
		Rejected:  "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "REQUESTED",
		Approved:  "APPROVED",
		Rejected:  "REJECTED",
	}
}

var transitions = lifecycle.NewChart[Status]().
	Allow(Requested, Approved, Rejected)

// Validate checks if the Status value is one of the defined request statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid import request status", s))
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
		fmt.Errorf("%q is not a valid import request status", tag))
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
