package vehicle

import (
	"fmt"

	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/pkg/errs"
)

// Kind is the entity kind tag used in lifecycle errors for vehicles.
const Kind = "vehicle"

// Status represents the stock state of a single vehicle.
//
// State transitions:
//
//	IN_STOCK ──> RESERVED ──> RELEASED
//	                 │
//	                 └──> IN_STOCK (release note cancelled)
//
// RELEASED is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// InStock means the vehicle sits in the warehouse, free to reserve.
	InStock

	// Reserved means a release note in flight has claimed the vehicle.
	Reserved

	// Released is the terminal state: the vehicle has left the warehouse.
	Released
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		InStock:  "IN_STOCK",
		Reserved: "RESERVED",
		Released: "RELEASED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InStock:  "IN_STOCK",
		Reserved: "RESERVED",
		Released: "RELEASED",
	}
}

var transitions = lifecycle.NewChart[Status]().
	Allow(InStock, Reserved).
	Allow(Reserved, Released, InStock)

// Validate checks if the Status value is one of the defined vehicle statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid vehicle status", s))
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
		fmt.Errorf("%q is not a valid vehicle status", tag))
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
