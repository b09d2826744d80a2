package kernel

import (
	"fmt"
	"strconv"

	"dealership/internal/pkg/errs"
)

// ID is an opaque positive integer identifier for a stored entity.
//
// The zero value means "not yet persisted": aggregates are constructed without
// an identifier and receive one from the repository on first insert. Every
// foreign key in the model (agency, employee, customer, vehicle, ...) is an ID;
// the core never dereferences them beyond existence checks.
type ID int64

// NewID creates a validated identifier from a raw int64.
//
// Returns an error if the value is not positive. Use this for identifiers that
// arrive from outside the process (route parameters, foreign keys) where zero
// would mean a missing reference.
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the identifier is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", int64(id)))
	}
	return nil
}

// IsZero reports whether the identifier has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw identifier value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
