package services

import (
	"fmt"

	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/lifecycle"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/domain/model/warehouse"
	"dealership/internal/pkg/errs"
)

// StatusMachine is a domain service answering transition-legality questions at
// the wire level: given an entity kind and two status tags, it reports whether
// the edge is declared and which stamps entering the target carries.
//
// It is a read-only facade over the per-package transition charts; the
// aggregates themselves stay the single write path. Transports use it to
// decide which actions to offer without loading the entity.
type StatusMachine struct{}

// NewStatusMachine creates a new StatusMachine instance.
func NewStatusMachine() StatusMachine {
	return StatusMachine{}
}

// CanTransition reports whether moving from one status tag to another is a
// declared edge for the given entity kind, plus any on-enter stamps.
// An unknown kind or a tag that does not parse for that kind is an error;
// a legal parse with an undeclared edge is (false, nil, nil).
func (StatusMachine) CanTransition(kind, from, to string) (bool, []lifecycle.Stamp, error) {
	switch kind {
	case order.Kind:
		f, t, err := parsePair(order.ParseStatus, from, to)
		if err != nil {
			return false, nil, err
		}
		allowed, stamps := f.CanTransitionTo(t)
		return allowed, stamps, nil

	case payment.Kind:
		f, t, err := parsePair(payment.ParseStatus, from, to)
		if err != nil {
			return false, nil, err
		}
		allowed, stamps := f.CanTransitionTo(t)
		return allowed, stamps, nil

	case delivery.Kind:
		f, t, err := parsePair(delivery.ParseStatus, from, to)
		if err != nil {
			return false, nil, err
		}
		allowed, stamps := f.CanTransitionTo(t)
		return allowed, stamps, nil

	case warehouse.Kind:
		f, t, err := parsePair(warehouse.ParseStatus, from, to)
		if err != nil {
			return false, nil, err
		}
		return f.CanTransitionTo(t), nil, nil

	case intake.Kind:
		f, t, err := parsePair(intake.ParseStatus, from, to)
		if err != nil {
			return false, nil, err
		}
		return f.CanTransitionTo(t), nil, nil

	case appointment.Kind:
		f, t, err := parsePair(appointment.ParseStatus, from, to)
		if err != nil {
			return false, nil, err
		}
		return f.CanTransitionTo(t), nil, nil

	case vehicle.Kind:
		f, t, err := parsePair(vehicle.ParseStatus, from, to)
		if err != nil {
			return false, nil, err
		}
		return f.CanTransitionTo(t), nil, nil

	default:
		return false, nil, errs.NewValueIsInvalidErrorWithCause("entityKind",
			fmt.Errorf("%q is not a known entity kind", kind))
	}
}

func parsePair[S any](parse func(string) (S, error), from, to string) (S, S, error) {
	f, err := parse(from)
	if err != nil {
		var zero S
		return zero, zero, err
	}
	t, err := parse(to)
	if err != nil {
		var zero S
		return zero, zero, err
	}
	return f, t, nil
}
