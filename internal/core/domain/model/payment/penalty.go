package payment

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
)

// PenaltyPolicy computes the late penalty for an overdue payment.
// The policy is injected into the accrual sweep so hosts can replace the default.
type PenaltyPolicy interface {
	Penalty(amount kernel.Money, daysLate int) kernel.Money
}

// DailyPercentagePolicy charges a fixed percentage of the payment amount per
// full day late, capped at the payment amount itself.
type DailyPercentagePolicy struct {
	BasisPointsPerDay int64
}

// NewDefaultPenaltyPolicy returns the default policy: 1% of the amount per day late.
func NewDefaultPenaltyPolicy() DailyPercentagePolicy {
	return DailyPercentagePolicy{BasisPointsPerDay: 100}
}

// Penalty implements PenaltyPolicy.
func (p DailyPercentagePolicy) Penalty(amount kernel.Money, daysLate int) kernel.Money {
	if daysLate <= 0 {
		return 0
	}
	penalty := kernel.Money(int64(amount) * p.BasisPointsPerDay * int64(daysLate) / 10000)
	if penalty > amount {
		return amount
	}
	return penalty
}

// daysLate counts the whole 24h periods between the due date and asOf,
// minimum 1 once asOf has passed the due date at all.
func daysLate(dueDate, asOf time.Time) int {
	if !asOf.After(dueDate) {
		return 0
	}
	days := int(asOf.Sub(dueDate) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}
