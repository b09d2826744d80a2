package ports

import (
	"context"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
)

// PaymentLedgerSnapshot answers read-only ledger questions about an order's
// payments. Transitions take the snapshot once at the start of the unit of
// work; a race against a concurrent writer surfaces as a ConflictError on the
// subsequent write, never as corrupted sums.
type PaymentLedgerSnapshot interface {
	// PaidTotal returns the sum of PAID payment amounts for the order.
	PaidTotal(ctx context.Context, orderID kernel.ID) (kernel.Money, error)

	// NonCancelledTotal returns the sum of payment amounts for the order
	// excluding CANCELLED ones. Used by the overpayment check.
	NonCancelledTotal(ctx context.Context, orderID kernel.ID) (kernel.Money, error)

	// HasPaidPayment reports whether any payment for the order is PAID.
	HasPaidPayment(ctx context.Context, orderID kernel.ID) (bool, error)
}

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	PaymentLedgerSnapshot

	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Delete removes a payment. Callers must check EnsureDeletable first.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves a payment aggregate by its identifier.
	Get(ctx context.Context, id kernel.ID) (*payment.Payment, error)

	// GetAllByOrder retrieves every payment of an order, oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*payment.Payment, error)

	// GetAllUnpaidDueBefore retrieves UNPAID and OVERDUE payments whose due
	// date lies before the cutoff. Used by the penalty accrual sweep.
	GetAllUnpaidDueBefore(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
