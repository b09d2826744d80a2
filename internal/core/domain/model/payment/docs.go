// Package payment contains the payment aggregate of the ledger: cash
// confirmations, VNPay session bookkeeping, penalty accrual and the
// UNPAID->PAID transition. A payment belongs to exactly one order; the ledger
// invariant (non-cancelled payments never exceed the order total) is enforced
// at creation time by the create-payment use case, which owns the cross-record
// sum.
package payment
