package payment

import (
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not created
// through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is one payment record of an order: full settlement or one installment
// cycle. It owns its own status machine; cross-record ledger invariants (the
// overpayment rule) live in the create-payment use case, which can see siblings.
type Payment struct {
	id            kernel.ID
	orderID       kernel.ID
	method        Method
	form          Form
	amount        kernel.Money
	numberCycle   int
	dueDate       time.Time
	paymentDate   *time.Time
	penaltyAmount kernel.Money
	vnpayCode     *string
	vnpayTxnRef   *string
	status        Status

	isConstructed bool
}

// NewPayment creates a new UNPAID payment for an order.
// Amount must be positive; numberCycle counts installment cycles starting at 1.
func NewPayment(
	orderID kernel.ID,
	amount kernel.Money,
	method Method,
	form Form,
	numberCycle int,
	dueDate time.Time,
) (*Payment, error) {
	payment := &Payment{
		status:        Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setOrderID(orderID),
		payment.setAmount(amount),
		payment.setMethod(method),
		payment.setForm(form),
		payment.setNumberCycle(numberCycle),
		payment.setDueDate(dueDate),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.ID,
	orderID kernel.ID,
	amount kernel.Money,
	method Method,
	form Form,
	numberCycle int,
	dueDate time.Time,
	paymentDate *time.Time,
	penaltyAmount kernel.Money,
	vnpayCode *string,
	vnpayTxnRef *string,
	status Status,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	payment, err := NewPayment(orderID, amount, method, form, numberCycle, dueDate)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := penaltyAmount.Validate(); err != nil {
		return nil, err
	}

	payment.id = id
	payment.paymentDate = paymentDate
	payment.penaltyAmount = penaltyAmount
	payment.vnpayCode = vnpayCode
	payment.vnpayTxnRef = vnpayTxnRef
	payment.status = status
	return payment, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment identifier; zero until first persisted.
func (p *Payment) ID() kernel.ID {
	return p.id
}

// OrderID returns the order this payment settles.
func (p *Payment) OrderID() kernel.ID {
	return p.orderID
}

// Method returns the payment instrument.
func (p *Payment) Method() Method {
	return p.method
}

// Form returns the settlement schedule.
func (p *Payment) Form() Form {
	return p.form
}

// Amount returns the payment amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// NumberCycle returns the installment cycle number, starting at 1.
func (p *Payment) NumberCycle() int {
	return p.numberCycle
}

// DueDate returns when the payment falls due.
func (p *Payment) DueDate() time.Time {
	return p.dueDate
}

// PaymentDate returns when the payment was settled; nil while unpaid.
func (p *Payment) PaymentDate() *time.Time {
	return p.paymentDate
}

// PenaltyAmount returns the accrued late penalty.
func (p *Payment) PenaltyAmount() kernel.Money {
	return p.penaltyAmount
}

// VnpayCode returns the gateway response code recorded by the VNPay callback.
func (p *Payment) VnpayCode() *string {
	return p.vnpayCode
}

// VnpayTxnRef returns the pending session reference minted by CreateVnpaySession.
func (p *Payment) VnpayTxnRef() *string {
	return p.vnpayTxnRef
}

// Status returns the current payment status.
func (p *Payment) Status() Status {
	return p.status
}

// AssignID sets the identifier assigned by the store on first insert.
func (p *Payment) AssignID(id kernel.ID) error {
	if !p.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("payment already has id %s", p.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// ConfirmCash settles a cash payment at the counter: UNPAID -> PAID with the
// payment date stamped to now. Only cash payments can be confirmed manually.
func (p *Payment) ConfirmCash(now time.Time) error {
	if p.method != Cash {
		return errs.NewGuardViolationError(Kind, "only cash payments can be confirmed manually")
	}
	if p.status != Unpaid {
		return errs.NewInvalidTransitionError(Kind, p.status.String(), Paid.String())
	}

	p.status = Paid
	stamped := now.UTC()
	p.paymentDate = &stamped
	return nil
}

// RecordVnpaySession stores the pending gateway transaction reference minted
// when a redirect session is created. The status does not change: the callback
// supplies the authoritative result.
func (p *Payment) RecordVnpaySession(txnRef string) error {
	if p.method != Vnpay {
		return errs.NewGuardViolationError(Kind, "only VNPay payments can open a gateway session")
	}
	if p.status != Unpaid {
		return errs.NewInvalidTransitionError(Kind, p.status.String(), Paid.String())
	}
	if txnRef == "" {
		return errs.NewValueIsRequiredError("txnRef")
	}

	p.vnpayTxnRef = &txnRef
	return nil
}

// ApplyVnpayResult applies the gateway callback. An approved result settles the
// payment (UNPAID or OVERDUE -> PAID) and records the gateway code; a declined
// result leaves the payment unpaid so a new session can be opened. Repeated
// callbacks for an already-paid payment are a no-op.
func (p *Payment) ApplyVnpayResult(approved bool, vnpayCode string, now time.Time) error {
	if p.method != Vnpay {
		return errs.NewGuardViolationError(Kind, "payment is not a VNPay payment")
	}
	if p.status == Paid {
		return nil
	}
	if !approved {
		return nil
	}

	allowed, _ := p.status.CanTransitionTo(Paid)
	if !allowed {
		return errs.NewInvalidTransitionError(Kind, p.status.String(), Paid.String())
	}

	p.status = Paid
	p.vnpayCode = &vnpayCode
	stamped := now.UTC()
	p.paymentDate = &stamped
	return nil
}

// AccruePenalty marks the payment OVERDUE and computes the late penalty once
// the due date has passed. Safe to call repeatedly from the periodic sweep:
// while OVERDUE the penalty is recomputed against the current day count, and a
// payment that is not yet due, or already settled, is left untouched.
func (p *Payment) AccruePenalty(policy PenaltyPolicy, asOf time.Time) error {
	if p.status != Unpaid && p.status != Overdue {
		return nil
	}

	late := daysLate(p.dueDate, asOf)
	if late == 0 {
		return nil
	}

	p.status = Overdue
	p.penaltyAmount = policy.Penalty(p.amount, late)
	return nil
}

// Cancel voids the payment, e.g. because its order was cancelled.
// A settled payment cannot be cancelled.
func (p *Payment) Cancel() error {
	allowed, _ := p.status.CanTransitionTo(Cancelled)
	if !allowed {
		return errs.NewInvalidTransitionError(Kind, p.status.String(), Cancelled.String())
	}
	p.status = Cancelled
	return nil
}

// EnsureDeletable reports whether the record may be removed: only while UNPAID.
func (p *Payment) EnsureDeletable() error {
	if p.status != Unpaid {
		return errs.NewImmutablePaymentError(p.id.Int64(), p.status.String())
	}
	return nil
}

// CountsTowardTotal reports whether the payment participates in the order's
// non-cancelled payment sum.
func (p *Payment) CountsTowardTotal() bool {
	return p.status != Cancelled
}

func (p *Payment) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.orderID = id
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount.Int64()))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setForm(form Form) error {
	if err := form.Validate(); err != nil {
		return err
	}
	p.form = form
	return nil
}

func (p *Payment) setNumberCycle(numberCycle int) error {
	if numberCycle < 1 {
		return errs.NewValueIsInvalidErrorWithCause("numberCycle",
			fmt.Errorf("%d is not at least 1", numberCycle))
	}
	p.numberCycle = numberCycle
	return nil
}

func (p *Payment) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}
	p.dueDate = dueDate.UTC()
	return nil
}
