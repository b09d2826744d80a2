package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Each concrete error type below unwraps to exactly one of these.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrValueIsRequired       = errors.New("value is required")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrGuardViolation        = errors.New("guard violation")
	ErrOverpayment           = errors.New("overpayment")
	ErrImmutableAfterDelivery = errors.New("immutable after delivery")
	ErrImmutablePayment      = errors.New("payment is immutable")
	ErrOrderLocked           = errors.New("order is locked")
	ErrConflict              = errors.New("concurrent modification conflict")
	ErrValidation            = errors.New("validation failed")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates a referenced entity id is absent from storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a parameter value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric parameter is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a mandatory parameter is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates the requested status is not reachable from the
// current status in the entity kind's transition table. Always recoverable: the
// caller can pick a valid target instead.
type InvalidTransitionError struct {
	Kind string
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given entity kind and statuses.
func NewInvalidTransitionError(kind, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Kind: kind, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Kind, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// GuardViolationError indicates a transition that is legal by the transition table
// but blocked by a cross-entity precondition.
type GuardViolationError struct {
	Kind string
	Rule string
}

// NewGuardViolationError creates a GuardViolationError naming the violated rule.
func NewGuardViolationError(kind, rule string) *GuardViolationError {
	return &GuardViolationError{Kind: kind, Rule: rule}
}

func (e *GuardViolationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrGuardViolation, e.Kind, e.Rule))
}

func (e *GuardViolationError) Unwrap() error {
	return ErrGuardViolation
}

// OverpaymentError indicates that registering a payment would push the order's
// non-cancelled payment sum above the order total. Amounts are minor currency units.
type OverpaymentError struct {
	OrderID   any
	Attempted int64
	Limit     int64
}

// NewOverpaymentError creates an OverpaymentError for the given order and amounts.
func NewOverpaymentError(orderID any, attempted, limit int64) *OverpaymentError {
	return &OverpaymentError{OrderID: orderID, Attempted: attempted, Limit: limit}
}

func (e *OverpaymentError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %v would reach %d of allowed %d",
		ErrOverpayment, e.OrderID, e.Attempted, e.Limit))
}

func (e *OverpaymentError) Unwrap() error {
	return ErrOverpayment
}

// ImmutableAfterDeliveryError indicates an edit attempt on a vehicle delivery
// that has already been delivered.
type ImmutableAfterDeliveryError struct {
	DeliveryID any
}

// NewImmutableAfterDeliveryError creates an ImmutableAfterDeliveryError for the given delivery.
func NewImmutableAfterDeliveryError(deliveryID any) *ImmutableAfterDeliveryError {
	return &ImmutableAfterDeliveryError{DeliveryID: deliveryID}
}

func (e *ImmutableAfterDeliveryError) Error() string {
	return sanitize(fmt.Sprintf("%s: delivery %v is already delivered", ErrImmutableAfterDelivery, e.DeliveryID))
}

func (e *ImmutableAfterDeliveryError) Unwrap() error {
	return ErrImmutableAfterDelivery
}

// ImmutablePaymentError indicates a delete attempt on a payment that left UNPAID.
type ImmutablePaymentError struct {
	PaymentID any
	Status    string
}

// NewImmutablePaymentError creates an ImmutablePaymentError for the given payment.
func NewImmutablePaymentError(paymentID any, status string) *ImmutablePaymentError {
	return &ImmutablePaymentError{PaymentID: paymentID, Status: status}
}

func (e *ImmutablePaymentError) Error() string {
	return sanitize(fmt.Sprintf("%s: payment %v is %s", ErrImmutablePayment, e.PaymentID, e.Status))
}

func (e *ImmutablePaymentError) Unwrap() error {
	return ErrImmutablePayment
}

// OrderLockedError indicates a cancellation attempt on an order that already has a
// paid payment. Unwinding paid money requires a refund workflow, not a cancellation.
type OrderLockedError struct {
	OrderID any
}

// NewOrderLockedError creates an OrderLockedError for the given order.
func NewOrderLockedError(orderID any) *OrderLockedError {
	return &OrderLockedError{OrderID: orderID}
}

func (e *OrderLockedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %v has a paid payment", ErrOrderLocked, e.OrderID))
}

func (e *OrderLockedError) Unwrap() error {
	return ErrOrderLocked
}

// ConflictError indicates a concurrent-write race detected by the store
// (compare-and-swap on the row version failed). The caller should re-read and retry.
type ConflictError struct {
	ParamName string
	ID        any
}

// NewConflictError creates a ConflictError for the given entity.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v was modified concurrently", ErrConflict, e.ParamName, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// FieldViolation names one offending input field inside a ValidationError.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates every offending input field of a request,
// reported before any state machine lookup happens.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a ValidationError from the collected field violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
