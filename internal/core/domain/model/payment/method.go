package payment

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

// Method is the payment instrument.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// Cash is paid at the counter and confirmed manually by an employee.
	Cash

	// Vnpay is paid through a VNPay redirect session; the gateway callback
	// supplies the authoritative result.
	Vnpay

	// BankTransfer is settled out of band by wire transfer.
	BankTransfer
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		Cash:         "CASH",
		Vnpay:        "VNPAY",
		BankTransfer: "BANK_TRANSFER",
	}
}

// Validate checks if the Method value is one of the defined methods.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire tag of the method. Returns "UNKNOWN" for invalid values.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseMethod converts a wire tag back into a Method.
func ParseMethod(tag string) (Method, error) {
	for method, str := range getMethodStrings() {
		if str == tag {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", tag))
}

// Form is the settlement schedule of a payment.
type Form int

const (
	// FormUnknown represents an invalid or undefined form.
	FormUnknown Form = iota

	// FullPayment settles the whole amount in one payment.
	FullPayment

	// Installment settles the amount over numbered cycles.
	Installment
)

func getFormStrings() map[Form]string {
	return map[Form]string{
		FullPayment: "FULL_PAYMENT",
		Installment: "INSTALLMENT",
	}
}

// Validate checks if the Form value is one of the defined forms.
func (f Form) Validate() error {
	if _, ok := getFormStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentForm",
			fmt.Errorf("%d is not a valid payment form", f))
	}
	return nil
}

// String returns the wire tag of the form. Returns "UNKNOWN" for invalid values.
func (f Form) String() string {
	if str, ok := getFormStrings()[f]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseForm converts a wire tag back into a Form.
func ParseForm(tag string) (Form, error) {
	for form, str := range getFormStrings() {
		if str == tag {
			return form, nil
		}
	}
	return FormUnknown, errs.NewValueIsInvalidErrorWithCause("paymentForm",
		fmt.Errorf("%q is not a valid payment form", tag))
}
