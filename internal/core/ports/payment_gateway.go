package ports

import (
	"context"

	"dealership/internal/core/domain/model/payment"
)

// PaymentSession is a pending external payment handed to the customer.
// The gateway later reports the authoritative outcome through a callback; the
// session itself never changes the payment's status.
type PaymentSession struct {
	// TxnRef uniquely identifies the session at the gateway.
	TxnRef string

	// RedirectURL is where the customer completes the payment.
	RedirectURL string
}

// VnpayGateway builds signed VNPay checkout sessions for VNPAY payments.
type VnpayGateway interface {
	// CreateSession generates a transaction reference and a signed redirect
	// URL for the payment.
	CreateSession(ctx context.Context, aggregate *payment.Payment) (PaymentSession, error)
}
