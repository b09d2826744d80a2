package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListPaymentsByOrderQueryHandler reads an order's payment ledger.
type ListPaymentsByOrderQueryHandler struct {
	db *gorm.DB
}

// NewListPaymentsByOrderQueryHandler creates a handler for ledger reads.
func NewListPaymentsByOrderQueryHandler(db *gorm.DB) ListPaymentsByOrderQueryHandler {
	return ListPaymentsByOrderQueryHandler{db: db}
}

// Handle executes the query. An order with no payments yields an empty slice,
// not an error; whether the order itself exists is not this handler's concern.
func (h ListPaymentsByOrderQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentsByOrderQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]PaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			method,
			form,
			number_cycle,
			due_date,
			payment_date,
			penalty_amount,
			vnpay_code,
			vnpay_txn_ref,
			status
		FROM payments
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PaymentResponse
		var paymentDate sql.NullTime
		var vnpayCode, vnpayTxnRef sql.NullString

		err = rows.Scan(
			&p.ID,
			&p.OrderID,
			&p.Amount,
			&p.Method,
			&p.Form,
			&p.NumberCycle,
			&p.DueDate,
			&paymentDate,
			&p.PenaltyAmount,
			&vnpayCode,
			&vnpayTxnRef,
			&p.Status,
		)
		if err != nil {
			return nil, err
		}

		if paymentDate.Valid {
			stamped := paymentDate.Time
			p.PaymentDate = &stamped
		}
		if vnpayCode.Valid {
			code := vnpayCode.String
			p.VnpayCode = &code
		}
		if vnpayTxnRef.Valid {
			ref := vnpayTxnRef.String
			p.VnpayTxnRef = &ref
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
