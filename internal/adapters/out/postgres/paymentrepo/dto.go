// Package paymentrepo persists payment aggregates through GORM and serves the
// ledger snapshot sums the order lifecycle guards read.
package paymentrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
)

// PaymentDTO is the database shape of a payment aggregate. Method, form and
// status columns store the wire tag strings.
type PaymentDTO struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	OrderID       int64 `gorm:"index"`
	Amount        int64
	Method        string
	Form          string
	NumberCycle   int
	DueDate       time.Time `gorm:"index"`
	PaymentDate   *time.Time
	PenaltyAmount int64
	VnpayCode     *string
	VnpayTxnRef   *string
	Status        string `gorm:"index"`
	Version       int64
	CreatedAt     time.Time
}

// TableName overrides GORM's naming convention.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            aggregate.ID().Int64(),
		OrderID:       aggregate.OrderID().Int64(),
		Amount:        aggregate.Amount().Int64(),
		Method:        aggregate.Method().String(),
		Form:          aggregate.Form().String(),
		NumberCycle:   aggregate.NumberCycle(),
		DueDate:       aggregate.DueDate(),
		PaymentDate:   aggregate.PaymentDate(),
		PenaltyAmount: aggregate.PenaltyAmount().Int64(),
		VnpayCode:     aggregate.VnpayCode(),
		VnpayTxnRef:   aggregate.VnpayTxnRef(),
		Status:        aggregate.Status().String(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return nil, err
	}
	form, err := payment.ParseForm(dto.Form)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrderID),
		amount,
		method,
		form,
		dto.NumberCycle,
		dto.DueDate,
		dto.PaymentDate,
		kernel.Money(dto.PenaltyAmount),
		dto.VnpayCode,
		dto.VnpayTxnRef,
		status,
	)
}
