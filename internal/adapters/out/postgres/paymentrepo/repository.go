package paymentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// session is the slice of the unit of work the repository needs.
type session interface {
	TrackAggregate(id kernel.ID, aggregate any)
	RememberVersion(key string, version int64)
	KnownVersion(key string) (int64, bool)
}

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	session session
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, session session) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		session: session,
	}
}

func versionKey(id int64) string {
	return fmt.Sprintf("payments/%d", id)
}

// Add inserts a new payment and assigns the generated identifier back to the
// aggregate.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.session.RememberVersion(versionKey(dto.ID), 1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the payment row with a compare-and-swap on the version read
// earlier in this unit of work.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	current, known := r.session.KnownVersion(versionKey(dto.ID))
	if !known {
		return errs.NewObjectNotFoundError("payment", dto.ID)
	}

	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("id = ? AND version = ?", dto.ID, current).
		Updates(map[string]any{
			"payment_date":   dto.PaymentDate,
			"penalty_amount": dto.PenaltyAmount,
			"vnpay_code":     dto.VnpayCode,
			"vnpay_txn_ref":  dto.VnpayTxnRef,
			"status":         dto.Status,
			"version":        current + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("payment", dto.ID)
	}

	r.session.RememberVersion(versionKey(dto.ID), current+1)
	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a payment row. Callers check EnsureDeletable first.
func (r *GormPaymentRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PaymentDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", id.String())
	}
	return nil
}

// Get retrieves a payment by identifier.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.ID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	r.session.RememberVersion(versionKey(dto.ID), dto.Version)
	return toDomain(dto)
}

// GetAllByOrder retrieves every payment of an order, oldest first.
func (r *GormPaymentRepository) GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).Order("id").Find(&dtos, "order_id = ?", orderID.Int64()).Error
	if err != nil {
		return nil, err
	}

	return r.mapAll(dtos)
}

// GetAllUnpaidDueBefore retrieves UNPAID and OVERDUE payments due before the
// cutoff, for the penalty accrual sweep.
func (r *GormPaymentRepository) GetAllUnpaidDueBefore(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).Order("id").
		Find(&dtos, "status IN ? AND due_date < ?",
			[]string{payment.Unpaid.String(), payment.Overdue.String()}, cutoff).Error
	if err != nil {
		return nil, err
	}

	return r.mapAll(dtos)
}

// PaidTotal returns the sum of PAID payment amounts for the order.
func (r *GormPaymentRepository) PaidTotal(ctx context.Context, orderID kernel.ID) (kernel.Money, error) {
	return r.sumWhere(ctx, orderID, "status = ?", payment.Paid.String())
}

// NonCancelledTotal returns the sum of payment amounts for the order excluding
// CANCELLED ones.
func (r *GormPaymentRepository) NonCancelledTotal(ctx context.Context, orderID kernel.ID) (kernel.Money, error) {
	return r.sumWhere(ctx, orderID, "status != ?", payment.Cancelled.String())
}

// HasPaidPayment reports whether any payment for the order is PAID.
func (r *GormPaymentRepository) HasPaidPayment(ctx context.Context, orderID kernel.ID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("order_id = ? AND status = ?", orderID.Int64(), payment.Paid.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPaymentRepository) sumWhere(
	ctx context.Context,
	orderID kernel.ID,
	condition string,
	statusTag string,
) (kernel.Money, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var total int64
	err := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("order_id = ?", orderID.Int64()).
		Where(condition, statusTag).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return kernel.Money(total), nil
}

func (r *GormPaymentRepository) mapAll(dtos []PaymentDTO) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		r.session.RememberVersion(versionKey(dto.ID), dto.Version)
		payments = append(payments, aggregate)
	}
	return payments, nil
}
