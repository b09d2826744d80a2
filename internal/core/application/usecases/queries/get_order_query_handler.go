package queries

import (
	"context"
	"database/sql"
	"errors"

	"dealership/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its lines and payment totals.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The line and grand totals are derived in SQL with
// the same integer arithmetic the domain uses: the discounted line total is
// quantity x unit price x (10000 - discount) / 10000, truncating.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var customerID sql.NullInt64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.agency_id,
			o.employee_id,
			o.customer_id,
			o.contract_number,
			o.notes,
			o.status,
			o.created_at,
			COALESCE((
				SELECT SUM(p.amount)
				FROM payments p
				WHERE p.order_id = o.id AND p.status = 'PAID'
			), 0) AS paid_total
		FROM orders o
		WHERE o.id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&response.ID,
		&response.AgencyID,
		&response.EmployeeID,
		&customerID,
		&response.ContractNumber,
		&response.Notes,
		&response.Status,
		&response.CreatedAt,
		&response.PaidTotal,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if customerID.Valid {
		response.CustomerID = &customerID.Int64
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_type_detail_id,
			quantity,
			unit_wholesale_price,
			discount_bps,
			quantity * unit_wholesale_price * (10000 - discount_bps) / 10000 AS line_total
		FROM order_details
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail OrderDetailResponse
		err = rows.Scan(
			&detail.ID,
			&detail.VehicleTypeDetailID,
			&detail.Quantity,
			&detail.UnitWholesalePrice,
			&detail.DiscountBasisPoints,
			&detail.LineTotal,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.TotalAmount += detail.LineTotal
		response.Details = append(response.Details, detail)
	}
	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.RemainingAmount = response.TotalAmount - response.PaidTotal
	return response, nil
}
