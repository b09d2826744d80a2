package http

import (
	"time"

	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/appointment"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/warehouse"
	"dealership/internal/core/ports"

	"github.com/oapi-codegen/runtime/types"
)

// Calendar-date request fields use types.Date so they bind and render as
// plain "2006-01-02" values; instants stay time.Time.

type OrderDetailRequest struct {
	VehicleTypeDetailID int64 `json:"vehicleTypeDetailId"`
	Quantity            int   `json:"quantity"`
	UnitWholesalePrice  int64 `json:"unitWholesalePrice"`
	DiscountBasisPoints int64 `json:"discountBasisPoints"`
}

type CreateOrderRequest struct {
	AgencyID   int64                `json:"agencyId"`
	EmployeeID int64                `json:"employeeId"`
	CustomerID *int64               `json:"customerId,omitempty"`
	Notes      string               `json:"notes"`
	Details    []OrderDetailRequest `json:"details"`
}

type TransitionRequest struct {
	Status string `json:"status"`
}

type CreatePaymentRequest struct {
	OrderID     int64      `json:"orderId"`
	Amount      int64      `json:"amount"`
	Method      string     `json:"method"`
	Form        string     `json:"form"`
	NumberCycle int        `json:"numberCycle"`
	DueDate     types.Date `json:"dueDate"`
}

type VnpayResultRequest struct {
	Approved  bool   `json:"approved"`
	VnpayCode string `json:"vnpayCode"`
}

type CreateDeliveryRequest struct {
	OrderID              int64      `json:"orderId"`
	EmployeeID           int64      `json:"employeeId"`
	ExpectedDeliveryDate types.Date `json:"expectedDeliveryDate"`
}

type UpdateDeliveryRequest struct {
	EmployeeID           int64      `json:"employeeId"`
	ExpectedDeliveryDate types.Date `json:"expectedDeliveryDate"`
}

type CreateReleaseNoteRequest struct {
	AgencyID    int64      `json:"agencyId"`
	EmployeeID  int64      `json:"employeeId"`
	ReleaseDate types.Date `json:"releaseDate"`
	TotalAmount int64      `json:"totalAmount"`
	Reason      string     `json:"reason"`
	VehicleIDs  []int64    `json:"vehicleIds"`
}

type UpdateReleaseNoteStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
	Reason string `json:"reason"`
}

type ImportLineRequest struct {
	VehicleTypeID int64  `json:"vehicleTypeId"`
	Version       string `json:"version"`
	Color         string `json:"color"`
	Quantity      int    `json:"quantity"`
}

type CreateImportRequestRequest struct {
	AgencyID   int64               `json:"agencyId"`
	EmployeeID int64               `json:"employeeId"`
	Note       string              `json:"note"`
	Lines      []ImportLineRequest `json:"lines"`
}

type CreateAppointmentRequest struct {
	CustomerID        int64      `json:"customerId"`
	VehicleID         int64      `json:"vehicleId"`
	DateOfAppointment types.Date `json:"dateOfAppointment"`
	TimeOfAppointment string     `json:"timeOfAppointment"`
}

type UpdateAppointmentRequest struct {
	VehicleID         int64      `json:"vehicleId"`
	DateOfAppointment types.Date `json:"dateOfAppointment"`
	TimeOfAppointment string     `json:"timeOfAppointment"`
}

type OrderDetailResponse struct {
	ID                  int64 `json:"id,omitempty"`
	VehicleTypeDetailID int64 `json:"vehicleTypeDetailId"`
	Quantity            int   `json:"quantity"`
	UnitWholesalePrice  int64 `json:"unitWholesalePrice"`
	DiscountBasisPoints int64 `json:"discountBasisPoints"`
	LineTotal           int64 `json:"lineTotal"`
}

type OrderResponse struct {
	ID              int64                 `json:"id"`
	AgencyID        int64                 `json:"agencyId"`
	EmployeeID      int64                 `json:"employeeId"`
	CustomerID      *int64                `json:"customerId,omitempty"`
	ContractNumber  string                `json:"contractNumber"`
	Notes           string                `json:"notes"`
	Status          string                `json:"status"`
	TotalAmount     int64                 `json:"totalAmount"`
	PaidTotal       int64                 `json:"paidTotal,omitempty"`
	RemainingAmount int64                 `json:"remainingAmount,omitempty"`
	Details         []OrderDetailResponse `json:"details"`
}

type PaymentResponse struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"orderId"`
	Amount        int64      `json:"amount"`
	Method        string     `json:"method"`
	Form          string     `json:"form"`
	NumberCycle   int        `json:"numberCycle"`
	DueDate       time.Time  `json:"dueDate"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	PenaltyAmount int64      `json:"penaltyAmount"`
	VnpayCode     *string    `json:"vnpayCode,omitempty"`
	VnpayTxnRef   *string    `json:"vnpayTxnRef,omitempty"`
	Status        string     `json:"status"`
}

type PaymentSessionResponse struct {
	TxnRef      string `json:"txnRef"`
	RedirectURL string `json:"redirectUrl"`
}

type DeliveryResponse struct {
	ID                   int64      `json:"id"`
	OrderID              int64      `json:"orderId"`
	EmployeeID           int64      `json:"employeeId"`
	ExpectedDeliveryDate time.Time  `json:"expectedDeliveryDate"`
	DeliveryDate         *time.Time `json:"deliveryDate,omitempty"`
	Status               string     `json:"status"`
}

type ReleaseNoteResponse struct {
	ID          int64     `json:"id"`
	AgencyID    int64     `json:"agencyId"`
	EmployeeID  int64     `json:"employeeId"`
	ReleaseDate time.Time `json:"releaseDate"`
	TotalAmount int64     `json:"totalAmount"`
	Reason      string    `json:"reason"`
	Note        string    `json:"note"`
	Status      string    `json:"status"`
	VehicleIDs  []int64   `json:"vehicleIds"`
}

type ImportLineResponse struct {
	VehicleTypeID int64  `json:"vehicleTypeId"`
	Version       string `json:"version"`
	Color         string `json:"color"`
	Quantity      int    `json:"quantity"`
}

type ImportRequestResponse struct {
	ID         int64                `json:"id"`
	AgencyID   int64                `json:"agencyId"`
	EmployeeID int64                `json:"employeeId"`
	Note       string               `json:"note"`
	Status     string               `json:"status"`
	Lines      []ImportLineResponse `json:"lines"`
}

type AppointmentResponse struct {
	ID                int64     `json:"id"`
	CustomerID        int64     `json:"customerId"`
	VehicleID         int64     `json:"vehicleId"`
	DateOfAppointment time.Time `json:"dateOfAppointment"`
	TimeOfAppointment string    `json:"timeOfAppointment"`
	Status            string    `json:"status"`
}

type ErrorResponse struct {
	Code       int              `json:"code"`
	Message    string           `json:"message"`
	Violations []ViolationEntry `json:"violations,omitempty"`
}

type ViolationEntry struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	details := make([]OrderDetailResponse, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		details = append(details, OrderDetailResponse{
			VehicleTypeDetailID: detail.VehicleTypeDetailID().Int64(),
			Quantity:            detail.Quantity(),
			UnitWholesalePrice:  detail.UnitWholesalePrice().Int64(),
			DiscountBasisPoints: detail.Discount().BasisPoints(),
			LineTotal:           detail.LineTotal().Int64(),
		})
	}

	var customerID *int64
	if aggregate.CustomerID() != nil {
		id := aggregate.CustomerID().Int64()
		customerID = &id
	}

	return OrderResponse{
		ID:             aggregate.ID().Int64(),
		AgencyID:       aggregate.AgencyID().Int64(),
		EmployeeID:     aggregate.EmployeeID().Int64(),
		CustomerID:     customerID,
		ContractNumber: aggregate.ContractNumber(),
		Notes:          aggregate.Notes(),
		Status:         aggregate.Status().String(),
		TotalAmount:    aggregate.TotalAmount().Int64(),
		Details:        details,
	}
}

func toOrderQueryResponse(response queries.GetOrderQueryResponse) OrderResponse {
	details := make([]OrderDetailResponse, 0, len(response.Details))
	for _, detail := range response.Details {
		details = append(details, OrderDetailResponse{
			ID:                  detail.ID,
			VehicleTypeDetailID: detail.VehicleTypeDetailID,
			Quantity:            detail.Quantity,
			UnitWholesalePrice:  detail.UnitWholesalePrice,
			DiscountBasisPoints: detail.DiscountBasisPoints,
			LineTotal:           detail.LineTotal,
		})
	}

	return OrderResponse{
		ID:              response.ID,
		AgencyID:        response.AgencyID,
		EmployeeID:      response.EmployeeID,
		CustomerID:      response.CustomerID,
		ContractNumber:  response.ContractNumber,
		Notes:           response.Notes,
		Status:          response.Status,
		TotalAmount:     response.TotalAmount,
		PaidTotal:       response.PaidTotal,
		RemainingAmount: response.RemainingAmount,
		Details:         details,
	}
}

func toPaymentResponse(aggregate *payment.Payment) PaymentResponse {
	return PaymentResponse{
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

func toPaymentQueryResponse(row queries.PaymentResponse) PaymentResponse {
	return PaymentResponse{
		ID:            row.ID,
		OrderID:       row.OrderID,
		Amount:        row.Amount,
		Method:        row.Method,
		Form:          row.Form,
		NumberCycle:   row.NumberCycle,
		DueDate:       row.DueDate,
		PaymentDate:   row.PaymentDate,
		PenaltyAmount: row.PenaltyAmount,
		VnpayCode:     row.VnpayCode,
		VnpayTxnRef:   row.VnpayTxnRef,
		Status:        row.Status,
	}
}

func toSessionResponse(session ports.PaymentSession) PaymentSessionResponse {
	return PaymentSessionResponse{
		TxnRef:      session.TxnRef,
		RedirectURL: session.RedirectURL,
	}
}

func toDeliveryResponse(aggregate *delivery.VehicleDelivery) DeliveryResponse {
	return DeliveryResponse{
		ID:                   aggregate.ID().Int64(),
		OrderID:              aggregate.OrderID().Int64(),
		EmployeeID:           aggregate.EmployeeID().Int64(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		DeliveryDate:         aggregate.DeliveryDate(),
		Status:               aggregate.Status().String(),
	}
}

func toReleaseNoteResponse(aggregate *warehouse.WarehouseReleaseNote) ReleaseNoteResponse {
	vehicleIDs := make([]int64, 0, len(aggregate.VehicleIDs()))
	for _, id := range aggregate.VehicleIDs() {
		vehicleIDs = append(vehicleIDs, id.Int64())
	}

	return ReleaseNoteResponse{
		ID:          aggregate.ID().Int64(),
		AgencyID:    aggregate.AgencyID().Int64(),
		EmployeeID:  aggregate.EmployeeID().Int64(),
		ReleaseDate: aggregate.ReleaseDate(),
		TotalAmount: aggregate.TotalAmount().Int64(),
		Reason:      aggregate.Reason(),
		Note:        aggregate.Note(),
		Status:      aggregate.Status().String(),
		VehicleIDs:  vehicleIDs,
	}
}

func toImportRequestResponse(aggregate *intake.ImportRequest) ImportRequestResponse {
	lines := make([]ImportLineResponse, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, ImportLineResponse{
			VehicleTypeID: line.VehicleTypeID().Int64(),
			Version:       line.Version(),
			Color:         line.Color(),
			Quantity:      line.Quantity(),
		})
	}

	return ImportRequestResponse{
		ID:         aggregate.ID().Int64(),
		AgencyID:   aggregate.AgencyID().Int64(),
		EmployeeID: aggregate.EmployeeID().Int64(),
		Note:       aggregate.Note(),
		Status:     aggregate.Status().String(),
		Lines:      lines,
	}
}

func toAppointmentResponse(aggregate *appointment.TestDriveAppointment) AppointmentResponse {
	return AppointmentResponse{
		ID:                aggregate.ID().Int64(),
		CustomerID:        aggregate.CustomerID().Int64(),
		VehicleID:         aggregate.VehicleID().Int64(),
		DateOfAppointment: aggregate.DateOfAppointment(),
		TimeOfAppointment: aggregate.TimeOfAppointment(),
		Status:            aggregate.Status().String(),
	}
}
