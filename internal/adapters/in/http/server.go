// Package http exposes the fulfillment lifecycle over REST. Handlers bind the
// request, build a command or query, dispatch it, and map the aggregate (or
// the domain error) back onto the wire. Status enums travel as their uppercase
// wire tags.
package http

import (
	"net/http"
	"strconv"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrder     commands.CreateOrderCommandHandler
	transitionOrder commands.TransitionOrderCommandHandler

	createPayment      commands.CreatePaymentCommandHandler
	confirmCashPayment commands.ConfirmCashPaymentCommandHandler
	createVnpaySession commands.CreateVnpaySessionCommandHandler
	applyVnpayResult   commands.ApplyVnpayResultCommandHandler
	deletePayment      commands.DeletePaymentCommandHandler

	createDelivery     commands.CreateDeliveryCommandHandler
	transitionDelivery commands.TransitionDeliveryCommandHandler
	updateDelivery     commands.UpdateDeliveryCommandHandler

	createReleaseNote       commands.CreateReleaseNoteCommandHandler
	updateReleaseNoteStatus commands.UpdateReleaseNoteStatusCommandHandler
	deleteReleaseNote       commands.DeleteReleaseNoteCommandHandler

	createImportRequest       commands.CreateImportRequestCommandHandler
	updateImportRequestStatus commands.UpdateImportRequestStatusCommandHandler

	createAppointment       commands.CreateAppointmentCommandHandler
	updateAppointment       commands.UpdateAppointmentCommandHandler
	updateAppointmentStatus commands.UpdateAppointmentStatusCommandHandler
	deleteAppointment       commands.DeleteAppointmentCommandHandler

	getOrder            queries.GetOrderQueryHandler
	listPaymentsByOrder queries.ListPaymentsByOrderQueryHandler
}

// Handlers bundles every use case the server serves.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	TransitionOrder commands.TransitionOrderCommandHandler

	CreatePayment      commands.CreatePaymentCommandHandler
	ConfirmCashPayment commands.ConfirmCashPaymentCommandHandler
	CreateVnpaySession commands.CreateVnpaySessionCommandHandler
	ApplyVnpayResult   commands.ApplyVnpayResultCommandHandler
	DeletePayment      commands.DeletePaymentCommandHandler

	CreateDelivery     commands.CreateDeliveryCommandHandler
	TransitionDelivery commands.TransitionDeliveryCommandHandler
	UpdateDelivery     commands.UpdateDeliveryCommandHandler

	CreateReleaseNote       commands.CreateReleaseNoteCommandHandler
	UpdateReleaseNoteStatus commands.UpdateReleaseNoteStatusCommandHandler
	DeleteReleaseNote       commands.DeleteReleaseNoteCommandHandler

	CreateImportRequest       commands.CreateImportRequestCommandHandler
	UpdateImportRequestStatus commands.UpdateImportRequestStatusCommandHandler

	CreateAppointment       commands.CreateAppointmentCommandHandler
	UpdateAppointment       commands.UpdateAppointmentCommandHandler
	UpdateAppointmentStatus commands.UpdateAppointmentStatusCommandHandler
	DeleteAppointment       commands.DeleteAppointmentCommandHandler

	GetOrder            queries.GetOrderQueryHandler
	ListPaymentsByOrder queries.ListPaymentsByOrderQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrder:               handlers.CreateOrder,
		transitionOrder:           handlers.TransitionOrder,
		createPayment:             handlers.CreatePayment,
		confirmCashPayment:        handlers.ConfirmCashPayment,
		createVnpaySession:        handlers.CreateVnpaySession,
		applyVnpayResult:          handlers.ApplyVnpayResult,
		deletePayment:             handlers.DeletePayment,
		createDelivery:            handlers.CreateDelivery,
		transitionDelivery:        handlers.TransitionDelivery,
		updateDelivery:            handlers.UpdateDelivery,
		createReleaseNote:         handlers.CreateReleaseNote,
		updateReleaseNoteStatus:   handlers.UpdateReleaseNoteStatus,
		deleteReleaseNote:         handlers.DeleteReleaseNote,
		createImportRequest:       handlers.CreateImportRequest,
		updateImportRequestStatus: handlers.UpdateImportRequestStatus,
		createAppointment:         handlers.CreateAppointment,
		updateAppointment:         handlers.UpdateAppointment,
		updateAppointmentStatus:   handlers.UpdateAppointmentStatus,
		deleteAppointment:         handlers.DeleteAppointment,
		getOrder:                  handlers.GetOrder,
		listPaymentsByOrder:       handlers.ListPaymentsByOrder,
	}
}

// RegisterRoutes mounts all lifecycle operations under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/status", s.TransitionOrder)
	v1.GET("/orders/:id/payments", s.ListPaymentsByOrder)

	v1.POST("/payments", s.CreatePayment)
	v1.POST("/payments/:id/confirm-cash", s.ConfirmCashPayment)
	v1.POST("/payments/:id/vnpay-session", s.CreateVnpaySession)
	v1.POST("/payments/:id/vnpay-result", s.ApplyVnpayResult)
	v1.DELETE("/payments/:id", s.DeletePayment)

	v1.POST("/deliveries", s.CreateDelivery)
	v1.PUT("/deliveries/:id", s.UpdateDelivery)
	v1.POST("/deliveries/:id/status", s.TransitionDelivery)

	v1.POST("/release-notes", s.CreateReleaseNote)
	v1.POST("/release-notes/:id/status", s.UpdateReleaseNoteStatus)
	v1.DELETE("/release-notes/:id", s.DeleteReleaseNote)

	v1.POST("/import-requests", s.CreateImportRequest)
	v1.POST("/import-requests/:id/status", s.UpdateImportRequestStatus)

	v1.POST("/appointments", s.CreateAppointment)
	v1.PUT("/appointments/:id", s.UpdateAppointment)
	v1.POST("/appointments/:id/status", s.UpdateAppointmentStatus)
	v1.DELETE("/appointments/:id", s.DeleteAppointment)
}

func pathID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	details := make([]commands.OrderDetailInput, 0, len(request.Details))
	for _, detail := range request.Details {
		details = append(details, commands.OrderDetailInput{
			VehicleTypeDetailID: detail.VehicleTypeDetailID,
			Quantity:            detail.Quantity,
			UnitWholesalePrice:  detail.UnitWholesalePrice,
			DiscountBasisPoints: detail.DiscountBasisPoints,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.AgencyID, request.EmployeeID, request.CustomerID, details, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrderResponse(aggregate))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderQueryResponse(response))
}

// TransitionOrder handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(id, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.transitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(aggregate))
}

// ListPaymentsByOrder handles GET /api/v1/orders/:id/payments.
func (s *Server) ListPaymentsByOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewListPaymentsByOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.listPaymentsByOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PaymentResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, toPaymentQueryResponse(row))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var request CreatePaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreatePaymentCommand(
		request.OrderID, request.Amount, request.Method, request.Form,
		request.NumberCycle, request.DueDate.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toPaymentResponse(aggregate))
}

// ConfirmCashPayment handles POST /api/v1/payments/:id/confirm-cash.
func (s *Server) ConfirmCashPayment(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid payment id")
	}

	cmd, err := commands.NewConfirmCashPaymentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.confirmCashPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPaymentResponse(aggregate))
}

// CreateVnpaySession handles POST /api/v1/payments/:id/vnpay-session.
func (s *Server) CreateVnpaySession(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid payment id")
	}

	cmd, err := commands.NewCreateVnpaySessionCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	session, err := s.createVnpaySession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSessionResponse(session))
}

// ApplyVnpayResult handles POST /api/v1/payments/:id/vnpay-result. The VNPay
// return callback is translated into this call by the edge, so the outcome is
// applied exactly like any other inbound request.
func (s *Server) ApplyVnpayResult(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid payment id")
	}

	var request VnpayResultRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewApplyVnpayResultCommand(id, request.Approved, request.VnpayCode)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.applyVnpayResult.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPaymentResponse(aggregate))
}

// DeletePayment handles DELETE /api/v1/payments/:id.
func (s *Server) DeletePayment(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid payment id")
	}

	cmd, err := commands.NewDeletePaymentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deletePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request CreateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		request.OrderID, request.EmployeeID, request.ExpectedDeliveryDate.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toDeliveryResponse(aggregate))
}

// UpdateDelivery handles PUT /api/v1/deliveries/:id.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid delivery id")
	}

	var request UpdateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryCommand(
		id, request.EmployeeID, request.ExpectedDeliveryDate.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryResponse(aggregate))
}

// TransitionDelivery handles POST /api/v1/deliveries/:id/status.
func (s *Server) TransitionDelivery(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid delivery id")
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewTransitionDeliveryCommand(id, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.transitionDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryResponse(aggregate))
}

// CreateReleaseNote handles POST /api/v1/release-notes.
func (s *Server) CreateReleaseNote(ctx echo.Context) error {
	var request CreateReleaseNoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateReleaseNoteCommand(
		request.AgencyID, request.EmployeeID, request.ReleaseDate.Time,
		request.TotalAmount, request.Reason, request.VehicleIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createReleaseNote.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toReleaseNoteResponse(aggregate))
}

// UpdateReleaseNoteStatus handles POST /api/v1/release-notes/:id/status.
func (s *Server) UpdateReleaseNoteStatus(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid release note id")
	}

	var request UpdateReleaseNoteStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateReleaseNoteStatusCommand(
		id, request.Status, request.Note, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateReleaseNoteStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReleaseNoteResponse(aggregate))
}

// DeleteReleaseNote handles DELETE /api/v1/release-notes/:id.
func (s *Server) DeleteReleaseNote(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid release note id")
	}

	cmd, err := commands.NewDeleteReleaseNoteCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteReleaseNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateImportRequest handles POST /api/v1/import-requests.
func (s *Server) CreateImportRequest(ctx echo.Context) error {
	var request CreateImportRequestRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	lines := make([]commands.ImportLineInput, 0, len(request.Lines))
	for _, line := range request.Lines {
		lines = append(lines, commands.ImportLineInput{
			VehicleTypeID: line.VehicleTypeID,
			Version:       line.Version,
			Color:         line.Color,
			Quantity:      line.Quantity,
		})
	}

	cmd, err := commands.NewCreateImportRequestCommand(
		request.AgencyID, request.EmployeeID, request.Note, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createImportRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toImportRequestResponse(aggregate))
}

// UpdateImportRequestStatus handles POST /api/v1/import-requests/:id/status.
func (s *Server) UpdateImportRequestStatus(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid import request id")
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateImportRequestStatusCommand(id, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateImportRequestStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toImportRequestResponse(aggregate))
}

// CreateAppointment handles POST /api/v1/appointments.
func (s *Server) CreateAppointment(ctx echo.Context) error {
	var request CreateAppointmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateAppointmentCommand(
		request.CustomerID, request.VehicleID,
		request.DateOfAppointment.Time, request.TimeOfAppointment)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createAppointment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAppointmentResponse(aggregate))
}

// UpdateAppointment handles PUT /api/v1/appointments/:id.
func (s *Server) UpdateAppointment(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid appointment id")
	}

	var request UpdateAppointmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateAppointmentCommand(
		id, request.VehicleID, request.DateOfAppointment.Time, request.TimeOfAppointment)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateAppointment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAppointmentResponse(aggregate))
}

// UpdateAppointmentStatus handles POST /api/v1/appointments/:id/status.
func (s *Server) UpdateAppointmentStatus(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid appointment id")
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateAppointmentStatusCommand(id, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateAppointmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAppointmentResponse(aggregate))
}

// DeleteAppointment handles DELETE /api/v1/appointments/:id.
func (s *Server) DeleteAppointment(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "invalid appointment id")
	}

	cmd, err := commands.NewDeleteAppointmentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteAppointment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
