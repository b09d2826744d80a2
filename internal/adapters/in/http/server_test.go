package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealership/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestWriteError_MapsDomainErrorsToStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"should map not found to 404", errs.NewObjectNotFoundError("order", 5), http.StatusNotFound},
		{"should map conflict to 409", errs.NewConflictError("order", 5), http.StatusConflict},
		{"should map invalid transition to 409",
			errs.NewInvalidTransitionError("Order", "PENDING", "DELIVERED"), http.StatusConflict},
		{"should map guard violation to 409",
			errs.NewGuardViolationError("Order", "delivery is not DELIVERED yet"), http.StatusConflict},
		{"should map overpayment to 409",
			errs.NewOverpaymentError(5, 100, 50), http.StatusConflict},
		{"should map immutable payment to 409",
			errs.NewImmutablePaymentError(5, "PAID"), http.StatusConflict},
		{"should map order locked to 409",
			errs.NewOrderLockedError(5), http.StatusConflict},
		{"should map value required to 400",
			errs.NewValueIsRequiredError("agencyId"), http.StatusBadRequest},
		{"should map unknown errors to 500",
			assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, recorder := newTestContext(t, http.MethodGet, "/", "")

			require.NoError(t, writeError(ctx, tt.err))
			assert.Equal(t, tt.expected, recorder.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, tt.expected, response.Code)
		})
	}
}

func TestWriteError_ValidationErrorListsEveryViolation(t *testing.T) {
	ctx, recorder := newTestContext(t, http.MethodPost, "/", "")

	err := errs.NewValidationError(
		errs.FieldViolation{Field: "agencyId", Message: "must be a positive identifier"},
		errs.FieldViolation{Field: "details", Message: "at least one detail line is required"},
	)
	require.NoError(t, writeError(ctx, err))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Violations, 2)
	assert.Equal(t, "agencyId", response.Violations[0].Field)
	assert.Equal(t, "details", response.Violations[1].Field)
}

func TestCreateOrder_InvalidBody_ReturnsBadRequest(t *testing.T) {
	server := NewServer(Handlers{})
	ctx, recorder := newTestContext(t, http.MethodPost, "/api/v1/orders", "{not json")

	require.NoError(t, server.CreateOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateOrder_InvalidPayload_ReturnsValidationError(t *testing.T) {
	server := NewServer(Handlers{})
	body := `{"agencyId": 0, "employeeId": 0, "details": []}`
	ctx, recorder := newTestContext(t, http.MethodPost, "/api/v1/orders", body)

	require.NoError(t, server.CreateOrder(ctx))
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Violations)
}

func TestTransitionOrder_InvalidID_ReturnsBadRequest(t *testing.T) {
	server := NewServer(Handlers{})
	ctx, recorder := newTestContext(t, http.MethodPost, "/api/v1/orders/abc/status", `{"status":"APPROVED"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	require.NoError(t, server.TransitionOrder(ctx))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTransitionOrder_UnknownStatusTag_ReturnsValidationError(t *testing.T) {
	server := NewServer(Handlers{})
	ctx, recorder := newTestContext(t, http.MethodPost, "/api/v1/orders/1/status", `{"status":"SHIPPED"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")

	require.NoError(t, server.TransitionOrder(ctx))
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestRegisterRoutes_MountsAllOperations(t *testing.T) {
	e := echo.New()
	NewServer(Handlers{}).RegisterRoutes(e)

	expected := map[string][]string{
		http.MethodPost: {
			"/api/v1/orders",
			"/api/v1/orders/:id/status",
			"/api/v1/payments",
			"/api/v1/payments/:id/confirm-cash",
			"/api/v1/payments/:id/vnpay-session",
			"/api/v1/payments/:id/vnpay-result",
			"/api/v1/deliveries",
			"/api/v1/deliveries/:id/status",
			"/api/v1/release-notes",
			"/api/v1/release-notes/:id/status",
			"/api/v1/import-requests",
			"/api/v1/import-requests/:id/status",
			"/api/v1/appointments",
			"/api/v1/appointments/:id/status",
		},
		http.MethodGet: {
			"/api/v1/orders/:id",
			"/api/v1/orders/:id/payments",
		},
		http.MethodPut: {
			"/api/v1/deliveries/:id",
			"/api/v1/appointments/:id",
		},
		http.MethodDelete: {
			"/api/v1/payments/:id",
			"/api/v1/release-notes/:id",
			"/api/v1/appointments/:id",
		},
	}

	registered := make(map[string]map[string]bool)
	for _, route := range e.Routes() {
		if registered[route.Method] == nil {
			registered[route.Method] = make(map[string]bool)
		}
		registered[route.Method][route.Path] = true
	}

	for method, paths := range expected {
		for _, path := range paths {
			assert.True(t, registered[method][path], "missing route %s %s", method, path)
		}
	}
}
