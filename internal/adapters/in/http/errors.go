package http

import (
	"errors"
	"net/http"

	"dealership/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError translates a domain error into the transport response. Guard and
// lock failures are conflicts with current state (409); shape problems are the
// caller's fault (400/422); anything unrecognised is a 500.
func writeError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		violations := make([]ViolationEntry, 0, len(validationErr.Violations))
		for _, violation := range validationErr.Violations {
			violations = append(violations, ViolationEntry{
				Field:   violation.Field,
				Message: violation.Message,
			})
		}
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:       http.StatusUnprocessableEntity,
			Message:    "validation failed",
			Violations: violations,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrConflict):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrGuardViolation),
		errors.Is(err, errs.ErrOverpayment),
		errors.Is(err, errs.ErrImmutableAfterDelivery),
		errors.Is(err, errs.ErrImmutablePayment),
		errors.Is(err, errs.ErrOrderLocked):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func respond(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
