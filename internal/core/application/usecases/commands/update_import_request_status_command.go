package commands

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrUpdateImportRequestStatusCommandIsNotConstructed is returned when an
// UpdateImportRequestStatusCommand instance was not created through
// NewUpdateImportRequestStatusCommand.
var ErrUpdateImportRequestStatusCommandIsNotConstructed = errors.New(
	"UpdateImportRequestStatusCommand must be created via NewUpdateImportRequestStatusCommand constructor")

// UpdateImportRequestStatusCommand represents the decision on an import
// request: APPROVED or REJECTED.
type UpdateImportRequestStatusCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.ID
	target    intake.Status

	guard guard.ConstructorGuard
}

// NewUpdateImportRequestStatusCommand creates a command to decide a request.
func NewUpdateImportRequestStatusCommand(requestID int64, targetTag string) (UpdateImportRequestStatusCommand, error) {
	var violations []errs.FieldViolation

	if requestID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "requestId", Message: "must be a positive identifier"})
	}
	target, err := intake.ParseStatus(targetTag)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Field: "status", Message: "is not a valid import request status tag"})
	}
	if len(violations) > 0 {
		return UpdateImportRequestStatusCommand{}, errs.NewValidationError(violations...)
	}

	return UpdateImportRequestStatusCommand{
		requestID: kernel.ID(requestID),
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateImportRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateImportRequestStatusCommandIsNotConstructed)
}

// RequestID returns the request to decide.
func (c UpdateImportRequestStatusCommand) RequestID() kernel.ID {
	return c.requestID
}

// Target returns the parsed decision status.
func (c UpdateImportRequestStatusCommand) Target() intake.Status {
	return c.target
}

// UpdateImportRequestStatusCommandHandler decides an import request. Approval
// authorizes intake only; the inventory process creates the vehicle rows.
type UpdateImportRequestStatusCommandHandler struct {
	uowFactory ImportRequestUoWFactory
}

// NewUpdateImportRequestStatusCommandHandler creates a handler for request decisions.
func NewUpdateImportRequestStatusCommandHandler(uowFactory ImportRequestUoWFactory) UpdateImportRequestStatusCommandHandler {
	return UpdateImportRequestStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision command and returns the updated request.
func (h *UpdateImportRequestStatusCommandHandler) Handle(ctx context.Context, cmd UpdateImportRequestStatusCommand) (*intake.ImportRequest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.ImportRequestRepository()
	aggregate, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
