package commands

import (
	"context"
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrDeleteReleaseNoteCommandIsNotConstructed is returned when a
// DeleteReleaseNoteCommand instance was not created through
// NewDeleteReleaseNoteCommand.
var ErrDeleteReleaseNoteCommandIsNotConstructed = errors.New(
	"DeleteReleaseNoteCommand must be created via NewDeleteReleaseNoteCommand constructor")

// DeleteReleaseNoteCommand represents a request to delete a release note
// still in PENDING_APPROVAL.
type DeleteReleaseNoteCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteReleaseNoteCommand creates a command to delete a note.
func NewDeleteReleaseNoteCommand(noteID int64) (DeleteReleaseNoteCommand, error) {
	if noteID <= 0 {
		return DeleteReleaseNoteCommand{}, errs.NewValidationError(errs.FieldViolation{
			Field: "noteId", Message: "must be a positive identifier"})
	}
	return DeleteReleaseNoteCommand{
		noteID: kernel.ID(noteID),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReleaseNoteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReleaseNoteCommandIsNotConstructed)
}

// NoteID returns the note to delete.
func (c DeleteReleaseNoteCommand) NoteID() kernel.ID {
	return c.noteID
}

// DeleteReleaseNoteCommandHandler deletes a PENDING_APPROVAL note. Approved
// notes have already touched vehicle stock and must be cancelled instead.
type DeleteReleaseNoteCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewDeleteReleaseNoteCommandHandler creates a handler for note deletion.
func NewDeleteReleaseNoteCommandHandler(uowFactory WarehouseUoWFactory) DeleteReleaseNoteCommandHandler {
	return DeleteReleaseNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteReleaseNoteCommandHandler) Handle(ctx context.Context, cmd DeleteReleaseNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.WarehouseReleaseNoteRepository()
	aggregate, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err = noteRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
