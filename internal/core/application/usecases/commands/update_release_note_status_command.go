package commands

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/warehouse"
	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/guard"
)

// ErrUpdateReleaseNoteStatusCommandIsNotConstructed is returned when an
// UpdateReleaseNoteStatusCommand instance was not created through
// NewUpdateReleaseNoteStatusCommand.
var ErrUpdateReleaseNoteStatusCommandIsNotConstructed = errors.New(
	"UpdateReleaseNoteStatusCommand must be created via NewUpdateReleaseNoteStatusCommand constructor")

// UpdateReleaseNoteStatusCommand represents a request to advance a release
// note, optionally adjusting its note and reason text on the way.
type UpdateReleaseNoteStatusCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.ID
	target warehouse.Status
	note   string
	reason string

	guard guard.ConstructorGuard
}

// NewUpdateReleaseNoteStatusCommand creates a command to advance a note.
func NewUpdateReleaseNoteStatusCommand(noteID int64, targetTag, note, reason string) (UpdateReleaseNoteStatusCommand, error) {
	var violations []errs.FieldViolation

	if noteID <= 0 {
		violations = append(violations, errs.FieldViolation{
			Field: "noteId", Message: "must be a positive identifier"})
	}
	target, err := warehouse.ParseStatus(targetTag)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Field: "status", Message: "is not a valid release note status tag"})
	}
	if len(violations) > 0 {
		return UpdateReleaseNoteStatusCommand{}, errs.NewValidationError(violations...)
	}

	return UpdateReleaseNoteStatusCommand{
		noteID: kernel.ID(noteID),
		target: target,
		note:   note,
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReleaseNoteStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReleaseNoteStatusCommandIsNotConstructed)
}

// NoteID returns the note to advance.
func (c UpdateReleaseNoteStatusCommand) NoteID() kernel.ID {
	return c.noteID
}

// Target returns the parsed target status.
func (c UpdateReleaseNoteStatusCommand) Target() warehouse.Status {
	return c.target
}

// Note returns the new note text.
func (c UpdateReleaseNoteStatusCommand) Note() string {
	return c.note
}

// Reason returns the new reason text.
func (c UpdateReleaseNoteStatusCommand) Reason() string {
	return c.reason
}
