package commands

import (
	"context"

	"dealership/internal/core/domain/model/warehouse"
)

// UpdateReleaseNoteStatusCommandHandler advances a release note and applies
// the resulting stock effect to its vehicles in the same transaction: the note
// and its vehicle rows move together or not at all.
type UpdateReleaseNoteStatusCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewUpdateReleaseNoteStatusCommandHandler creates a handler for note transitions.
func NewUpdateReleaseNoteStatusCommandHandler(uowFactory WarehouseUoWFactory) UpdateReleaseNoteStatusCommandHandler {
	return UpdateReleaseNoteStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status command and returns the updated note.
func (h *UpdateReleaseNoteStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReleaseNoteStatusCommand) (*warehouse.WarehouseReleaseNote, error) {
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

	noteRepo := uow.WarehouseReleaseNoteRepository()
	aggregate, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateNote(cmd.Note(), cmd.Reason()); err != nil {
		return nil, err
	}

	effect, err := aggregate.TransitionTo(cmd.Target())
	if err != nil {
		return nil, err
	}

	if effect != warehouse.EffectNone {
		if err = h.applyVehicleEffect(ctx, uow, aggregate, effect); err != nil {
			return nil, err
		}
	}

	if err = noteRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *UpdateReleaseNoteStatusCommandHandler) applyVehicleEffect(
	ctx context.Context,
	uow WarehouseUoW,
	aggregate *warehouse.WarehouseReleaseNote,
	effect warehouse.VehicleEffect,
) error {
	vehicleRepo := uow.VehicleRepository()
	vehicles, err := vehicleRepo.GetAllByIDs(ctx, aggregate.VehicleIDs())
	if err != nil {
		return err
	}

	for _, v := range vehicles {
		var effectErr error
		switch effect {
		case warehouse.EffectReserve:
			effectErr = v.Reserve()
		case warehouse.EffectRelease:
			effectErr = v.Release()
		case warehouse.EffectReturn:
			effectErr = v.Return()
		case warehouse.EffectNone:
		}
		if effectErr != nil {
			return effectErr
		}
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return err
		}
	}
	return nil
}
