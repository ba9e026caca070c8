package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// UpdateParcelStatusCommandHandler handles parcel status transitions.
// The status write is guarded by the status the parcel had when it was read:
// when another writer changed it in between, the update is rejected with an
// errs.ConcurrentModificationError and nothing is written.
//
// The status change and the event log entry are committed in two separate
// transactions. A crash between the two leaves a parcel whose latest status
// has no matching event; the log stays append-only and consistent, readers
// fall back to the parcel row for the current status.
//
// Example:
//
//	handler := NewUpdateParcelStatusCommandHandler(parcelUoWFactory, eventUoWFactory)
//	updated, event, err := handler.Handle(ctx, cmd)
//	var concurrent *errs.ConcurrentModificationError
//	if errors.As(err, &concurrent) {
//	    // re-read and retry
//	}
type UpdateParcelStatusCommandHandler struct {
	parcelUoWFactory ParcelUoWFactory
	eventUoWFactory  EventUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(
	parcelUoWFactory ParcelUoWFactory,
	eventUoWFactory EventUoWFactory,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		parcelUoWFactory: parcelUoWFactory,
		eventUoWFactory:  eventUoWFactory,
	}
}

// Handle processes the status update command.
// Returns the updated parcel and the event that was appended for the change.
func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateParcelStatusCommand,
) (*parcel.Parcel, *parcel.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()

	aggregate, err := h.transition(ctx, cmd, now)
	if err != nil {
		return nil, nil, err
	}

	event, err := h.appendEvent(ctx, cmd, now)
	if err != nil {
		return nil, nil, err
	}

	return aggregate, event, nil
}

func (h UpdateParcelStatusCommandHandler) transition(
	ctx context.Context, cmd UpdateParcelStatusCommand, now time.Time,
) (*parcel.Parcel, error) {
	uow := h.parcelUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	expectedStatus := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Status(), now); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h UpdateParcelStatusCommandHandler) appendEvent(
	ctx context.Context, cmd UpdateParcelStatusCommand, now time.Time,
) (*parcel.Event, error) {
	eventType, err := parcel.EventTypeForStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		cmd.ParcelID(),
		eventType,
		cmd.Description(),
		cmd.Location(),
		cmd.Coordinates(),
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.eventUoWFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
