package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// RecordLocationCommandHandler appends position pings to the event log.
// Pings against parcels in a terminal status are rejected, since nothing is
// moving anymore.
type RecordLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecordLocationCommandHandler creates a handler for location pings.
func NewRecordLocationCommandHandler(uowFactory UoWFactory) RecordLocationCommandHandler {
	return RecordLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location ping.
// Returns the appended LOCATION_UPDATE event.
func (h RecordLocationCommandHandler) Handle(
	ctx context.Context, cmd RecordLocationCommand,
) (*parcel.Event, error) {
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

	aggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status().IsTerminal() {
		return nil, errs.NewInvalidOperationError(
			"record location",
			fmt.Sprintf("parcel status is %s", aggregate.Status()),
		)
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.EventTypeLocationUpdate,
		"position reported",
		cmd.Location(),
		cmd.Coordinates(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
