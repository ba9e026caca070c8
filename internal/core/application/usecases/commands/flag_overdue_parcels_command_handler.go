package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// FlagOverdueParcelsCommandHandler marks overdue parcels in the event log.
// A parcel is overdue when its estimated delivery time has passed and it is
// not in a terminal status. The DELIVERY_DELAYED event is informational and
// appended at most once per parcel; reruns of the sweep skip parcels already
// flagged.
//
// Example:
//
//	handler := NewFlagOverdueParcelsCommandHandler(uowFactory)
//	cmd := NewFlagOverdueParcelsCommand()
//	flagged, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("overdue sweep failed: %w", err)
//	}
//	log.Printf("flagged %d overdue parcels", flagged)
type FlagOverdueParcelsCommandHandler struct {
	uowFactory UoWFactory
}

// NewFlagOverdueParcelsCommandHandler creates a handler for the overdue sweep.
func NewFlagOverdueParcelsCommandHandler(uowFactory UoWFactory) FlagOverdueParcelsCommandHandler {
	return FlagOverdueParcelsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the overdue sweep.
// Returns the number of parcels that were newly flagged.
func (h FlagOverdueParcelsCommandHandler) Handle(
	ctx context.Context, cmd FlagOverdueParcelsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	overdue, err := uow.ParcelRepository().GetAllOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	eventRepo := uow.ParcelEventRepository()
	flagged := 0
	for _, aggregate := range overdue {
		alreadyFlagged, err := eventRepo.HasEventOfType(
			ctx, aggregate.ID(), parcel.EventTypeDeliveryDelayed)
		if err != nil {
			return 0, err
		}
		if alreadyFlagged {
			continue
		}

		event, err := parcel.NewEvent(
			kernel.NewUUID(),
			aggregate.ID(),
			parcel.EventTypeDeliveryDelayed,
			fmt.Sprintf("estimated delivery %s has passed",
				aggregate.EstimatedDelivery().Format(time.RFC3339)),
			"",
			nil,
			now,
		)
		if err != nil {
			return 0, err
		}

		if err = eventRepo.Add(ctx, event); err != nil {
			return 0, err
		}
		flagged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return flagged, nil
}
