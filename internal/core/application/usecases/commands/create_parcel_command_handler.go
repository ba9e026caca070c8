package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
)

// trackingNumberAttempts bounds the retry loop on tracking number collisions.
// Collisions are effectively impossible with 80 random bits, so one retry is
// already generous.
const trackingNumberAttempts = 3

var ErrTrackingNumberExhausted = errors.New(
	"could not generate a unique tracking number",
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// Verifies the referenced order and courier exist, generates a unique tracking
// number, and persists the parcel together with its CREATED event in a single
// transaction.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, orders, couriers)
//	cmd, _ := NewCreateParcelCommand(kernel.NewUUID(), orderID, nil, cities, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("parcel creation failed: %w", err)
//	}
//	fmt.Printf("Parcel %s registered", created.TrackingNumber())
type CreateParcelCommandHandler struct {
	uowFactory       UoWFactory
	orderDirectory   ports.OrderDirectory
	courierDirectory ports.CourierDirectory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a UoWFactory for transactional persistence and the order and
// courier directories for reference checks.
func NewCreateParcelCommandHandler(
	uowFactory UoWFactory,
	orderDirectory ports.OrderDirectory,
	courierDirectory ports.CourierDirectory,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:       uowFactory,
		orderDirectory:   orderDirectory,
		courierDirectory: courierDirectory,
	}
}

// Handle processes the parcel creation command.
// The parcel starts in CREATED status with no route progress. The parcel row
// and its CREATED event are committed atomically; a tracking number collision
// is retried with a fresh number.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context, cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.orderDirectory.VerifyOrderExists(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}
	if courierID := cmd.CourierID(); courierID != nil {
		if err := h.courierDirectory.VerifyCourierExists(ctx, *courierID); err != nil {
			return nil, err
		}
	}

	route, err := parcel.NewRoute(cmd.RouteCities())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for range trackingNumberAttempts {
		aggregate, err := parcel.NewParcel(
			cmd.ParcelID(),
			kernel.NewTrackingNumber(),
			cmd.OrderID(),
			route,
			cmd.EstimatedDelivery(),
			now,
		)
		if err != nil {
			return nil, err
		}

		if courierID := cmd.CourierID(); courierID != nil {
			if err = aggregate.AssignCourier(*courierID, now); err != nil {
				return nil, err
			}
		}

		err = h.persist(ctx, aggregate, now)
		if errors.Is(err, ports.ErrTrackingNumberTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return aggregate, nil
	}

	return nil, ErrTrackingNumberExhausted
}

func (h CreateParcelCommandHandler) persist(
	ctx context.Context, aggregate *parcel.Parcel, now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.EventTypeCreated,
		"parcel registered",
		"",
		nil,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
