package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
)

// AssignCourierCommandHandler attaches a courier to a parcel before pickup.
// Courier assignment is metadata on the parcel, not a lifecycle transition,
// so no event is appended and the status stays as it is. The write is still
// guarded against concurrent status changes.
type AssignCourierCommandHandler struct {
	uowFactory       ParcelUoWFactory
	courierDirectory ports.CourierDirectory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
// Requires a ParcelUoWFactory and the courier directory for reference checks.
func NewAssignCourierCommandHandler(
	uowFactory ParcelUoWFactory,
	courierDirectory ports.CourierDirectory,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory:       uowFactory,
		courierDirectory: courierDirectory,
	}
}

// Handle processes the courier assignment command.
// Verifies the courier exists, then attaches it to the parcel. Reassignment
// before pickup is allowed; after pickup the operation is rejected by the
// aggregate.
func (h AssignCourierCommandHandler) Handle(
	ctx context.Context, cmd AssignCourierCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.courierDirectory.VerifyCourierExists(ctx, cmd.CourierID()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
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
	if err = aggregate.AssignCourier(cmd.CourierID(), time.Now().UTC()); err != nil {
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
