package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel for an
// order. The planned route and the estimated delivery time are optional; a
// courier may be attached right away or assigned later.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, orderID, nil,
//	    []string{"Istanbul", "Ankara"}, &eta)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, orders, couriers)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID          kernel.UUID
	orderID           kernel.UUID
	courierID         *kernel.UUID
	routeCities       []string
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates the parcel and order identifiers and, when present, the courier
// identifier. Returns an error if any validation fails.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	orderID kernel.UUID,
	courierID *kernel.UUID,
	routeCities []string,
	estimatedDelivery *time.Time,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setOrderID(orderID),
		parcelCommand.setCourierID(courierID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	parcelCommand.routeCities = routeCities
	parcelCommand.estimatedDelivery = estimatedDelivery
	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// OrderID returns the identifier of the order the parcel fulfills.
func (c CreateParcelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the optional courier to attach on creation.
func (c CreateParcelCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// RouteCities returns the planned city sequence, possibly empty.
func (c CreateParcelCommand) RouteCities() []string {
	return c.routeCities
}

// EstimatedDelivery returns the optional estimated delivery time.
func (c CreateParcelCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateParcelCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
