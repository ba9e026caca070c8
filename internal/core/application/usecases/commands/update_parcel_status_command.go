package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to move a parcel to a new
// lifecycle status. Description, location and coordinates are optional detail
// for the resulting event log entry.
//
// Example:
//
//	cmd, err := NewUpdateParcelStatusCommand(parcelID, parcel.InTransit,
//	    "departed sorting hub", "Ankara hub", &coords)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateParcelStatusCommandHandler(parcelUoWFactory, eventUoWFactory)
//	updated, event, err := handler.Handle(ctx, cmd)
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	status      parcel.Status
	description string
	location    string
	coordinates *kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a parcel's status.
// Validates the parcel identifier and the requested status. Returns an error
// if any validation fails.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	description string,
	location string,
	coordinates *kernel.Coordinates,
) (UpdateParcelStatusCommand, error) {
	statusCommand := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setParcelID(parcelID),
		statusCommand.setStatus(status),
		statusCommand.setCoordinates(coordinates),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	statusCommand.description = description
	statusCommand.location = location
	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the requested target status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

// Description returns the optional free-text event description.
func (c UpdateParcelStatusCommand) Description() string {
	return c.description
}

// Location returns the optional free-text location for the event.
func (c UpdateParcelStatusCommand) Location() string {
	return c.location
}

// Coordinates returns the optional reported position for the event.
func (c UpdateParcelStatusCommand) Coordinates() *kernel.Coordinates {
	return c.coordinates
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateParcelStatusCommand) setCoordinates(coordinates *kernel.Coordinates) error {
	if coordinates == nil {
		return nil
	}
	if err := coordinates.Validate(); err != nil {
		return err
	}

	c.coordinates = coordinates
	return nil
}
