package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to attach a courier to a parcel.
// Assignment is only possible before pickup; it does not change the parcel's
// status by itself.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to attach a courier to a parcel.
// Validates both identifiers. Returns an error if any validation fails.
func NewAssignCourierCommand(parcelID kernel.UUID, courierID kernel.UUID) (AssignCourierCommand, error) {
	courierCommand := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courierCommand.setParcelID(parcelID),
		courierCommand.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to assign.
func (c AssignCourierCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CourierID returns the identifier of the courier being attached.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
