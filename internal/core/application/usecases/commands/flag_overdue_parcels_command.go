package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrFlagOverdueParcelsCommandIsNotConstructed = errors.New(
	"FlagOverdueParcelsCommand must be created via NewFlagOverdueParcelsCommand constructor",
)

// FlagOverdueParcelsCommand triggers a sweep over active parcels whose
// estimated delivery time has passed. Each one gets a DELIVERY_DELAYED event
// appended once; the parcel's status is untouched.
type FlagOverdueParcelsCommand struct {
	guard guard.ConstructorGuard
}

// NewFlagOverdueParcelsCommand creates a new command to trigger the overdue
// sweep. This is a parameterless command, typically issued by a scheduler.
func NewFlagOverdueParcelsCommand() FlagOverdueParcelsCommand {
	return FlagOverdueParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrFlagOverdueParcelsCommandIsNotConstructed if validation fails.
func (c *FlagOverdueParcelsCommand) Validate() error {
	return c.guard.Validate(
		ErrFlagOverdueParcelsCommandIsNotConstructed,
	)
}
