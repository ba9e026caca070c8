package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrRecordLocationCommandIsNotConstructed = errors.New(
		"RecordLocationCommand must be created via NewRecordLocationCommand constructor",
	)
	ErrLocationDetailIsRequired = errors.New(
		"either coordinates or a location text is required",
	)
)

// RecordLocationCommand represents a position ping for a parcel in transit.
// It only appends a LOCATION_UPDATE event; the parcel's status is untouched.
type RecordLocationCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	location    string
	coordinates *kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewRecordLocationCommand creates a command to record a parcel position.
// At least one of coordinates or a free-text location must be provided.
func NewRecordLocationCommand(
	parcelID kernel.UUID,
	location string,
	coordinates *kernel.Coordinates,
) (RecordLocationCommand, error) {
	locationCommand := RecordLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setParcelID(parcelID),
		locationCommand.setDetail(location, coordinates),
	); err != nil {
		return RecordLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordLocationCommandIsNotConstructed if validation fails.
func (c RecordLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being located.
func (c RecordLocationCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Location returns the free-text location, possibly empty.
func (c RecordLocationCommand) Location() string {
	return c.location
}

// Coordinates returns the reported position, possibly nil.
func (c RecordLocationCommand) Coordinates() *kernel.Coordinates {
	return c.coordinates
}

func (c *RecordLocationCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RecordLocationCommand) setDetail(location string, coordinates *kernel.Coordinates) error {
	if location == "" && coordinates == nil {
		return ErrLocationDetailIsRequired
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return err
		}
	}

	c.location = location
	c.coordinates = coordinates
	return nil
}
