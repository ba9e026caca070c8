// Package eventrepo persists the append-only parcel event log. Rows are only
// ever inserted; the bigserial sequence column is the global ordering of the
// log and is assigned by the database on insert.
package eventrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// EventDTO represents a single event log row. Coordinates are stored as a
// nullable latitude/longitude pair: both set or both null.
type EventDTO struct {
	Sequence    int64     `gorm:"primaryKey;autoIncrement"`
	ID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	EventType   int       `gorm:"index"`
	Description string
	Location    string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
}

// TableName specifies the database table name for event entities.
// Overrides GORM's default naming convention to use "parcel_events".
func (EventDTO) TableName() string {
	return "parcel_events"
}

// fromDomain converts an event entity to its database representation.
// The sequence is left zero; the database assigns it on insert.
func fromDomain(event *parcel.Event) EventDTO {
	var latitude, longitude *float64
	if coordinates := event.Coordinates(); coordinates != nil {
		lat := coordinates.Latitude()
		lon := coordinates.Longitude()
		latitude = &lat
		longitude = &lon
	}

	return EventDTO{
		ID:          event.ID().Bytes(),
		ParcelID:    event.ParcelID().Bytes(),
		EventType:   int(event.Type()),
		Description: event.Description(),
		Location:    event.Location(),
		Latitude:    latitude,
		Longitude:   longitude,
		CreatedAt:   event.CreatedAt(),
	}
}

// toDomain converts a database row to an event entity including its
// storage-assigned sequence.
func toDomain(dto EventDTO) (*parcel.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	var coordinates *kernel.Coordinates
	if dto.Latitude != nil && dto.Longitude != nil {
		c, coordErr := kernel.NewCoordinates(*dto.Latitude, *dto.Longitude)
		if coordErr != nil {
			return nil, coordErr
		}

		coordinates = &c
	}

	return parcel.RestoreEvent(
		id,
		parcelID,
		parcel.EventType(dto.EventType),
		dto.Description,
		dto.Location,
		coordinates,
		dto.CreatedAt,
		dto.Sequence,
	)
}
