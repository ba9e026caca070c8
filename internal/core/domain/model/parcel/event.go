package parcel

import (
	"errors"
	"math"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// ErrEventCreatedAtIsRequired is returned when an event carries a zero
// creation timestamp.
var ErrEventCreatedAtIsRequired = errors.New("event createdAt is required")

// Event is one immutable fact about a parcel's progress: a status change, a
// manual location ping, or an informational flag. Events are owned
// exclusively by the event log; they are appended exactly once and never
// updated, deleted or reordered. Their accumulation is the parcel's audit
// trail.
//
// Ordering: events for a parcel are totally ordered by the append-side
// sequence assigned by storage, which breaks ties between identical
// createdAt timestamps deterministically.
type Event struct {
	// id is the unique identifier of the event
	id kernel.UUID

	// parcelID references the owning parcel aggregate
	parcelID kernel.UUID

	// eventType classifies the fact being recorded
	eventType EventType

	// description is a human-readable account of the fact
	description string

	// location is an optional free-text place name
	location string

	// coordinates is the optional geographic position of the fact
	coordinates *kernel.Coordinates

	// createdAt is the wall-clock time the fact was recorded
	createdAt time.Time

	// sequence is the append-side monotonic position assigned by storage;
	// zero until the event has been persisted
	sequence int64

	// isConstructed ensures the event was created via a constructor
	isConstructed bool
}

// NewEvent creates a new, not-yet-persisted Event. Location and coordinates
// are optional; everything else is required.
func NewEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	eventType EventType,
	description string,
	location string,
	coordinates *kernel.Coordinates,
	createdAt time.Time,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		eventType.Validate(),
		validateEventCreatedAt(createdAt),
		validateOptionalCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return &Event{
		id:            id,
		parcelID:      parcelID,
		eventType:     eventType,
		description:   description,
		location:      location,
		coordinates:   coordinates,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs a persisted Event including its storage-assigned
// sequence. Used by the persistence adapters only.
func RestoreEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	eventType EventType,
	description string,
	location string,
	coordinates *kernel.Coordinates,
	createdAt time.Time,
	sequence int64,
) (*Event, error) {
	event, err := NewEvent(id, parcelID, eventType, description, location, coordinates, createdAt)
	if err != nil {
		return nil, err
	}

	event.sequence = sequence
	return event, nil
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the owning parcel.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Type returns the event's classification.
func (e *Event) Type() EventType {
	return e.eventType
}

// Description returns the human-readable account of the fact.
func (e *Event) Description() string {
	return e.description
}

// Location returns the optional free-text place name, empty when absent.
func (e *Event) Location() string {
	return e.location
}

// Coordinates returns the optional geographic position, nil when absent.
func (e *Event) Coordinates() *kernel.Coordinates {
	return e.coordinates
}

// CreatedAt returns the wall-clock time the fact was recorded.
func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

// Sequence returns the storage-assigned append position, or zero for events
// that have not been persisted yet.
func (e *Event) Sequence() int64 {
	return e.sequence
}

// AssignSequence records the storage-assigned append position after the
// event has been inserted. It may be called once; re-assigning a persisted
// event's position is rejected.
func (e *Event) AssignSequence(sequence int64) error {
	if e.sequence != 0 {
		return errs.NewInvalidOperationError(
			"assign sequence", "event is already persisted")
	}
	if sequence <= 0 {
		return errs.NewValueIsOutOfRangeError("sequence", sequence, 1, int64(math.MaxInt64))
	}

	e.sequence = sequence
	return nil
}

// IsEqual compares two events by their unique identifiers.
func (e *Event) IsEqual(other *Event) bool {
	return other != nil && e.id.IsEqual(other.id)
}

func validateEventCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrEventCreatedAtIsRequired
	}
	return nil
}

func validateOptionalCoordinates(coordinates *kernel.Coordinates) error {
	if coordinates == nil {
		return nil
	}
	return coordinates.Validate()
}
