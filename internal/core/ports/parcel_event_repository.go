package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelEventRepository defines the persistence contract for the append-only
// parcel event log. Events are never updated or deleted.
type ParcelEventRepository interface {
	// Add appends an event to the log. Storage assigns the monotonically
	// increasing sequence; the stored value is written back into the event.
	Add(ctx context.Context, event *parcel.Event) error

	// ListByParcel returns all events of a parcel ordered by sequence
	// ascending. An empty slice is returned for a parcel without events.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error)

	// HasEventOfType reports whether the parcel already has at least one
	// event of the given type.
	HasEventOfType(ctx context.Context, parcelID kernel.UUID, eventType parcel.EventType) (bool, error)
}
