// Package ports defines the persistence and integration contracts of the
// parcel tracking core. The interfaces decouple the application layer from
// the storage and transport adapters.
package ports

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ErrTrackingNumberTaken is returned by ParcelRepository.Add when the
// generated tracking number already belongs to another parcel.
var ErrTrackingNumberTaken = errors.New("tracking number is already taken")

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage. Returns
	// ErrTrackingNumberTaken when the tracking number is already in use.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel, but only when the
	// stored status still equals expectedStatus. When another writer got
	// there first, an errs.ConcurrentModificationError is returned and no
	// change is made.
	Update(ctx context.Context, aggregate *parcel.Parcel, expectedStatus parcel.Status) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetAllOverdue retrieves parcels whose estimated delivery time has
	// passed as of the given instant and that are not in a terminal status.
	GetAllOverdue(ctx context.Context, asOf time.Time) ([]*parcel.Parcel, error)
}
