// Package queries contains read-only operations of the CQRS architecture.
// Query handlers read the database directly and never mutate state.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetTrackingQueryIsNotConstructed = errors.New(
		"GetTrackingQuery must be created via one of its constructors",
	)
)

// GetTrackingQuery retrieves the full tracking view of a single parcel,
// addressed either by its internal identifier or by its public tracking
// number. Exactly one of the two selectors is set.
//
// Example:
//
//	query, err := NewGetTrackingQueryByTrackingNumber(trackingNumber)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Parcel %s is %s\n", view.Parcel.TrackingNumber, view.Parcel.Status)
type GetTrackingQuery struct {
	parcelID       *kernel.UUID
	trackingNumber *kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetTrackingQueryByID creates a query addressing a parcel by its internal
// identifier.
func NewGetTrackingQueryByID(parcelID kernel.UUID) (GetTrackingQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		parcelID: &parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewGetTrackingQueryByTrackingNumber creates a query addressing a parcel by
// its public tracking number.
func NewGetTrackingQueryByTrackingNumber(
	trackingNumber kernel.TrackingNumber,
) (GetTrackingQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		trackingNumber: &trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetTrackingQueryIsNotConstructed if validation fails.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// ParcelID returns the identifier selector, nil when addressing by tracking
// number.
func (q GetTrackingQuery) ParcelID() *kernel.UUID {
	return q.parcelID
}

// TrackingNumber returns the tracking number selector, nil when addressing by
// identifier.
func (q GetTrackingQuery) TrackingNumber() *kernel.TrackingNumber {
	return q.trackingNumber
}

// cacheKey identifies the query result in the tracking view cache.
func (q GetTrackingQuery) cacheKey() string {
	if q.parcelID != nil {
		return "tracking:id:" + q.parcelID.String()
	}
	return "tracking:tn:" + q.trackingNumber.String()
}

// GetTrackingQueryResponse is the complete tracking view of one parcel: its
// current summary, the full event history, and the best known location.
// The struct is JSON-serializable so it can live in the view cache as-is.
type GetTrackingQueryResponse struct {
	Parcel          ParcelSummary    `json:"parcel"`
	Events          []EventSummary   `json:"events"`
	CurrentLocation *LocationSummary `json:"currentLocation,omitempty"`
}

// ParcelSummary is the current state of a parcel as shown to tracking
// consumers.
type ParcelSummary struct {
	ID                string     `json:"id"`
	TrackingNumber    string     `json:"trackingNumber"`
	OrderID           string     `json:"orderId"`
	CourierID         *string    `json:"courierId,omitempty"`
	Status            string     `json:"status"`
	RouteCities       []string   `json:"routeCities"`
	CurrentCityIndex  int        `json:"currentCityIndex"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// EventSummary is one entry of a parcel's event history.
type EventSummary struct {
	Sequence    int64     `json:"sequence"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LocationSummary is the resolved current location of a parcel. Either the
// coordinate pair with an address, or a route city, depending on what the
// event history provides.
type LocationSummary struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
}
