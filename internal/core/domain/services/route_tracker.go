package services

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// CurrentLocation describes where a parcel currently is, as precisely as the
// available data allows. Coordinates and Address are set when a logged event
// reported a position. City is set when only the planned route is known.
type CurrentLocation struct {
	Coordinates *kernel.Coordinates
	Address     string
	City        string
}

// RouteTracker resolves a parcel's current location, preferring reported
// event positions over the planned route.
type RouteTracker struct{}

func NewRouteTracker() *RouteTracker {
	return &RouteTracker{}
}

// CurrentLocation returns the best known location of the parcel.
//
// The most recent event carrying coordinates wins. When no event reported a
// position, the city at the route's current index is used. A nil result means
// the location is unknown, which is a valid state for a parcel that has not
// been picked up yet.
//
// Events must be ordered by sequence ascending, as returned by the event log.
func (t *RouteTracker) CurrentLocation(p *parcel.Parcel, events []*parcel.Event) (*CurrentLocation, error) {
	if p == nil {
		return nil, errs.NewValueIsRequiredError("p")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for i := len(events) - 1; i >= 0; i-- {
		event := events[i]
		if event == nil {
			continue
		}
		if coordinates := event.Coordinates(); coordinates != nil {
			return &CurrentLocation{
				Coordinates: coordinates,
				Address:     event.Location(),
			}, nil
		}
	}

	if city, ok := p.Route().CurrentCity(); ok {
		return &CurrentLocation{City: city}, nil
	}

	return nil, nil
}
