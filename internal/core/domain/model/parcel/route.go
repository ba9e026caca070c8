package parcel

import (
	"fmt"
	"slices"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// NoRouteProgress is the current-city index of a parcel that has not yet
// departed. A parcel with an empty route keeps this index forever and its
// location derives solely from event coordinates.
const NoRouteProgress = -1

// ErrRouteIsNotConstructed is returned when validating a zero-value Route.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError(
	"route must be created via NewRoute or RestoreRoute")

// Route is the planned, ordered sequence of cities a parcel passes through,
// together with a pointer to the city the parcel has most recently reached.
// Route is an immutable value object: Advance returns a new Route rather
// than mutating in place, which keeps the monotonicity of the index a local
// argument instead of a shared-state concern.
type Route struct { //nolint:recvcheck //using for validation
	cities       []string
	currentIndex int
	guard        guard.ConstructorGuard
}

// NewRoute creates a Route over the given cities with no progress yet
// (current index NoRouteProgress). An empty or nil city list is allowed and
// represents a parcel without a planned route. Blank city names are rejected.
func NewRoute(cities []string) (Route, error) {
	for i, city := range cities {
		if city == "" {
			return Route{}, errs.NewValueIsInvalidErrorWithCause(
				"route",
				fmt.Errorf("city at position %d is blank", i),
			)
		}
	}

	return Route{
		cities:       slices.Clone(cities),
		currentIndex: NoRouteProgress,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreRoute reconstructs a Route from persistence, validating that the
// index is within [NoRouteProgress, len(cities)-1] and that an empty route
// carries no progress.
func RestoreRoute(cities []string, currentIndex int) (Route, error) {
	route, err := NewRoute(cities)
	if err != nil {
		return Route{}, err
	}

	if currentIndex < NoRouteProgress || currentIndex >= len(route.cities) {
		return Route{}, errs.NewValueIsOutOfRangeError(
			"currentCityIndex", currentIndex, NoRouteProgress, len(route.cities)-1)
	}

	route.currentIndex = currentIndex
	return route, nil
}

// Cities returns a copy of the planned city sequence.
func (r Route) Cities() []string {
	return slices.Clone(r.cities)
}

// CurrentIndex returns the 0-based index of the most recently reached city,
// or NoRouteProgress if the parcel has not departed.
func (r Route) CurrentIndex() int {
	return r.currentIndex
}

// CurrentCity returns the city at the current index. The second return value
// is false when the parcel has not departed or has no planned route.
func (r Route) CurrentCity() (string, bool) {
	if r.currentIndex < 0 || r.currentIndex >= len(r.cities) {
		return "", false
	}
	return r.cities[r.currentIndex], true
}

// IsEmpty reports whether the route has no planned cities.
func (r Route) IsEmpty() bool {
	return len(r.cities) == 0
}

// Advance returns a Route whose index moved forward by one city, clamped to
// the last index. An empty route never advances. The index never decreases.
func (r Route) Advance() Route {
	if r.IsEmpty() {
		return r
	}

	next := r
	if r.currentIndex < len(r.cities)-1 {
		next.currentIndex = r.currentIndex + 1
	}
	return next
}

// IsEqual reports whether two routes cover the same cities with the same
// progress.
func (r Route) IsEqual(other Route) bool {
	return r.currentIndex == other.currentIndex && slices.Equal(r.cities, other.cities)
}

// Validate returns ErrRouteIsNotConstructed for zero-value instances.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}
