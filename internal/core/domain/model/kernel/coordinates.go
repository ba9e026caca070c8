package kernel

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when validating a zero-value
// Coordinates instance that bypassed NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is an immutable geographic point in decimal degrees. It is
// attached to parcel events that carry a physical position (courier scans,
// manual location pings) and is the highest-precedence source when resolving
// a parcel's current location.
//
// Example:
//
//	coords, err := kernel.NewCoordinates(39.925533, 32.866287)
//	if err != nil {
//	    // handle out-of-range input
//	}
//	fmt.Println(coords) // Output: (39.925533, 32.866287)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates with the given latitude and longitude.
// Latitude must be within [-90, 90] and longitude within [-180, 180] degrees;
// out-of-range values are rejected with a ValueIsOutOfRangeError.
func NewCoordinates(latitude float64, longitude float64) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coords.setLatitude(latitude),
		coords.setLongitude(longitude),
	); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// IsEqual reports whether two coordinate pairs are exactly equal.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// String renders the pair as "(lat, lng)" with six decimal places.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.latitude, c.longitude)
}

// Validate returns ErrCoordinatesAreNotConstructed for zero-value instances.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	c.longitude = longitude
	return nil
}
