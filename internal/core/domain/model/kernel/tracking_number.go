package kernel

import (
	"encoding/base32"
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"

	"github.com/google/uuid"
)

const (
	// trackingNumberPrefix marks externally visible parcel identifiers.
	trackingNumberPrefix = "TRK-"
	// trackingNumberRandomLen is the number of encoded characters after the prefix.
	trackingNumberRandomLen = 16
)

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value
// TrackingNumber that bypassed the constructors.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or TrackingNumberFromString")

// trackingNumberEncoding is unpadded uppercase base32: URL-safe and readable
// over the phone.
var trackingNumberEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// TrackingNumber is the external-facing identifier of a parcel, immutable
// once assigned. Candidates are random; global uniqueness is enforced by the
// store, and a collision is handled by generating a fresh candidate rather
// than surfacing an error to the caller.
//
// Format: "TRK-" followed by 16 base32 characters, e.g. "TRK-MFRGG2LTMVZXI2LO".
type TrackingNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber generates a new random tracking number candidate.
func NewTrackingNumber() TrackingNumber {
	raw := uuid.New()
	encoded := trackingNumberEncoding.EncodeToString(raw[:])[:trackingNumberRandomLen]

	return TrackingNumber{
		value: trackingNumberPrefix + encoded,
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingNumberFromString reconstructs a TrackingNumber from its string
// form, typically from persistence or an API path parameter. The prefix,
// length and character set are validated.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	suffix, hasPrefix := strings.CutPrefix(s, trackingNumberPrefix)
	if !hasPrefix || len(suffix) != trackingNumberRandomLen {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q does not match the %s<16 base32 chars> format", s, trackingNumberPrefix),
		)
	}

	for _, r := range suffix {
		if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", r) {
			return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"trackingNumber",
				fmt.Errorf("%q contains character %q outside the base32 alphabet", s, r),
			)
		}
	}

	return TrackingNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the full tracking number including the prefix.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual reports whether two tracking numbers are the same.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingNumberIsNotConstructed for zero-value instances.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}
