package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel. It implements a state
// machine with a closed transition table so that every allowed move is
// defined in exactly one place.
//
// State transitions (forward progression plus two escape hatches):
//
//	Created ────> Assigned ────> PickedUp ────> InTransit ────> OutForDelivery ────> Delivered
//	    │             │              │               │                  │
//	    └─> Cancelled └─> Cancelled  └─> Returned    └─> Returned       └─> Returned
//
// Delivered, Cancelled and Returned are terminal: no outgoing transitions.
// Everything else, including same-state requests, is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a parcel is registered for shipping.
	Created

	// Assigned indicates a courier has been assigned to the parcel.
	Assigned

	// PickedUp indicates the courier has collected the parcel.
	PickedUp

	// InTransit indicates the parcel is moving along its planned route.
	InTransit

	// OutForDelivery indicates the parcel is on the final leg to the recipient.
	OutForDelivery

	// Delivered is the successful terminal status. Entering it sets the
	// parcel's actual delivery timestamp.
	Delivered

	// Cancelled is the terminal status for parcels cancelled before pickup.
	Cancelled

	// Returned is the terminal status for parcels sent back after pickup.
	Returned
)

// getStatusStrings returns the wire-format names of all statuses, including
// the invalid Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		Assigned:       "ASSIGNED",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Returned:       "RETURNED",
	}
}

// getValidStatusStrings returns only the statuses a parcel may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "CREATED",
		Assigned:       "ASSIGNED",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Returned:       "RETURNED",
	}
}

// getAllowedTransitions is the single source of truth for the state machine.
// A status missing from the map (the terminal ones) has no outgoing
// transitions.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:        {Assigned, Cancelled},
		Assigned:       {PickedUp, Cancelled},
		PickedUp:       {InTransit, Returned},
		InTransit:      {OutForDelivery, Returned},
		OutForDelivery: {Delivered, Returned},
	}
}

// StatusFromString parses a wire-format status name ("CREATED", "IN_TRANSIT",
// ...) into a Status. Unrecognized names are rejected with a
// ValueIsInvalidError.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status holds one of the eight valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status, or "UNKNOWN" for any
// invalid value. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Terminal parcels are frozen: every further transition request is rejected.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Returned
}

// MovesParcel reports whether entering the status implies physical movement
// along the route. Movement statuses advance the route's current city index.
func (s Status) MovesParcel() bool {
	switch s {
	case PickedUp, InTransit, OutForDelivery, Delivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the (s, requested) pair appears in the
// transition table. It performs no validation of s or requested themselves.
func (s Status) CanTransitionTo(requested Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested transition against the table and
// returns the new status on success. Every rejected pair, including
// same-state requests and any move out of a terminal status, yields an
// InvalidTransitionError carrying both statuses for diagnostics.
//
// The machine is a pure function of (s, requested); it performs no I/O.
// Side effects of an accepted transition (delivery timestamp, route
// advancement) are the caller's responsibility.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(requested) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), requested.String())
	}

	return requested, nil
}
