package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// EventType classifies a parcel event. Most types mirror a status value (the
// event recorded when the parcel entered that status); the remainder are
// informational sub-events that carry no status change.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	EventTypeUnknown EventType = iota

	// EventTypeCreated through EventTypeReturned mirror the corresponding
	// status transitions.
	EventTypeCreated
	EventTypeAssigned
	EventTypePickedUp
	EventTypeInTransit
	EventTypeOutForDelivery
	EventTypeDelivered
	EventTypeCancelled
	EventTypeReturned

	// EventTypeLocationUpdate records a manual location ping without a
	// status change.
	EventTypeLocationUpdate

	// EventTypeDeliveryDelayed flags a parcel past its estimated delivery
	// time that has not reached a terminal status.
	EventTypeDeliveryDelayed
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTypeUnknown:         "UNKNOWN",
		EventTypeCreated:         "CREATED",
		EventTypeAssigned:        "ASSIGNED",
		EventTypePickedUp:        "PICKED_UP",
		EventTypeInTransit:       "IN_TRANSIT",
		EventTypeOutForDelivery:  "OUT_FOR_DELIVERY",
		EventTypeDelivered:       "DELIVERED",
		EventTypeCancelled:       "CANCELLED",
		EventTypeReturned:        "RETURNED",
		EventTypeLocationUpdate:  "LOCATION_UPDATE",
		EventTypeDeliveryDelayed: "DELIVERY_DELAYED",
	}
}

// EventTypeForStatus maps a parcel status to its mirroring event type.
func EventTypeForStatus(s Status) (EventType, error) {
	//nolint:exhaustive // Unknown falls through to the error below
	mapping := map[Status]EventType{
		Created:        EventTypeCreated,
		Assigned:       EventTypeAssigned,
		PickedUp:       EventTypePickedUp,
		InTransit:      EventTypeInTransit,
		OutForDelivery: EventTypeOutForDelivery,
		Delivered:      EventTypeDelivered,
		Cancelled:      EventTypeCancelled,
		Returned:       EventTypeReturned,
	}

	eventType, ok := mapping[s]
	if !ok {
		return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s has no mirroring event type", s),
		)
	}
	return eventType, nil
}

// Validate checks that the EventType holds one of the defined values.
func (t EventType) Validate() error {
	if t == EventTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventType",
			fmt.Errorf("%d is not a valid event type", t),
		)
	}
	if _, ok := getEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventType",
			fmt.Errorf("%d is not a valid event type", t),
		)
	}
	return nil
}

// String returns the wire-format name of the event type. Implements
// fmt.Stringer.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
