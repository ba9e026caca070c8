package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel represents one shipment, tracked from creation to a terminal
// delivery, cancellation or return. It is the aggregate root; its Event
// children are owned by the event log and referenced here only by ID.
//
// Parcel maintains these invariants:
//   - actualDelivery is set if and only if status is Delivered, and it is
//     set exactly once, on the transition into Delivered
//   - the route's current city index only increases over the parcel's
//     lifetime and never exceeds the last route position
//   - the tracking number is immutable once assigned
//   - terminal statuses freeze all further transitions
//
// Parcels are never physically deleted.
type Parcel struct {
	// id is the stable internal identity of the parcel
	id kernel.UUID

	// trackingNumber is the external-facing unique identifier
	trackingNumber kernel.TrackingNumber

	// orderID references the owning order
	orderID kernel.UUID

	// courierID is the assigned courier (nil if unassigned)
	courierID *kernel.UUID

	// status is the current state in the delivery lifecycle
	status Status

	// route is the planned city sequence with progress pointer
	route Route

	// estimatedDelivery is the optional promised delivery time
	estimatedDelivery *time.Time

	// actualDelivery is set exactly once, on the Delivered transition
	actualDelivery *time.Time

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a parcel in Created status with no route progress.
// The tracking number is a candidate at this point; uniqueness is enforced
// by the store on insert.
func NewParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	orderID kernel.UUID,
	route Route,
	estimatedDelivery *time.Time,
	now time.Time,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingNumber(trackingNumber),
		parcel.setOrderID(orderID),
		parcel.setRoute(route),
	); err != nil {
		return nil, err
	}

	parcel.estimatedDelivery = estimatedDelivery
	return parcel, nil
}

// RestoreParcel reconstructs a parcel from persistence, re-validating the
// cross-field invariants (delivery timestamp vs. status). Used by the
// persistence adapters only.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	orderID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	route Route,
	estimatedDelivery *time.Time,
	actualDelivery *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	parcel, err := NewParcel(id, trackingNumber, orderID, route, estimatedDelivery, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		status.Validate(),
		validateDeliveryConsistency(status, actualDelivery),
		validateOptionalCourier(courierID),
	); err != nil {
		return nil, err
	}

	parcel.courierID = courierID
	parcel.status = status
	parcel.actualDelivery = actualDelivery
	parcel.updatedAt = updatedAt
	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's internal identity.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the external-facing identifier.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

// OrderID returns the owning order's identifier.
func (p *Parcel) OrderID() kernel.UUID {
	return p.orderID
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (p *Parcel) Courier() *kernel.UUID {
	return p.courierID
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Route returns the planned route with its progress pointer.
func (p *Parcel) Route() Route {
	return p.route
}

// EstimatedDelivery returns the promised delivery time, nil when absent.
func (p *Parcel) EstimatedDelivery() *time.Time {
	return p.estimatedDelivery
}

// ActualDelivery returns the delivery timestamp, non-nil exactly when the
// parcel is Delivered.
func (p *Parcel) ActualDelivery() *time.Time {
	return p.actualDelivery
}

// CreatedAt returns the creation time of the parcel.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the time of the last accepted mutation.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// TransitionTo applies a validated status transition and its aggregate-local
// side effects: the actual delivery timestamp on the Delivered transition,
// and one route step (clamped to the last city) for every movement status.
//
// Rejections come straight from the state machine as InvalidTransitionError;
// on rejection the parcel is left untouched.
func (p *Parcel) TransitionTo(requested Status, now time.Time) error {
	newStatus, err := p.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	p.status = newStatus
	if newStatus == Delivered {
		deliveredAt := now
		p.actualDelivery = &deliveredAt
	}
	if newStatus.MovesParcel() {
		p.route = p.route.Advance()
	}
	p.updatedAt = now
	return nil
}

// AssignCourier records the courier responsible for the parcel. Assignment
// and reassignment are only allowed before pickup, while the status is
// Created or Assigned; afterwards the operation is rejected with an
// InvalidOperationError. Recording the courier does not by itself change the
// status — that is a separate ASSIGNED transition.
func (p *Parcel) AssignCourier(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if p.status != Created && p.status != Assigned {
		return errs.NewInvalidOperationError(
			"assign courier",
			fmt.Sprintf("parcel status is %s", p.status),
		)
	}

	p.courierID = &courierID
	p.updatedAt = now
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Parcel) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	p.route = route
	return nil
}

func validateDeliveryConsistency(status Status, actualDelivery *time.Time) error {
	if status == Delivered && actualDelivery == nil {
		return errs.NewValueIsRequiredError("actualDelivery for a delivered parcel")
	}
	if status != Delivered && actualDelivery != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"actualDelivery",
			fmt.Errorf("must be unset while status is %s", status),
		)
	}
	return nil
}

func validateOptionalCourier(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	return courierID.Validate()
}
