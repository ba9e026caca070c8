package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
)

// OrderDirectory answers existence questions about orders, which live in a
// separate service. Implementations talk to that service over HTTP.
type OrderDirectory interface {
	// VerifyOrderExists returns nil when the order is known, an
	// errs.ObjectNotFoundError when it is not, and any other error when
	// the directory could not be reached.
	VerifyOrderExists(ctx context.Context, orderID kernel.UUID) error
}

// CourierDirectory answers existence questions about couriers.
type CourierDirectory interface {
	// VerifyCourierExists returns nil when the courier is known, an
	// errs.ObjectNotFoundError when it is not, and any other error when
	// the directory could not be reached.
	VerifyCourierExists(ctx context.Context, courierID kernel.UUID) error
}
