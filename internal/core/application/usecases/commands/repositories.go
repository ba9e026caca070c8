// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ParcelEventRepoFactory provides access to the event log repository within a transaction.
	ParcelEventRepoFactory interface {
		ParcelEventRepository() ports.ParcelEventRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	// Used when commands do not touch the event log.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// EventUoW manages transactions for event-log-only operations.
	EventUoW interface {
		TxManager
		ParcelEventRepoFactory
	}

	// EventUoWFactory creates new event log unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}

	// UoW manages transactions spanning the parcel store and the event log.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   parcelRepo := uow.ParcelRepository()
	//   eventRepo := uow.ParcelEventRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ParcelRepoFactory
		ParcelEventRepoFactory
	}

	// UoWFactory creates new unit of work instances for operations that
	// touch both the parcel store and the event log.
	UoWFactory interface {
		Create() UoW
	}
)
