// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The planned route is stored as a JSON array next to the progress index so
// the whole aggregate lives in a single row.
type ParcelDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string     `gorm:"type:varchar(20);uniqueIndex"`
	OrderID           uuid.UUID  `gorm:"type:uuid;index"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`
	Status            int        `gorm:"index"`
	RouteCities       []string   `gorm:"serializer:json;type:jsonb"`
	CurrentCityIndex  int
	EstimatedDelivery *time.Time `gorm:"index"`
	ActualDelivery    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	route := aggregate.Route()
	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		OrderID:           aggregate.OrderID().Bytes(),
		CourierID:         courierID,
		Status:            int(aggregate.Status()),
		RouteCities:       route.Cities(),
		CurrentCityIndex:  route.CurrentIndex(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including route progress using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	route, err := parcel.RestoreRoute(dto.RouteCities, dto.CurrentCityIndex)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		trackingNumber,
		orderID,
		courierID,
		parcel.Status(dto.Status),
		route,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
