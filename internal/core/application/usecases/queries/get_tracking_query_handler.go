package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// GetTrackingQueryHandler builds the tracking view of a parcel straight from
// the database: the parcel row, its full event history ordered by sequence,
// and the resolved current location.
//
// When a TrackingViewCache is configured the handler reads through it. Cache
// failures are logged and the database is consulted as if there were no
// cache; staleness is bounded by the cache TTL.
//
// Example:
//
//	handler := NewGetTrackingQueryHandler(db, cache, logger)
//	query, _ := NewGetTrackingQueryByID(parcelID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d events for %s\n", len(view.Events), view.Parcel.TrackingNumber)
type GetTrackingQueryHandler struct {
	db      *gorm.DB
	cache   TrackingViewCache
	tracker *services.RouteTracker
	logger  *slog.Logger
}

// NewGetTrackingQueryHandler creates a handler for tracking view queries.
// The cache may be nil to read from the database every time.
func NewGetTrackingQueryHandler(
	db *gorm.DB, cache TrackingViewCache, logger *slog.Logger,
) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{
		db:      db,
		cache:   cache,
		tracker: services.NewRouteTracker(),
		logger:  logger,
	}
}

// Handle executes the tracking query.
// Returns errs.ObjectNotFoundError when no parcel matches the selector.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context, query GetTrackingQuery,
) (*GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, query.cacheKey())
		if err != nil {
			h.logger.WarnContext(ctx, "tracking view cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	aggregate, err := h.loadParcel(ctx, query)
	if err != nil {
		return nil, err
	}

	events, err := h.loadEvents(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	location, err := h.tracker.CurrentLocation(aggregate, events)
	if err != nil {
		return nil, err
	}

	view := buildTrackingView(aggregate, events, location)

	if h.cache != nil {
		if err = h.cache.Set(ctx, query.cacheKey(), view); err != nil {
			h.logger.WarnContext(ctx, "tracking view cache write failed", "error", err)
		}
	}

	return view, nil
}

func (h GetTrackingQueryHandler) loadParcel(
	ctx context.Context, query GetTrackingQuery,
) (*parcel.Parcel, error) {
	const baseSelect = `
		SELECT
			id,
			tracking_number,
			order_id,
			courier_id,
			status,
			route_cities,
			current_city_index,
			estimated_delivery,
			actual_delivery,
			created_at,
			updated_at
		FROM parcels
	`

	var row *sql.Row
	var selector string
	if id := query.ParcelID(); id != nil {
		selector = id.String()
		row = h.db.WithContext(ctx).Raw(baseSelect+"WHERE id = ?", id.Bytes()).Row()
	} else {
		selector = query.TrackingNumber().String()
		row = h.db.WithContext(ctx).
			Raw(baseSelect+"WHERE tracking_number = ?", selector).Row()
	}

	var (
		id                uuid.UUID
		trackingNumber    string
		orderID           uuid.UUID
		courierID         uuid.NullUUID
		status            int
		routeCities       []byte
		currentCityIndex  int
		estimatedDelivery *time.Time
		actualDelivery    *time.Time
		createdAt         time.Time
		updatedAt         time.Time
	)
	err := row.Scan(
		&id,
		&trackingNumber,
		&orderID,
		&courierID,
		&status,
		&routeCities,
		&currentCityIndex,
		&estimatedDelivery,
		&actualDelivery,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("parcel", selector)
	}
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return nil, err
	}

	order, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}

	var courier *kernel.UUID
	if courierID.Valid {
		c, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &c
	}

	var cities []string
	if len(routeCities) > 0 {
		if err = json.Unmarshal(routeCities, &cities); err != nil {
			return nil, err
		}
	}

	route, err := parcel.RestoreRoute(cities, currentCityIndex)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		parcelID,
		tn,
		order,
		courier,
		parcel.Status(status),
		route,
		estimatedDelivery,
		actualDelivery,
		createdAt,
		updatedAt,
	)
}

func (h GetTrackingQueryHandler) loadEvents(
	ctx context.Context, parcelID kernel.UUID,
) ([]*parcel.Event, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sequence,
			id,
			event_type,
			description,
			location,
			latitude,
			longitude,
			created_at
		FROM parcel_events
		WHERE parcel_id = ?
		ORDER BY sequence
	`, parcelID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*parcel.Event, 0)
	for rows.Next() {
		var (
			sequence            int64
			id                  uuid.UUID
			eventType           int
			description         string
			location            string
			latitude, longitude *float64
			createdAt           time.Time
		)
		err = rows.Scan(
			&sequence,
			&id,
			&eventType,
			&description,
			&location,
			&latitude,
			&longitude,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var coordinates *kernel.Coordinates
		if latitude != nil && longitude != nil {
			c, coordErr := kernel.NewCoordinates(*latitude, *longitude)
			if coordErr != nil {
				return nil, coordErr
			}
			coordinates = &c
		}

		event, eventErr := parcel.RestoreEvent(
			eventID,
			parcelID,
			parcel.EventType(eventType),
			description,
			location,
			coordinates,
			createdAt,
			sequence,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// buildTrackingView maps the domain objects onto the serializable view.
func buildTrackingView(
	aggregate *parcel.Parcel,
	events []*parcel.Event,
	location *services.CurrentLocation,
) *GetTrackingQueryResponse {
	var courierID *string
	if courier := aggregate.Courier(); courier != nil {
		s := courier.String()
		courierID = &s
	}

	route := aggregate.Route()
	summary := ParcelSummary{
		ID:                aggregate.ID().String(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		OrderID:           aggregate.OrderID().String(),
		CourierID:         courierID,
		Status:            aggregate.Status().String(),
		RouteCities:       route.Cities(),
		CurrentCityIndex:  route.CurrentIndex(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}

	history := make([]EventSummary, 0, len(events))
	for _, event := range events {
		entry := EventSummary{
			Sequence:    event.Sequence(),
			Type:        event.Type().String(),
			Description: event.Description(),
			Location:    event.Location(),
			CreatedAt:   event.CreatedAt(),
		}
		if coordinates := event.Coordinates(); coordinates != nil {
			lat := coordinates.Latitude()
			lon := coordinates.Longitude()
			entry.Latitude = &lat
			entry.Longitude = &lon
		}
		history = append(history, entry)
	}

	var current *LocationSummary
	if location != nil {
		current = &LocationSummary{
			Address: location.Address,
			City:    location.City,
		}
		if location.Coordinates != nil {
			lat := location.Coordinates.Latitude()
			lon := location.Coordinates.Longitude()
			current.Latitude = &lat
			current.Longitude = &lon
		}
	}

	return &GetTrackingQueryResponse{
		Parcel:          summary,
		Events:          history,
		CurrentLocation: current,
	}
}
