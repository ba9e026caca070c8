package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/generated/servers"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler       commands.CreateParcelCommandHandler
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler
	assignCourierHandler      commands.AssignCourierCommandHandler
	recordLocationHandler     commands.RecordLocationCommandHandler

	// Query handlers
	getTrackingHandler queries.GetTrackingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	recordLocationHandler commands.RecordLocationCommandHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:       createParcelHandler,
		updateParcelStatusHandler: updateParcelStatusHandler,
		assignCourierHandler:      assignCourierHandler,
		recordLocationHandler:     recordLocationHandler,
		getTrackingHandler:        getTrackingHandler,
	}
}

// CreateParcel handles POST /api/v1/parcels - registers a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var newParcel servers.NewParcel
	if err := ctx.Bind(&newParcel); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(newParcel.OrderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var courierID *kernel.UUID
	if newParcel.CourierId != nil {
		id, courierErr := kernel.UUIDFromString(newParcel.CourierId.String())
		if courierErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid courier id: " + courierErr.Error(),
			})
		}
		courierID = &id
	}

	var routeCities []string
	if newParcel.RouteCities != nil {
		routeCities = *newParcel.RouteCities
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), orderID, courierID, routeCities, newParcel.EstimatedDelivery,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel data: " + err.Error(),
		})
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create parcel")
	}

	return ctx.JSON(http.StatusCreated, parcelResponse(created))
}

// UpdateParcelStatus handles POST /api/v1/parcels/{parcelId}/status - moves a
// parcel through its lifecycle.
func (s *Server) UpdateParcelStatus(ctx echo.Context, parcelId openapi_types.UUID) error {
	var statusUpdate servers.StatusUpdate
	if err := ctx.Bind(&statusUpdate); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id: " + err.Error(),
		})
	}

	status, err := parcel.StatusFromString(statusUpdate.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	coordinates, err := optionalCoordinates(statusUpdate.Latitude, statusUpdate.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid coordinates: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		parcelID, status,
		stringValue(statusUpdate.Description), stringValue(statusUpdate.Location),
		coordinates,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	updated, _, err := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update parcel status")
	}

	return ctx.JSON(http.StatusOK, parcelResponse(updated))
}

// AssignCourier handles POST /api/v1/parcels/{parcelId}/courier - attaches a
// courier to a parcel that has not been picked up yet.
func (s *Server) AssignCourier(ctx echo.Context, parcelId openapi_types.UUID) error {
	var assignment servers.CourierAssignment
	if err := ctx.Bind(&assignment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id: " + err.Error(),
		})
	}

	courierID, err := kernel.UUIDFromString(assignment.CourierId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier id: " + err.Error(),
		})
	}

	cmd, err := commands.NewAssignCourierCommand(parcelID, courierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment: " + err.Error(),
		})
	}

	updated, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to assign courier")
	}

	return ctx.JSON(http.StatusOK, parcelResponse(updated))
}

// RecordLocation handles POST /api/v1/parcels/{parcelId}/location - appends a
// position report to a parcel's event history.
func (s *Server) RecordLocation(ctx echo.Context, parcelId openapi_types.UUID) error {
	var report servers.LocationReport
	if err := ctx.Bind(&report); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id: " + err.Error(),
		})
	}

	coordinates, err := optionalCoordinates(report.Latitude, report.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid coordinates: " + err.Error(),
		})
	}

	cmd, err := commands.NewRecordLocationCommand(parcelID, stringValue(report.Location), coordinates)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location report: " + err.Error(),
		})
	}

	event, err := s.recordLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to record location")
	}

	return ctx.JSON(http.StatusCreated, eventResponse(event))
}

// GetTracking handles GET /api/v1/tracking - returns the tracking view of one
// parcel, addressed either by id or by tracking number.
func (s *Server) GetTracking(ctx echo.Context, params servers.GetTrackingParams) error {
	query, err := trackingQueryFromParams(params)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking request: " + err.Error(),
		})
	}

	view, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to load tracking view")
	}

	response, err := trackingViewResponse(view)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load tracking view",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// errorResponse maps application errors to HTTP statuses: unknown objects to
// 404, lost conditional updates to 409, rejected lifecycle operations to 422,
// everything else to 500.
func (s *Server) errorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrInvalidOperation):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func trackingQueryFromParams(params servers.GetTrackingParams) (queries.GetTrackingQuery, error) {
	if params.ParcelId != nil {
		parcelID, err := kernel.UUIDFromString(params.ParcelId.String())
		if err != nil {
			return queries.GetTrackingQuery{}, err
		}
		return queries.NewGetTrackingQueryByID(parcelID)
	}

	if params.TrackingNumber != nil {
		trackingNumber, err := kernel.TrackingNumberFromString(*params.TrackingNumber)
		if err != nil {
			return queries.GetTrackingQuery{}, err
		}
		return queries.NewGetTrackingQueryByTrackingNumber(trackingNumber)
	}

	return queries.GetTrackingQuery{}, errs.NewValueIsRequiredError("parcelId or trackingNumber")
}

func parcelResponse(aggregate *parcel.Parcel) servers.Parcel {
	response := servers.Parcel{
		Id:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		OrderId:           aggregate.OrderID().Bytes(),
		Status:            aggregate.Status().String(),
		RouteCities:       aggregate.Route().Cities(),
		CurrentCityIndex:  aggregate.Route().CurrentIndex(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}

	if courier := aggregate.Courier(); courier != nil {
		courierID := courier.Bytes()
		response.CourierId = &courierID
	}

	return response
}

func eventResponse(event *parcel.Event) servers.ParcelEvent {
	response := servers.ParcelEvent{
		Sequence:    event.Sequence(),
		Type:        event.Type().String(),
		Description: event.Description(),
		Location:    event.Location(),
		CreatedAt:   event.CreatedAt(),
	}

	if coordinates := event.Coordinates(); coordinates != nil {
		latitude := coordinates.Latitude()
		longitude := coordinates.Longitude()
		response.Latitude = &latitude
		response.Longitude = &longitude
	}

	return response
}

func trackingViewResponse(view *queries.GetTrackingQueryResponse) (servers.TrackingView, error) {
	parcelID, err := uuid.Parse(view.Parcel.ID)
	if err != nil {
		return servers.TrackingView{}, err
	}

	orderID, err := uuid.Parse(view.Parcel.OrderID)
	if err != nil {
		return servers.TrackingView{}, err
	}

	summary := servers.Parcel{
		Id:                parcelID,
		TrackingNumber:    view.Parcel.TrackingNumber,
		OrderId:           orderID,
		Status:            view.Parcel.Status,
		RouteCities:       view.Parcel.RouteCities,
		CurrentCityIndex:  view.Parcel.CurrentCityIndex,
		EstimatedDelivery: view.Parcel.EstimatedDelivery,
		ActualDelivery:    view.Parcel.ActualDelivery,
		CreatedAt:         view.Parcel.CreatedAt,
		UpdatedAt:         view.Parcel.UpdatedAt,
	}

	if view.Parcel.CourierID != nil {
		courierID, courierErr := uuid.Parse(*view.Parcel.CourierID)
		if courierErr != nil {
			return servers.TrackingView{}, courierErr
		}
		summary.CourierId = &courierID
	}

	events := make([]servers.ParcelEvent, len(view.Events))
	for i, event := range view.Events {
		events[i] = servers.ParcelEvent{
			Sequence:    event.Sequence,
			Type:        event.Type,
			Description: event.Description,
			Location:    event.Location,
			Latitude:    event.Latitude,
			Longitude:   event.Longitude,
			CreatedAt:   event.CreatedAt,
		}
	}

	response := servers.TrackingView{
		Parcel: summary,
		Events: events,
	}

	if view.CurrentLocation != nil {
		response.CurrentLocation = &servers.CurrentLocation{
			Latitude:  view.CurrentLocation.Latitude,
			Longitude: view.CurrentLocation.Longitude,
			Address:   view.CurrentLocation.Address,
			City:      view.CurrentLocation.City,
		}
	}

	return response, nil
}

func optionalCoordinates(latitude *float64, longitude *float64) (*kernel.Coordinates, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil || longitude == nil {
		return nil, errs.NewValueIsRequiredError("latitude and longitude")
	}

	coordinates, err := kernel.NewCoordinates(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &coordinates, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
