// Package http exposes the booking, routing, tracking and handling report
// operations over a JSON API. It coordinates between HTTP handlers and
// application use cases; all domain decisions stay behind the command and
// query handlers.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
)

// Server handles the HTTP surface of the tracking system.
type Server struct {
	// Command handlers
	bookCargoHandler       commands.BookCargoCommandHandler
	assignRouteHandler     commands.AssignRouteToCargoCommandHandler
	specifyNewRouteHandler commands.SpecifyNewRouteCommandHandler
	registerEventHandler   commands.RegisterHandlingEventCommandHandler

	// Query handlers
	trackCargoHandler     queries.TrackCargoQueryHandler
	possibleRoutesHandler queries.RequestPossibleRoutesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	bookCargoHandler commands.BookCargoCommandHandler,
	assignRouteHandler commands.AssignRouteToCargoCommandHandler,
	specifyNewRouteHandler commands.SpecifyNewRouteCommandHandler,
	registerEventHandler commands.RegisterHandlingEventCommandHandler,
	trackCargoHandler queries.TrackCargoQueryHandler,
	possibleRoutesHandler queries.RequestPossibleRoutesQueryHandler,
) *Server {
	return &Server{
		bookCargoHandler:       bookCargoHandler,
		assignRouteHandler:     assignRouteHandler,
		specifyNewRouteHandler: specifyNewRouteHandler,
		registerEventHandler:   registerEventHandler,
		trackCargoHandler:      trackCargoHandler,
		possibleRoutesHandler:  possibleRoutesHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/cargos", s.BookCargo)
	api.GET("/cargos/:trackingId", s.TrackCargo)
	api.GET("/cargos/:trackingId/routes", s.RequestPossibleRoutes)
	api.POST("/cargos/:trackingId/itinerary", s.AssignItinerary)
	api.POST("/cargos/:trackingId/route-specification", s.SpecifyNewRoute)
	api.POST("/handling-reports", s.SubmitHandlingReport)
}

// BookCargo handles POST /api/v1/cargos - books a new cargo.
func (s *Server) BookCargo(ctx echo.Context) error {
	var request BookCargoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := request.Validate(); err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	trackingID := kernel.GenerateTrackingID()
	if request.TrackingID != "" {
		var err error
		trackingID, err = kernel.NewTrackingID(request.TrackingID)
		if err != nil {
			return badRequest(ctx, "Invalid tracking ID: "+err.Error())
		}
	}
	origin, err := kernel.NewUnLocode(request.Origin)
	if err != nil {
		return badRequest(ctx, "Invalid origin: "+err.Error())
	}
	destination, err := kernel.NewUnLocode(request.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	cmd, err := commands.NewBookCargoCommand(trackingID, origin, destination, request.ArrivalDeadline)
	if err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	if err := s.bookCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BookCargoResponse{TrackingID: trackingID.String()})
}

// TrackCargo handles GET /api/v1/cargos/:trackingId - returns the public
// tracking view.
func (s *Server) TrackCargo(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID: "+err.Error())
	}

	query, err := queries.NewTrackCargoQuery(trackingID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking request: "+err.Error())
	}

	view, err := s.trackCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTrackCargoResponse(view))
}

// RequestPossibleRoutes handles GET /api/v1/cargos/:trackingId/routes -
// returns itinerary candidates for the cargo's route specification.
func (s *Server) RequestPossibleRoutes(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID: "+err.Error())
	}

	query, err := queries.NewRequestPossibleRoutesQuery(trackingID)
	if err != nil {
		return badRequest(ctx, "Invalid route request: "+err.Error())
	}

	response, err := s.possibleRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	candidates := make([]RouteCandidateResponse, len(response.Routes))
	for i, route := range response.Routes {
		legs := make([]LegResponse, len(route.Legs))
		for j, leg := range route.Legs {
			legs[j] = LegResponse(leg)
		}
		candidates[i] = RouteCandidateResponse{Legs: legs}
	}

	return ctx.JSON(http.StatusOK, candidates)
}

// AssignItinerary handles POST /api/v1/cargos/:trackingId/itinerary -
// attaches a chosen route to the cargo.
func (s *Server) AssignItinerary(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID: "+err.Error())
	}

	var request AssignItineraryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := request.Validate(); err != nil {
		return badRequest(ctx, "Invalid itinerary data: "+err.Error())
	}

	itinerary, err := toItinerary(request.Legs)
	if err != nil {
		return badRequest(ctx, "Invalid itinerary data: "+err.Error())
	}

	cmd, err := commands.NewAssignRouteToCargoCommand(trackingID, itinerary)
	if err != nil {
		return badRequest(ctx, "Invalid itinerary data: "+err.Error())
	}

	if err := s.assignRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SpecifyNewRoute handles POST /api/v1/cargos/:trackingId/route-specification
// - replaces the cargo's route specification.
func (s *Server) SpecifyNewRoute(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID: "+err.Error())
	}

	var request SpecifyNewRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := request.Validate(); err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	origin, err := kernel.NewUnLocode(request.Origin)
	if err != nil {
		return badRequest(ctx, "Invalid origin: "+err.Error())
	}
	destination, err := kernel.NewUnLocode(request.Destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	cmd, err := commands.NewSpecifyNewRouteCommand(trackingID, origin, destination, request.ArrivalDeadline)
	if err != nil {
		return badRequest(ctx, "Invalid route data: "+err.Error())
	}

	if err := s.specifyNewRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SubmitHandlingReport handles POST /api/v1/handling-reports - registers a
// handling event reported from the field.
func (s *Server) SubmitHandlingReport(ctx echo.Context) error {
	var request HandlingReportRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := request.Validate(); err != nil {
		return badRequest(ctx, "Invalid handling report: "+err.Error())
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking ID: "+err.Error())
	}
	unLocode, err := kernel.NewUnLocode(request.UnLocode)
	if err != nil {
		return badRequest(ctx, "Invalid UN locode: "+err.Error())
	}
	eventType, err := handling.TypeFromString(request.EventType)
	if err != nil {
		return badRequest(ctx, "Invalid event type: "+err.Error())
	}

	voyageNumber := voyage.NoneNumber
	if request.VoyageNumber != "" {
		voyageNumber, err = voyage.NewNumber(request.VoyageNumber)
		if err != nil {
			return badRequest(ctx, "Invalid voyage number: "+err.Error())
		}
	}

	cmd, err := commands.NewRegisterHandlingEventCommand(
		request.CompletionTime, trackingID, voyageNumber, unLocode, eventType)
	if err != nil {
		return badRequest(ctx, "Invalid handling report: "+err.Error())
	}

	if err := s.registerEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// errorResponse maps application errors to HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound), errors.Is(err, handling.ErrUnknownCargo):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, handling.ErrUnknownLocation),
		errors.Is(err, handling.ErrUnknownVoyage),
		errors.Is(err, handling.ErrVoyageIsMissing):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toTrackCargoResponse(view queries.TrackCargoQueryResponse) TrackCargoResponse {
	events := make([]HandlingEventResponse, len(view.HandlingEvents))
	for i, event := range view.HandlingEvents {
		events[i] = HandlingEventResponse(event)
	}

	return TrackCargoResponse{
		TrackingID:              view.TrackingID,
		Origin:                  view.Origin,
		Destination:             view.Destination,
		ArrivalDeadline:         view.ArrivalDeadline,
		TransportStatus:         view.TransportStatus,
		RoutingStatus:           view.RoutingStatus,
		LastKnownLocation:       view.LastKnownLocation,
		CurrentVoyage:           view.CurrentVoyage,
		IsMisdirected:           view.IsMisdirected,
		EstimatedTimeOfArrival:  view.EstimatedTimeOfArrival,
		NextExpectedActivity:    view.NextExpectedActivity,
		IsUnloadedAtDestination: view.IsUnloadedAtDestination,
		HandlingEvents:          events,
	}
}

func toItinerary(legs []LegRequest) (cargo.Itinerary, error) {
	domainLegs := make([]cargo.Leg, 0, len(legs))
	for _, request := range legs {
		voyageNumber, err := voyage.NewNumber(request.VoyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		loadLocation, err := kernel.NewUnLocode(request.LoadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		unloadLocation, err := kernel.NewUnLocode(request.UnloadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		leg, err := cargo.NewLeg(voyageNumber, loadLocation, unloadLocation,
			request.LoadTime, request.UnloadTime)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		domainLegs = append(domainLegs, leg)
	}

	return cargo.NewItinerary(domainLegs)
}
