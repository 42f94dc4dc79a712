package queries

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/ports"
)

// RequestPossibleRoutesQueryHandler generates itinerary candidates for a
// booked cargo by asking the routing service for routes satisfying the
// cargo's current route specification.
type RequestPossibleRoutesQueryHandler struct {
	cargos  ports.CargoRepository
	routing ports.RoutingService
}

// NewRequestPossibleRoutesQueryHandler creates a handler for route candidate
// queries.
func NewRequestPossibleRoutesQueryHandler(
	cargos ports.CargoRepository,
	routing ports.RoutingService,
) RequestPossibleRoutesQueryHandler {
	return RequestPossibleRoutesQueryHandler{
		cargos:  cargos,
		routing: routing,
	}
}

// Handle executes the route candidate query. An unroutable specification is
// not an error: the response simply carries no candidates.
func (h RequestPossibleRoutesQueryHandler) Handle(
	ctx context.Context,
	query RequestPossibleRoutesQuery,
) (RequestPossibleRoutesResponse, error) {
	if err := query.Validate(); err != nil {
		return RequestPossibleRoutesResponse{}, err
	}

	aggregate, err := h.cargos.Get(ctx, query.TrackingID())
	if err != nil {
		return RequestPossibleRoutesResponse{}, err
	}

	itineraries, err := h.routing.FetchRoutesForSpecification(ctx, aggregate.RouteSpecification())
	if err != nil {
		return RequestPossibleRoutesResponse{}, err
	}

	routes := make([]RouteCandidateResponse, 0, len(itineraries))
	for _, itinerary := range itineraries {
		routes = append(routes, toRouteCandidate(itinerary))
	}

	return RequestPossibleRoutesResponse{Routes: routes}, nil
}

func toRouteCandidate(itinerary cargo.Itinerary) RouteCandidateResponse {
	legs := itinerary.Legs()
	candidate := RouteCandidateResponse{Legs: make([]RouteLegResponse, 0, len(legs))}
	for _, leg := range legs {
		candidate.Legs = append(candidate.Legs, RouteLegResponse{
			VoyageNumber:   leg.VoyageNumber().String(),
			LoadLocation:   leg.LoadLocation().String(),
			UnloadLocation: leg.UnloadLocation().String(),
			LoadTime:       leg.LoadTime(),
			UnloadTime:     leg.UnloadTime(),
		})
	}
	return candidate
}
