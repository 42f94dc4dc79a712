package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// RoutingService is the route candidate generation capability. Given a route
// specification it returns a finite, possibly empty list of itineraries that
// satisfy it. Choosing among the candidates is left to the caller.
type RoutingService interface {
	FetchRoutesForSpecification(
		ctx context.Context,
		routeSpecification cargo.RouteSpecification,
	) ([]cargo.Itinerary, error)
}
