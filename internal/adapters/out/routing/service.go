// Package routing implements route candidate generation over the voyage
// schedules held in the voyage repository.
package routing

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/core/ports"
)

// ScheduleRoutingService implements ports.RoutingService by walking every
// published voyage schedule with the itinerary finder. An unroutable
// specification yields an empty candidate list, not an error.
type ScheduleRoutingService struct {
	voyages ports.VoyageRepository
	finder  services.ItineraryFinder
}

// NewScheduleRoutingService creates a routing service over the given voyage
// repository.
func NewScheduleRoutingService(
	voyages ports.VoyageRepository,
	finder services.ItineraryFinder,
) *ScheduleRoutingService {
	return &ScheduleRoutingService{
		voyages: voyages,
		finder:  finder,
	}
}

// FetchRoutesForSpecification returns every itinerary over the known voyages
// that satisfies the route specification.
func (s *ScheduleRoutingService) FetchRoutesForSpecification(
	ctx context.Context,
	routeSpecification cargo.RouteSpecification,
) ([]cargo.Itinerary, error) {
	voyages, err := s.voyages.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	itineraries, err := s.finder.FindItineraries(routeSpecification, voyages)
	if err != nil {
		if errors.Is(err, services.ErrNoRouteFound) {
			return []cargo.Itinerary{}, nil
		}
		return nil, err
	}

	return itineraries, nil
}
