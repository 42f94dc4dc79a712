package services

import (
	"errors"

	"github.com/samber/lo"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// ErrNoRouteFound is returned when no itinerary connecting the origin to the
// destination can be assembled from the known voyage schedules.
var ErrNoRouteFound = errors.New("no route found for specification")

// maxTransshipments bounds the schedule walk. Itineraries needing more than
// this many voyage changes are not worth proposing.
const maxTransshipments = 4

// ItineraryFinder is a domain service that assembles candidate itineraries
// for a route specification by walking the carrier movements of the known
// voyages.
//
// Key responsibilities:
//   - Connecting carrier movements into continuous leg chains from the
//     specification's origin to its destination
//   - Respecting time: a connecting voyage must not depart before the
//     previous one arrives
//   - Discarding candidates that miss the arrival deadline
//
// The finder proposes; it never chooses. Selecting among the returned
// candidates is the caller's concern.
type ItineraryFinder struct{}

// NewItineraryFinder creates a new ItineraryFinder instance.
func NewItineraryFinder() ItineraryFinder {
	return ItineraryFinder{}
}

// FindItineraries assembles every itinerary over the given voyages that
// satisfies the route specification. Returns ErrNoRouteFound when no chain of
// carrier movements connects the origin to the destination in time.
func (f ItineraryFinder) FindItineraries(
	routeSpecification cargo.RouteSpecification,
	voyages []*voyage.Voyage,
) ([]cargo.Itinerary, error) {
	if err := routeSpecification.Validate(); err != nil {
		return nil, err
	}
	for _, v := range voyages {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	var candidates []cargo.Itinerary
	walker := scheduleWalker{
		voyages:     voyages,
		destination: routeSpecification.Destination(),
		collect: func(legs []cargo.Leg) {
			itinerary, err := cargo.NewItinerary(legs)
			if err != nil {
				return
			}
			candidates = append(candidates, itinerary)
		},
	}
	walker.walkFrom(routeSpecification.Origin(), nil)

	satisfying := lo.Filter(candidates, func(itinerary cargo.Itinerary, _ int) bool {
		return routeSpecification.IsSatisfiedBy(itinerary)
	})
	if len(satisfying) == 0 {
		return nil, ErrNoRouteFound
	}

	return satisfying, nil
}

// scheduleWalker performs a depth-first walk over carrier movements,
// collecting every continuous chain of legs reaching the destination.
type scheduleWalker struct {
	voyages     []*voyage.Voyage
	destination kernel.UnLocode
	collect     func(legs []cargo.Leg)
}

func (w *scheduleWalker) walkFrom(location kernel.UnLocode, legsSoFar []cargo.Leg) {
	if len(legsSoFar) > maxTransshipments {
		return
	}

	for _, v := range w.voyages {
		for _, movement := range v.Schedule().Movements() {
			if !movement.DepartureLocation().IsEqual(location) {
				continue
			}
			if !w.connects(legsSoFar, movement) {
				continue
			}
			if w.revisits(legsSoFar, movement.ArrivalLocation()) {
				continue
			}

			leg, err := cargo.NewLeg(
				v.Number(),
				movement.DepartureLocation(),
				movement.ArrivalLocation(),
				movement.DepartureTime(),
				movement.ArrivalTime(),
			)
			if err != nil {
				continue
			}

			extended := append(append([]cargo.Leg(nil), legsSoFar...), leg)
			if movement.ArrivalLocation().IsEqual(w.destination) {
				w.collect(extended)
				continue
			}
			w.walkFrom(movement.ArrivalLocation(), extended)
		}
	}
}

// connects reports whether the movement departs no earlier than the chain so
// far arrives.
func (w *scheduleWalker) connects(legsSoFar []cargo.Leg, movement voyage.CarrierMovement) bool {
	if len(legsSoFar) == 0 {
		return true
	}
	return !movement.DepartureTime().Before(legsSoFar[len(legsSoFar)-1].UnloadTime())
}

// revisits reports whether the chain already passed through the location.
// Cyclic candidates are never useful.
func (w *scheduleWalker) revisits(legsSoFar []cargo.Leg, location kernel.UnLocode) bool {
	for _, leg := range legsSoFar {
		if leg.LoadLocation().IsEqual(location) || leg.UnloadLocation().IsEqual(location) {
			return true
		}
	}
	return false
}
