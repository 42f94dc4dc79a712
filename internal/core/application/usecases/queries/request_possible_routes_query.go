package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrRequestPossibleRoutesQueryIsNotConstructed = errors.New(
	"RequestPossibleRoutesQuery must be created via NewRequestPossibleRoutesQuery constructor",
)

// RequestPossibleRoutesQuery asks for every itinerary candidate that would
// satisfy a booked cargo's current route specification. The booking office
// picks one of the candidates and assigns it to the cargo afterwards.
//
// Example:
//
//	query, err := NewRequestPossibleRoutesQuery(trackingID)
//	if err != nil {
//	    return fmt.Errorf("invalid route request: %w", err)
//	}
//
//	candidates, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to fetch route candidates: %w", err)
//	}
type RequestPossibleRoutesQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewRequestPossibleRoutesQuery creates a query for the given tracking ID.
func NewRequestPossibleRoutesQuery(trackingID kernel.TrackingID) (RequestPossibleRoutesQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return RequestPossibleRoutesQuery{}, err
	}

	return RequestPossibleRoutesQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RequestPossibleRoutesQuery) Validate() error {
	return q.guard.Validate(ErrRequestPossibleRoutesQueryIsNotConstructed)
}

// TrackingID returns the tracking ID whose route specification is routed.
func (q RequestPossibleRoutesQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// RequestPossibleRoutesResponse lists the itinerary candidates for a cargo.
// Empty when no chain of voyages satisfies the route specification.
type RequestPossibleRoutesResponse struct {
	Routes []RouteCandidateResponse
}

// RouteCandidateResponse is one proposed itinerary.
type RouteCandidateResponse struct {
	Legs []RouteLegResponse
}

// RouteLegResponse is one carrier movement of a proposed itinerary.
type RouteLegResponse struct {
	VoyageNumber   string
	LoadLocation   string
	UnloadLocation string
	LoadTime       time.Time
	UnloadTime     time.Time
}
