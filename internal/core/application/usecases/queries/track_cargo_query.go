// Package queries contains read-only operations over the tracking store.
// Implements the Query side of the CQRS architecture: handlers read the
// persisted projection directly and never touch domain aggregates.
package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrTrackCargoQueryIsNotConstructed = errors.New(
	"TrackCargoQuery must be created via NewTrackCargoQuery constructor",
)

// TrackCargoQuery retrieves the public tracking view of one cargo: the
// delivery snapshot last persisted for it plus its recorded handling history.
//
// Example:
//
//	query, err := NewTrackCargoQuery(trackingID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking request: %w", err)
//	}
//
//	handler := NewTrackCargoQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track cargo: %w", err)
//	}
//	fmt.Printf("Cargo %s is %s\n", view.TrackingID, view.TransportStatus)
type TrackCargoQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackCargoQuery creates a query for the given tracking ID.
func NewTrackCargoQuery(trackingID kernel.TrackingID) (TrackCargoQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackCargoQuery{}, err
	}

	return TrackCargoQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackCargoQuery) Validate() error {
	return q.guard.Validate(ErrTrackCargoQueryIsNotConstructed)
}

// TrackingID returns the tracking ID being queried.
func (q TrackCargoQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// TrackCargoQueryResponse is the public tracking view of one cargo.
type TrackCargoQueryResponse struct {
	TrackingID              string
	Origin                  string
	Destination             string
	ArrivalDeadline         time.Time
	TransportStatus         string
	RoutingStatus           string
	LastKnownLocation       *string
	CurrentVoyage           *string
	IsMisdirected           bool
	EstimatedTimeOfArrival  *time.Time
	NextExpectedActivity    *string
	IsUnloadedAtDestination bool
	HandlingEvents          []TrackCargoHandlingEventResponse
}

// TrackCargoHandlingEventResponse is one recorded handling of the cargo, in
// canonical order.
type TrackCargoHandlingEventResponse struct {
	EventType      string
	Location       string
	VoyageNumber   *string
	CompletionTime time.Time
}
