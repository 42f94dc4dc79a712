package http

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// BookCargoRequest is the payload for booking a new cargo. TrackingID is
// optional: when omitted the server generates one and returns it in the
// response.
type BookCargoRequest struct {
	TrackingID      string    `json:"trackingId,omitempty"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

// Validate checks the booking payload before it reaches the domain.
func (r BookCargoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TrackingID, validation.Length(4, 16), is.UpperCase, is.Alphanumeric),
		validation.Field(&r.Origin, validation.Required, validation.Length(5, 5), is.UpperCase, is.Alphanumeric),
		validation.Field(&r.Destination, validation.Required, validation.Length(5, 5), is.UpperCase, is.Alphanumeric),
		validation.Field(&r.ArrivalDeadline, validation.Required),
	)
}

// BookCargoResponse carries the tracking ID assigned to a new booking.
type BookCargoResponse struct {
	TrackingID string `json:"trackingId"`
}

// SpecifyNewRouteRequest is the payload for rerouting a cargo.
type SpecifyNewRouteRequest struct {
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

func (r SpecifyNewRouteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Origin, validation.Required, validation.Length(5, 5), is.UpperCase, is.Alphanumeric),
		validation.Field(&r.Destination, validation.Required, validation.Length(5, 5), is.UpperCase, is.Alphanumeric),
		validation.Field(&r.ArrivalDeadline, validation.Required),
	)
}

// AssignItineraryRequest is the payload for attaching a chosen route to a
// cargo. Legs must be listed in travel order.
type AssignItineraryRequest struct {
	Legs []LegRequest `json:"legs"`
}

func (r AssignItineraryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Legs, validation.Required, validation.Length(1, 0)),
	)
}

// LegRequest is one leg of an assigned itinerary.
type LegRequest struct {
	VoyageNumber   string    `json:"voyageNumber"`
	LoadLocation   string    `json:"loadLocation"`
	UnloadLocation string    `json:"unloadLocation"`
	LoadTime       time.Time `json:"loadTime"`
	UnloadTime     time.Time `json:"unloadTime"`
}

func (r LegRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VoyageNumber, validation.Required),
		validation.Field(&r.LoadLocation, validation.Required, validation.Length(5, 5)),
		validation.Field(&r.UnloadLocation, validation.Required, validation.Length(5, 5)),
		validation.Field(&r.LoadTime, validation.Required),
		validation.Field(&r.UnloadTime, validation.Required),
	)
}

// HandlingReportRequest is an incident report from a port or carrier.
// VoyageNumber is required for LOAD and UNLOAD and must be empty otherwise.
type HandlingReportRequest struct {
	CompletionTime time.Time `json:"completionTime"`
	TrackingID     string    `json:"trackingId"`
	VoyageNumber   string    `json:"voyageNumber,omitempty"`
	UnLocode       string    `json:"unLocode"`
	EventType      string    `json:"eventType"`
}

func (r HandlingReportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CompletionTime, validation.Required),
		validation.Field(&r.TrackingID, validation.Required, validation.Length(4, 16)),
		validation.Field(&r.UnLocode, validation.Required, validation.Length(5, 5)),
		validation.Field(&r.EventType, validation.Required,
			validation.In("RECEIVE", "LOAD", "UNLOAD", "CUSTOMS", "CLAIM")),
	)
}

// TrackCargoResponse is the public tracking view returned to clients.
type TrackCargoResponse struct {
	TrackingID              string                  `json:"trackingId"`
	Origin                  string                  `json:"origin"`
	Destination             string                  `json:"destination"`
	ArrivalDeadline         time.Time               `json:"arrivalDeadline"`
	TransportStatus         string                  `json:"transportStatus"`
	RoutingStatus           string                  `json:"routingStatus"`
	LastKnownLocation       *string                 `json:"lastKnownLocation,omitempty"`
	CurrentVoyage           *string                 `json:"currentVoyage,omitempty"`
	IsMisdirected           bool                    `json:"isMisdirected"`
	EstimatedTimeOfArrival  *time.Time              `json:"estimatedTimeOfArrival,omitempty"`
	NextExpectedActivity    *string                 `json:"nextExpectedActivity,omitempty"`
	IsUnloadedAtDestination bool                    `json:"isUnloadedAtDestination"`
	HandlingEvents          []HandlingEventResponse `json:"handlingEvents"`
}

// HandlingEventResponse is one recorded handling of a tracked cargo.
type HandlingEventResponse struct {
	EventType      string    `json:"eventType"`
	Location       string    `json:"location"`
	VoyageNumber   *string   `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}

// RouteCandidateResponse is one proposed itinerary for a cargo.
type RouteCandidateResponse struct {
	Legs []LegResponse `json:"legs"`
}

// LegResponse is one leg of a proposed itinerary.
type LegResponse struct {
	VoyageNumber   string    `json:"voyageNumber"`
	LoadLocation   string    `json:"loadLocation"`
	UnloadLocation string    `json:"unloadLocation"`
	LoadTime       time.Time `json:"loadTime"`
	UnloadTime     time.Time `json:"unloadTime"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
