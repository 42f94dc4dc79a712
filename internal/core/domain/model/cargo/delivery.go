package cargo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// Delivery is the derived, read-only snapshot of a cargo's progress: where it
// is, whether it follows its plan, and what should happen to it next. It is
// never assembled by callers; DeriveDelivery computes it wholesale from the
// route specification, the optional itinerary and the full handling history,
// and identical inputs always produce an identical (comparable) value.
type Delivery struct {
	transportStatus           TransportStatus
	routingStatus             RoutingStatus
	lastKnownLocation         kernel.UnLocode
	hasLastKnownLocation      bool
	currentVoyage             voyage.Number
	isMisdirected             bool
	estimatedTimeOfArrival    time.Time
	hasEstimatedTimeOfArrival bool
	nextExpectedActivity      HandlingActivity
	hasNextExpectedActivity   bool
	isUnloadedAtDestination   bool
}

// DeriveDelivery folds a handling history plus route specification and
// itinerary into a Delivery snapshot. An empty itinerary means no itinerary
// has been assigned yet. The function is pure and total: it never fails,
// whatever combination of well-formed inputs it is given.
func DeriveDelivery(
	routeSpecification RouteSpecification,
	itinerary Itinerary,
	history handling.History,
) Delivery {
	delivery := Delivery{
		currentVoyage: voyage.NoneNumber,
	}

	last, hasLast := history.MostRecentlyCompletedEvent()

	delivery.transportStatus = deriveTransportStatus(last, hasLast)
	delivery.routingStatus = deriveRoutingStatus(routeSpecification, itinerary)

	if hasLast {
		delivery.lastKnownLocation = last.Location()
		delivery.hasLastKnownLocation = true
	}

	if hasLast && last.EventType() == handling.Load {
		delivery.currentVoyage = last.VoyageNumber()
	}

	// An event off the plan makes the cargo misdirected; replacing the
	// itinerary re-evaluates the verdict, so a reroute drawn up from the
	// deviation point forgives the deviation.
	delivery.isMisdirected = hasLast && !itinerary.IsEmpty() && !itinerary.IsExpected(last)

	if delivery.routingStatus == Routed {
		delivery.estimatedTimeOfArrival = itinerary.FinalArrivalTime()
		delivery.hasEstimatedTimeOfArrival = true
	}

	if activity, ok := deriveNextExpectedActivity(itinerary, delivery, last, hasLast); ok {
		delivery.nextExpectedActivity = activity
		delivery.hasNextExpectedActivity = true
	}

	delivery.isUnloadedAtDestination = hasLast &&
		last.EventType() == handling.Unload &&
		routeSpecification.Destination().IsEqual(last.Location())

	return delivery
}

// RestoredDelivery carries the persisted fields of a delivery snapshot.
// Optional fields are nil when the stored snapshot had no value for them.
type RestoredDelivery struct {
	TransportStatus         TransportStatus
	RoutingStatus           RoutingStatus
	LastKnownLocation       *kernel.UnLocode
	CurrentVoyage           voyage.Number
	IsMisdirected           bool
	EstimatedTimeOfArrival  *time.Time
	NextExpectedActivity    *HandlingActivity
	IsUnloadedAtDestination bool
}

// RestoreDelivery reconstructs a Delivery from persistence. The caller is
// trusted to hand back exactly what DeriveDelivery once produced.
func RestoreDelivery(restored RestoredDelivery) Delivery {
	delivery := Delivery{
		transportStatus:         restored.TransportStatus,
		routingStatus:           restored.RoutingStatus,
		currentVoyage:           restored.CurrentVoyage,
		isMisdirected:           restored.IsMisdirected,
		isUnloadedAtDestination: restored.IsUnloadedAtDestination,
	}

	if restored.LastKnownLocation != nil {
		delivery.lastKnownLocation = *restored.LastKnownLocation
		delivery.hasLastKnownLocation = true
	}
	if restored.EstimatedTimeOfArrival != nil {
		delivery.estimatedTimeOfArrival = *restored.EstimatedTimeOfArrival
		delivery.hasEstimatedTimeOfArrival = true
	}
	if restored.NextExpectedActivity != nil {
		delivery.nextExpectedActivity = *restored.NextExpectedActivity
		delivery.hasNextExpectedActivity = true
	}

	return delivery
}

func deriveTransportStatus(last handling.HandlingEvent, hasLast bool) TransportStatus {
	if !hasLast {
		return NotReceived
	}

	switch last.EventType() {
	case handling.Receive, handling.Unload, handling.Customs:
		return InPort
	case handling.Load:
		return OnboardCarrier
	case handling.Claim:
		return Claimed
	default:
		return TransportUnknown
	}
}

func deriveRoutingStatus(routeSpecification RouteSpecification, itinerary Itinerary) RoutingStatus {
	if itinerary.IsEmpty() {
		return NotRouted
	}
	if routeSpecification.IsSatisfiedBy(itinerary) {
		return Routed
	}
	return Misrouted
}

// deriveNextExpectedActivity predicts the next handling step by locating the
// last event on the itinerary. No prediction is made for a cargo that is off
// plan, not properly routed or already claimed.
func deriveNextExpectedActivity(
	itinerary Itinerary,
	delivery Delivery,
	last handling.HandlingEvent,
	hasLast bool,
) (HandlingActivity, bool) {
	if delivery.routingStatus != Routed || delivery.isMisdirected || delivery.transportStatus == Claimed {
		return HandlingActivity{}, false
	}

	legs := itinerary.Legs()

	if !hasLast {
		return newActivityOrNone(handling.Receive, legs[0].LoadLocation(), voyage.NoneNumber)
	}

	switch last.EventType() {
	case handling.Receive:
		if !legs[0].LoadLocation().IsEqual(last.Location()) {
			return HandlingActivity{}, false
		}
		return newActivityOrNone(handling.Load, legs[0].LoadLocation(), legs[0].VoyageNumber())

	case handling.Load:
		for _, leg := range legs {
			if leg.LoadLocation().IsEqual(last.Location()) &&
				leg.VoyageNumber().IsEqual(last.VoyageNumber()) {
				return newActivityOrNone(handling.Unload, leg.UnloadLocation(), leg.VoyageNumber())
			}
		}
		return HandlingActivity{}, false

	case handling.Unload:
		for i, leg := range legs {
			if !leg.UnloadLocation().IsEqual(last.Location()) ||
				!leg.VoyageNumber().IsEqual(last.VoyageNumber()) {
				continue
			}
			if i == len(legs)-1 {
				return newActivityOrNone(handling.Claim, leg.UnloadLocation(), voyage.NoneNumber)
			}
			next := legs[i+1]
			return newActivityOrNone(handling.Load, next.LoadLocation(), next.VoyageNumber())
		}
		return HandlingActivity{}, false

	default:
		return HandlingActivity{}, false
	}
}

func newActivityOrNone(
	eventType handling.Type,
	location kernel.UnLocode,
	voyageNumber voyage.Number,
) (HandlingActivity, bool) {
	activity, err := NewHandlingActivity(eventType, location, voyageNumber)
	if err != nil {
		return HandlingActivity{}, false
	}
	return activity, true
}

// TransportStatus reports where the cargo is with respect to the network.
func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// RoutingStatus reports how the itinerary relates to the route specification.
func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

// LastKnownLocation returns the location of the most recent handling event,
// if any handling has been reported.
func (d Delivery) LastKnownLocation() (kernel.UnLocode, bool) {
	return d.lastKnownLocation, d.hasLastKnownLocation
}

// CurrentVoyage returns the voyage the cargo is aboard, or voyage.NoneNumber
// when it is not aboard a carrier.
func (d Delivery) CurrentVoyage() voyage.Number {
	return d.currentVoyage
}

// IsMisdirected reports whether the cargo's most recent handling deviates
// from the assigned itinerary.
func (d Delivery) IsMisdirected() bool {
	return d.isMisdirected
}

// EstimatedTimeOfArrival returns when the cargo is expected to arrive at its
// destination. It is only known for a properly routed cargo.
func (d Delivery) EstimatedTimeOfArrival() (time.Time, bool) {
	return d.estimatedTimeOfArrival, d.hasEstimatedTimeOfArrival
}

// NextExpectedActivity returns the handling step that should happen next, if
// a confident prediction can be made.
func (d Delivery) NextExpectedActivity() (HandlingActivity, bool) {
	return d.nextExpectedActivity, d.hasNextExpectedActivity
}

// IsUnloadedAtDestination reports whether the cargo was last unloaded at the
// destination named by the route specification.
func (d Delivery) IsUnloadedAtDestination() bool {
	return d.isUnloadedAtDestination
}

// IsEqual compares two snapshots field by field.
func (d Delivery) IsEqual(other Delivery) bool {
	return d.transportStatus == other.transportStatus &&
		d.routingStatus == other.routingStatus &&
		d.lastKnownLocation.IsEqual(other.lastKnownLocation) &&
		d.hasLastKnownLocation == other.hasLastKnownLocation &&
		d.currentVoyage.IsEqual(other.currentVoyage) &&
		d.isMisdirected == other.isMisdirected &&
		d.estimatedTimeOfArrival.Equal(other.estimatedTimeOfArrival) &&
		d.hasEstimatedTimeOfArrival == other.hasEstimatedTimeOfArrival &&
		d.nextExpectedActivity.IsEqual(other.nextExpectedActivity) &&
		d.hasNextExpectedActivity == other.hasNextExpectedActivity &&
		d.isUnloadedAtDestination == other.isUnloadedAtDestination
}
