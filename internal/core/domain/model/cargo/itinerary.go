package cargo

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// Itinerary is the concrete transport plan of a cargo: a non-empty, connected
// chain of legs. It is immutable once constructed; re-planning a cargo means
// assigning a new itinerary, never mutating legs in place.
//
// Invariant: every leg unloads exactly where the next leg loads.
type Itinerary struct {
	legs []Leg
}

// NewItinerary creates an Itinerary from a non-empty, connected sequence of
// legs. The input slice is not retained.
func NewItinerary(legs []Leg) (Itinerary, error) {
	if len(legs) == 0 {
		return Itinerary{}, errs.NewValueIsRequiredError("legs")
	}

	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return Itinerary{}, err
		}
		if i == 0 {
			continue
		}

		previous := legs[i-1]
		if !previous.UnloadLocation().IsEqual(leg.LoadLocation()) {
			return Itinerary{}, errs.NewValueIsInvalidErrorWithCause("legs",
				fmt.Errorf("leg %d loads at %s but the previous leg unloads at %s",
					i, leg.LoadLocation(), previous.UnloadLocation()))
		}
	}

	return Itinerary{legs: append([]Leg(nil), legs...)}, nil
}

// Validate checks if the Itinerary was properly constructed.
// The zero value (no legs) fails validation.
func (i Itinerary) Validate() error {
	if len(i.legs) == 0 {
		return errs.NewValueIsRequiredError("legs")
	}
	return nil
}

// Legs returns the legs in travel order.
// The returned slice is a copy; the itinerary itself stays immutable.
func (i Itinerary) Legs() []Leg {
	return append([]Leg(nil), i.legs...)
}

// IsEmpty reports whether the itinerary has no legs (the invalid zero value).
func (i Itinerary) IsEmpty() bool {
	return len(i.legs) == 0
}

// InitialDepartureLocation returns where the first leg loads.
func (i Itinerary) InitialDepartureLocation() kernel.UnLocode {
	if i.IsEmpty() {
		return kernel.UnLocode{}
	}
	return i.legs[0].LoadLocation()
}

// FinalArrivalLocation returns where the last leg unloads.
func (i Itinerary) FinalArrivalLocation() kernel.UnLocode {
	if i.IsEmpty() {
		return kernel.UnLocode{}
	}
	return i.legs[len(i.legs)-1].UnloadLocation()
}

// FinalArrivalTime returns when the last leg unloads.
func (i Itinerary) FinalArrivalTime() time.Time {
	if i.IsEmpty() {
		return time.Time{}
	}
	return i.legs[len(i.legs)-1].UnloadTime()
}

// IsExpected decides whether a single handling event is consistent with this
// plan, independent of where in the history it occurs:
//
//   - Receive is expected at the first leg's load location
//   - Load is expected at any leg's load location on that leg's voyage
//   - Unload is expected at any leg's unload location on that leg's voyage
//   - Claim is expected at the last leg's unload location
//   - Customs carries no itinerary constraint and is always expected
func (i Itinerary) IsExpected(event handling.HandlingEvent) bool {
	if i.IsEmpty() {
		return false
	}

	switch event.EventType() {
	case handling.Receive:
		return i.InitialDepartureLocation().IsEqual(event.Location())

	case handling.Load:
		for _, leg := range i.legs {
			if leg.LoadLocation().IsEqual(event.Location()) &&
				leg.VoyageNumber().IsEqual(event.VoyageNumber()) {
				return true
			}
		}
		return false

	case handling.Unload:
		for _, leg := range i.legs {
			if leg.UnloadLocation().IsEqual(event.Location()) &&
				leg.VoyageNumber().IsEqual(event.VoyageNumber()) {
				return true
			}
		}
		return false

	case handling.Claim:
		return i.FinalArrivalLocation().IsEqual(event.Location())

	case handling.Customs:
		return true

	default:
		return false
	}
}

// IsEqual compares two itineraries leg by leg.
func (i Itinerary) IsEqual(other Itinerary) bool {
	if len(i.legs) != len(other.legs) {
		return false
	}
	for idx, leg := range i.legs {
		if !leg.IsEqual(other.legs[idx]) {
			return false
		}
	}
	return true
}
