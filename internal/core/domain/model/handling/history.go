package handling

import (
	"sort"

	"cargotracker/internal/core/domain/model/kernel"
)

// History is the (possibly empty) set of handling events recorded for one
// cargo, always consumed in canonical order: ascending completion time, ties
// broken by registration time, then by insertion order. Every delivery
// derivation rule reads the history through this ordering.
//
// History is an immutable value object; appending an event produces a new
// History and never alters the recorded events.
type History struct {
	events []HandlingEvent
}

// NewHistory creates a History from the given events, establishing the
// canonical order. The input slice is not retained.
func NewHistory(events []HandlingEvent) History {
	sorted := append([]HandlingEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].completionTime.Equal(sorted[j].completionTime) {
			return sorted[i].completionTime.Before(sorted[j].completionTime)
		}
		return sorted[i].registrationTime.Before(sorted[j].registrationTime)
	})

	return History{events: sorted}
}

// EmptyHistory creates a History with no recorded events.
func EmptyHistory() History {
	return History{}
}

// Append produces a new History with the event added at its canonical position.
// The receiver is left untouched.
func (h History) Append(event HandlingEvent) History {
	return NewHistory(append(h.EventsInCanonicalOrder(), event))
}

// EventsInCanonicalOrder returns all events in canonical order.
// The returned slice is a copy; the history itself stays immutable.
func (h History) EventsInCanonicalOrder() []HandlingEvent {
	return append([]HandlingEvent(nil), h.events...)
}

// MostRecentlyCompletedEvent returns the latest event in canonical order.
// The second return value is false when the history is empty.
func (h History) MostRecentlyCompletedEvent() (HandlingEvent, bool) {
	if len(h.events) == 0 {
		return HandlingEvent{}, false
	}
	return h.events[len(h.events)-1], true
}

// IsEmpty reports whether no events have been recorded.
func (h History) IsEmpty() bool {
	return len(h.events) == 0
}

// Size returns the number of recorded events.
func (h History) Size() int {
	return len(h.events)
}

// FilterOnCargo returns a History holding only the events of the given cargo,
// preserving canonical order.
func (h History) FilterOnCargo(trackingID kernel.TrackingID) History {
	filtered := make([]HandlingEvent, 0, len(h.events))
	for _, event := range h.events {
		if event.trackingID.IsEqual(trackingID) {
			filtered = append(filtered, event)
		}
	}
	return History{events: filtered}
}
