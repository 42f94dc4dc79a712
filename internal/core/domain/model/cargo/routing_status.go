package cargo

import "cargotracker/internal/pkg/errs"

// RoutingStatus relates a cargo's itinerary to its route specification:
// the cargo either has no itinerary yet, has one that satisfies the
// specification, or has one that no longer does (typically after the
// customer changed the destination).
type RoutingStatus int

const (
	// RoutingUnknown is the zero value and is never derived.
	RoutingUnknown RoutingStatus = iota

	// NotRouted means no itinerary has been assigned.
	NotRouted

	// Routed means the assigned itinerary satisfies the route specification.
	Routed

	// Misrouted means the assigned itinerary does not satisfy the route
	// specification and the cargo must be rerouted.
	Misrouted
)

func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		RoutingUnknown: "UNKNOWN",
		NotRouted:      "NOT_ROUTED",
		Routed:         "ROUTED",
		Misrouted:      "MISROUTED",
	}
}

// String returns the name of the routing status.
func (s RoutingStatus) String() string {
	return getRoutingStatusStrings()[s]
}

// RoutingStatusFromString restores a RoutingStatus from its name.
func RoutingStatusFromString(name string) (RoutingStatus, error) {
	for status, statusName := range getRoutingStatusStrings() {
		if statusName == name {
			return status, nil
		}
	}
	return RoutingUnknown, errs.NewValueIsInvalidError("name")
}
