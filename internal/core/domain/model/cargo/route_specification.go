package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrRouteSpecificationIsNotConstructed is returned when a RouteSpecification
// was not created through the NewRouteSpecification constructor.
var ErrRouteSpecificationIsNotConstructed = errors.New(
	"RouteSpecification must be created via NewRouteSpecification constructor")

// RouteSpecification describes where a cargo must travel from and to, and by
// when it must arrive. It is created at booking or rerouting time and is
// immutable: rerouting replaces the whole specification, never mutates it.
//
// Invariant: origin and destination are distinct.
type RouteSpecification struct { //nolint:recvcheck //using for validation
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewRouteSpecification creates a RouteSpecification from origin to
// destination with the given arrival deadline.
func NewRouteSpecification(
	origin kernel.UnLocode,
	destination kernel.UnLocode,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	spec := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setOrigin(origin),
		spec.setDestination(destination),
		spec.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	if origin.IsEqual(destination) {
		return RouteSpecification{}, errs.NewValueIsInvalidErrorWithCause("destination",
			fmt.Errorf("origin and destination are both %s", origin))
	}

	return spec, nil
}

// Validate ensures the specification was created through the constructor.
func (s RouteSpecification) Validate() error {
	return s.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

// Origin returns the UN locode the cargo must travel from.
func (s RouteSpecification) Origin() kernel.UnLocode {
	return s.origin
}

// Destination returns the UN locode the cargo must travel to.
func (s RouteSpecification) Destination() kernel.UnLocode {
	return s.destination
}

// ArrivalDeadline returns the latest acceptable arrival time at the destination.
func (s RouteSpecification) ArrivalDeadline() time.Time {
	return s.arrivalDeadline
}

// IsSatisfiedBy decides whether an itinerary fulfils this specification:
// it must depart from the origin, arrive at the destination, and arrive no
// later than the deadline. There is no partial credit; any failing clause
// makes the itinerary unsatisfactory.
func (s RouteSpecification) IsSatisfiedBy(itinerary Itinerary) bool {
	if itinerary.IsEmpty() {
		return false
	}

	return s.origin.IsEqual(itinerary.InitialDepartureLocation()) &&
		s.destination.IsEqual(itinerary.FinalArrivalLocation()) &&
		!itinerary.FinalArrivalTime().After(s.arrivalDeadline)
}

// IsEqual compares two route specifications field by field.
func (s RouteSpecification) IsEqual(other RouteSpecification) bool {
	return s.origin.IsEqual(other.origin) &&
		s.destination.IsEqual(other.destination) &&
		s.arrivalDeadline.Equal(other.arrivalDeadline)
}

func (s *RouteSpecification) setOrigin(origin kernel.UnLocode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *RouteSpecification) setDestination(destination kernel.UnLocode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *RouteSpecification) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	s.arrivalDeadline = arrivalDeadline
	return nil
}
