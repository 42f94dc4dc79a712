package cargo

import (
	"errors"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

var (
	// ErrCargoIsNotConstructed is returned when a Cargo instance was not created
	// through the NewCargo or RestoreCargo factory methods.
	ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")
)

// Cargo is the aggregate root of the tracking model. It owns the customer's
// requirement (the route specification), the transport plan chosen for it
// (the itinerary) and the delivery snapshot derived from both plus the cargo's
// handling history.
//
// Cargo follows these invariants:
//   - Must have a valid tracking ID, assigned once at booking
//   - Must always have a valid route specification
//   - The itinerary is absent until the first route assignment
//   - The delivery snapshot is never set directly; every mutation recomputes
//     it from the complete current inputs via DeriveDelivery
//
// The aggregate does not own the handling history. Events are stored
// separately and supplied to each mutation, so that a mutation always reads
// the full history rather than patching the previous snapshot incrementally.
type Cargo struct {
	// trackingID is the unique identifier for the cargo
	trackingID kernel.TrackingID

	// routeSpecification is the customer's origin/destination/deadline requirement
	routeSpecification RouteSpecification

	// itinerary is the assigned transport plan (empty until first assignment)
	itinerary Itinerary

	// delivery is the derived progress snapshot
	delivery Delivery

	// isConstructed ensures the cargo was created via a constructor
	isConstructed bool
}

// NewCargo books a new cargo with the given tracking ID and route
// specification. The cargo starts with no itinerary and a delivery snapshot
// derived from an empty history, i.e. NOT_RECEIVED and NOT_ROUTED.
//
// Returns a validation error if the tracking ID or route specification is
// invalid.
func NewCargo(trackingID kernel.TrackingID, routeSpecification RouteSpecification) (*Cargo, error) {
	cargo := &Cargo{
		isConstructed: true,
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	cargo.delivery = DeriveDelivery(cargo.routeSpecification, cargo.itinerary, handling.EmptyHistory())
	return cargo, nil
}

// RestoreCargo reconstructs a Cargo from persistence. Unlike NewCargo it
// accepts an already assigned itinerary and the stored delivery snapshot.
// An empty itinerary means the cargo was never routed.
func RestoreCargo(
	trackingID kernel.TrackingID,
	routeSpecification RouteSpecification,
	itinerary Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	cargo := &Cargo{
		isConstructed: true,
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	if !itinerary.IsEmpty() {
		cargo.itinerary = itinerary
	}
	cargo.delivery = delivery
	return cargo, nil
}

// Validate ensures the Cargo instance was properly constructed through
// NewCargo or RestoreCargo.
func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}

	return nil
}

// IsEqual compares two cargos by their tracking IDs.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}

// TrackingID returns the cargo's unique identifier.
func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// RouteSpecification returns the current origin/destination/deadline
// requirement.
func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

// Itinerary returns the assigned transport plan. The second return value is
// false while no itinerary has been assigned.
func (c *Cargo) Itinerary() (Itinerary, bool) {
	return c.itinerary, !c.itinerary.IsEmpty()
}

// Delivery returns the current derived progress snapshot.
func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// AssignToRoute attaches an itinerary to the cargo, replacing any previous
// one, and recomputes the delivery snapshot against the supplied handling
// history. Assigning an itinerary re-evaluates misdirection, so a reroute
// drawn up from the cargo's current position clears a deviation recorded
// against the old plan.
//
// Returns a validation error if the itinerary is empty or was not properly
// constructed; the cargo is left unchanged in that case.
func (c *Cargo) AssignToRoute(itinerary Itinerary, history handling.History) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}

	c.itinerary = itinerary
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history)
	return nil
}

// SpecifyNewRoute replaces the route specification (rerouting) and recomputes
// the delivery snapshot. If an itinerary is assigned and does not satisfy the
// new specification, the cargo becomes MISROUTED immediately, without any new
// handling event.
func (c *Cargo) SpecifyNewRoute(routeSpecification RouteSpecification, history handling.History) error {
	if err := c.setRouteSpecification(routeSpecification); err != nil {
		return err
	}

	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history)
	return nil
}

// DeriveDeliveryProgress recomputes the delivery snapshot from the supplied
// handling history. It is invoked by the event-registration workflow after a
// new handling event has been appended to the cargo's history.
func (c *Cargo) DeriveDeliveryProgress(history handling.History) {
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history)
}

// setTrackingID validates and sets the cargo's tracking ID.
// This is a private method used only during construction.
func (c *Cargo) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

// setRouteSpecification validates and sets the route specification.
func (c *Cargo) setRouteSpecification(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return err
	}
	c.routeSpecification = routeSpecification
	return nil
}
