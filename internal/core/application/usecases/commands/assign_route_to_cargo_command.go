package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrAssignRouteToCargoCommandIsNotConstructed = errors.New(
	"AssignRouteToCargoCommand must be created via NewAssignRouteToCargoCommand constructor",
)

// AssignRouteToCargoCommand represents a request to attach an itinerary to a
// booked cargo, replacing any previously assigned one.
type AssignRouteToCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	itinerary  cargo.Itinerary

	guard guard.ConstructorGuard
}

// NewAssignRouteToCargoCommand creates a command to assign an itinerary.
// The itinerary must be properly constructed and non-empty.
func NewAssignRouteToCargoCommand(
	trackingID kernel.TrackingID,
	itinerary cargo.Itinerary,
) (AssignRouteToCargoCommand, error) {
	assignCommand := AssignRouteToCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setTrackingID(trackingID),
		assignCommand.setItinerary(itinerary),
	); err != nil {
		return AssignRouteToCargoCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRouteToCargoCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteToCargoCommandIsNotConstructed)
}

// TrackingID returns the tracking ID of the cargo to route.
func (c AssignRouteToCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Itinerary returns the itinerary to assign.
func (c AssignRouteToCargoCommand) Itinerary() cargo.Itinerary {
	return c.itinerary
}

func (c *AssignRouteToCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *AssignRouteToCargoCommand) setItinerary(itinerary cargo.Itinerary) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}

	c.itinerary = itinerary
	return nil
}
