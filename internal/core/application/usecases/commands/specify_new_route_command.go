package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrSpecifyNewRouteCommandIsNotConstructed = errors.New(
	"SpecifyNewRouteCommand must be created via NewSpecifyNewRouteCommand constructor",
)

// SpecifyNewRouteCommand represents a request to reroute a cargo: its route
// specification is replaced wholesale with a new origin, destination and
// arrival deadline.
type SpecifyNewRouteCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewSpecifyNewRouteCommand creates a command to reroute a cargo.
func NewSpecifyNewRouteCommand(
	trackingID kernel.TrackingID,
	origin kernel.UnLocode,
	destination kernel.UnLocode,
	arrivalDeadline time.Time,
) (SpecifyNewRouteCommand, error) {
	rerouteCommand := SpecifyNewRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rerouteCommand.setTrackingID(trackingID),
		rerouteCommand.setOrigin(origin),
		rerouteCommand.setDestination(destination),
		rerouteCommand.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return SpecifyNewRouteCommand{}, err
	}

	return rerouteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SpecifyNewRouteCommand) Validate() error {
	return c.guard.Validate(ErrSpecifyNewRouteCommandIsNotConstructed)
}

// TrackingID returns the tracking ID of the cargo to reroute.
func (c SpecifyNewRouteCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns the new origin UN locode.
func (c SpecifyNewRouteCommand) Origin() kernel.UnLocode {
	return c.origin
}

// Destination returns the new destination UN locode.
func (c SpecifyNewRouteCommand) Destination() kernel.UnLocode {
	return c.destination
}

// ArrivalDeadline returns the new arrival deadline.
func (c SpecifyNewRouteCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *SpecifyNewRouteCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *SpecifyNewRouteCommand) setOrigin(origin kernel.UnLocode) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *SpecifyNewRouteCommand) setDestination(destination kernel.UnLocode) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *SpecifyNewRouteCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}

	c.arrivalDeadline = arrivalDeadline
	return nil
}
