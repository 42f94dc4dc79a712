package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrInspectCargoCommandIsNotConstructed = errors.New(
	"InspectCargoCommand must be created via NewInspectCargoCommand constructor",
)

// InspectCargoCommand represents a request to inspect one cargo: recompute
// its delivery snapshot from the full current history and raise notifications
// for misdirection or arrival.
type InspectCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewInspectCargoCommand creates a command to inspect a cargo.
func NewInspectCargoCommand(trackingID kernel.TrackingID) (InspectCargoCommand, error) {
	inspectCommand := InspectCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := inspectCommand.setTrackingID(trackingID); err != nil {
		return InspectCargoCommand{}, err
	}

	return inspectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c InspectCargoCommand) Validate() error {
	return c.guard.Validate(ErrInspectCargoCommandIsNotConstructed)
}

// TrackingID returns the tracking ID of the cargo to inspect.
func (c InspectCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c *InspectCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}
