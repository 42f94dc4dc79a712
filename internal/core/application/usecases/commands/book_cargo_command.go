package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrBookCargoCommandIsNotConstructed = errors.New(
	"BookCargoCommand must be created via NewBookCargoCommand constructor",
)

// BookCargoCommand represents a request to book a new cargo for transport
// from an origin to a destination with an arrival deadline.
//
// Example:
//
//	trackingID := kernel.GenerateTrackingID()
//	cmd, err := NewBookCargoCommand(trackingID, origin, destination, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookCargoCommandHandler(uowFactory, locations)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book cargo: %w", err)
//	}
type BookCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewBookCargoCommand creates a command to book a new cargo.
// Validates that the tracking ID and both UN locodes are well-formed and the
// deadline is set. Whether the locations actually exist is checked by the
// handler against reference data.
func NewBookCargoCommand(
	trackingID kernel.TrackingID,
	origin kernel.UnLocode,
	destination kernel.UnLocode,
	arrivalDeadline time.Time,
) (BookCargoCommand, error) {
	bookCommand := BookCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookCommand.setTrackingID(trackingID),
		bookCommand.setOrigin(origin),
		bookCommand.setDestination(destination),
		bookCommand.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return BookCargoCommand{}, err
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c BookCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookCargoCommandIsNotConstructed)
}

// TrackingID returns the tracking ID assigned to the new cargo.
func (c BookCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns the UN locode the cargo travels from.
func (c BookCargoCommand) Origin() kernel.UnLocode {
	return c.origin
}

// Destination returns the UN locode the cargo travels to.
func (c BookCargoCommand) Destination() kernel.UnLocode {
	return c.destination
}

// ArrivalDeadline returns when the cargo must arrive at the destination.
func (c BookCargoCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *BookCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *BookCargoCommand) setOrigin(origin kernel.UnLocode) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *BookCargoCommand) setDestination(destination kernel.UnLocode) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *BookCargoCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}

	c.arrivalDeadline = arrivalDeadline
	return nil
}
