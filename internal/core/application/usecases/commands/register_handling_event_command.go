package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
	"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
)

// RegisterHandlingEventCommand represents an incoming handling report: a
// handling of some type completed at a location, on a voyage when the type
// calls for one.
//
// The command enforces only well-formedness. Existence of the cargo, location
// and voyage, and the per-type voyage rule, are checked by the handler
// through the handling event factory.
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	completionTime time.Time
	trackingID     kernel.TrackingID
	voyageNumber   voyage.Number
	unLocode       kernel.UnLocode
	eventType      handling.Type

	guard guard.ConstructorGuard
}

// NewRegisterHandlingEventCommand creates a command from a handling report.
// Pass voyage.NoneNumber when the report names no voyage.
func NewRegisterHandlingEventCommand(
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber voyage.Number,
	unLocode kernel.UnLocode,
	eventType handling.Type,
) (RegisterHandlingEventCommand, error) {
	registerCommand := RegisterHandlingEventCommand{
		voyageNumber: voyageNumber,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setCompletionTime(completionTime),
		registerCommand.setTrackingID(trackingID),
		registerCommand.setUnLocode(unLocode),
		registerCommand.setEventType(eventType),
	); err != nil {
		return RegisterHandlingEventCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

// CompletionTime returns when the handling occurred in the real world.
func (c RegisterHandlingEventCommand) CompletionTime() time.Time {
	return c.completionTime
}

// TrackingID returns the tracking ID of the handled cargo.
func (c RegisterHandlingEventCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// VoyageNumber returns the reported voyage, or voyage.NoneNumber.
func (c RegisterHandlingEventCommand) VoyageNumber() voyage.Number {
	return c.voyageNumber
}

// UnLocode returns the UN locode where the handling occurred.
func (c RegisterHandlingEventCommand) UnLocode() kernel.UnLocode {
	return c.unLocode
}

// EventType returns the reported handling event type.
func (c RegisterHandlingEventCommand) EventType() handling.Type {
	return c.eventType
}

func (c *RegisterHandlingEventCommand) setCompletionTime(completionTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}

	c.completionTime = completionTime
	return nil
}

func (c *RegisterHandlingEventCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *RegisterHandlingEventCommand) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}

	c.unLocode = unLocode
	return nil
}

func (c *RegisterHandlingEventCommand) setEventType(eventType handling.Type) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}
