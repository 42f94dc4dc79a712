package handling

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrHandlingEventIsNotConstructed is returned when a HandlingEvent was not
	// created through the NewHandlingEvent constructor.
	ErrHandlingEventIsNotConstructed = errors.New(
		"HandlingEvent must be created via NewHandlingEvent constructor")

	// ErrVoyageIsMissing reports a Load or Unload event submitted without a voyage.
	ErrVoyageIsMissing = errors.New("handling event type requires a voyage")

	// ErrVoyageNotAllowed reports a Receive, Claim or Customs event submitted with a voyage.
	ErrVoyageNotAllowed = errors.New("handling event type does not allow a voyage")
)

// HandlingEvent records one physical handling occurrence for a cargo: the
// cargo was received, loaded, unloaded, inspected by customs, or claimed, at
// a location, at a point in time.
//
// HandlingEvent is an immutable value object. Once part of a cargo's handling
// history it is never altered or removed; the history is append-only.
//
// The voyage field is present exactly when the event type requires it
// (Load, Unload) and absent (voyage.NoneNumber) otherwise.
type HandlingEvent struct { //nolint:recvcheck //using for validation
	trackingID       kernel.TrackingID
	eventType        Type
	location         kernel.UnLocode
	voyageNumber     voyage.Number
	completionTime   time.Time
	registrationTime time.Time

	guard guard.ConstructorGuard
}

// NewHandlingEvent creates a HandlingEvent, enforcing the per-type voyage rule:
// Load and Unload must name a voyage, every other type must pass
// voyage.NoneNumber. completionTime is when the event happened in the real
// world; registrationTime is when it was reported to the system.
func NewHandlingEvent(
	trackingID kernel.TrackingID,
	eventType Type,
	location kernel.UnLocode,
	voyageNumber voyage.Number,
	completionTime time.Time,
	registrationTime time.Time,
) (HandlingEvent, error) {
	event := HandlingEvent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setTrackingID(trackingID),
		event.setEventType(eventType),
		event.setLocation(location),
		event.setCompletionTime(completionTime),
		event.setRegistrationTime(registrationTime),
	); err != nil {
		return HandlingEvent{}, err
	}

	if err := event.setVoyageNumber(voyageNumber); err != nil {
		return HandlingEvent{}, err
	}

	return event, nil
}

// Validate ensures the event was created through the constructor.
func (e HandlingEvent) Validate() error {
	return e.guard.Validate(ErrHandlingEventIsNotConstructed)
}

// TrackingID returns the tracking ID of the cargo this event concerns.
func (e HandlingEvent) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// EventType returns the type of handling that occurred.
func (e HandlingEvent) EventType() Type {
	return e.eventType
}

// Location returns the UN locode where the handling occurred.
func (e HandlingEvent) Location() kernel.UnLocode {
	return e.location
}

// VoyageNumber returns the voyage the cargo was loaded onto or unloaded from,
// or voyage.NoneNumber for event types that happen off-carrier.
func (e HandlingEvent) VoyageNumber() voyage.Number {
	return e.voyageNumber
}

// CompletionTime returns when the handling occurred in the real world.
func (e HandlingEvent) CompletionTime() time.Time {
	return e.completionTime
}

// RegistrationTime returns when the event was reported to the system.
func (e HandlingEvent) RegistrationTime() time.Time {
	return e.registrationTime
}

// IsEqual compares two handling events by their recorded occurrence: same
// cargo, type, location, voyage and completion time. Registration time is a
// bookkeeping detail and does not participate.
func (e HandlingEvent) IsEqual(other HandlingEvent) bool {
	return e.trackingID.IsEqual(other.trackingID) &&
		e.eventType == other.eventType &&
		e.location.IsEqual(other.location) &&
		e.voyageNumber.IsEqual(other.voyageNumber) &&
		e.completionTime.Equal(other.completionTime)
}

// String returns a human-readable one-line description of the event.
func (e HandlingEvent) String() string {
	if e.eventType.RequiresVoyage() {
		return fmt.Sprintf("%s %s at %s on voyage %s",
			e.eventType, e.trackingID, e.location, e.voyageNumber)
	}
	return fmt.Sprintf("%s %s at %s", e.eventType, e.trackingID, e.location)
}

func (e *HandlingEvent) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	e.trackingID = trackingID
	return nil
}

func (e *HandlingEvent) setEventType(eventType Type) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *HandlingEvent) setLocation(location kernel.UnLocode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *HandlingEvent) setVoyageNumber(voyageNumber voyage.Number) error {
	if e.eventType.RequiresVoyage() && voyageNumber.IsNone() {
		return fmt.Errorf("%w: %s", ErrVoyageIsMissing, e.eventType)
	}
	if e.eventType.ProhibitsVoyage() && !voyageNumber.IsNone() {
		return fmt.Errorf("%w: %s", ErrVoyageNotAllowed, e.eventType)
	}

	e.voyageNumber = voyageNumber
	return nil
}

func (e *HandlingEvent) setCompletionTime(completionTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	e.completionTime = completionTime
	return nil
}

func (e *HandlingEvent) setRegistrationTime(registrationTime time.Time) error {
	if registrationTime.IsZero() {
		return errs.NewValueIsRequiredError("registrationTime")
	}
	e.registrationTime = registrationTime
	return nil
}
