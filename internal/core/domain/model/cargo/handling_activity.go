package cargo

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrHandlingActivityIsNotConstructed is returned when a HandlingActivity was
// not created through the NewHandlingActivity constructor.
var ErrHandlingActivityIsNotConstructed = errors.New(
	"HandlingActivity must be created via NewHandlingActivity constructor")

// HandlingActivity is a handling step that has not happened yet: an event
// type at a location, optionally on a voyage. It is the "what should happen
// next" counterpart of a HandlingEvent and is an immutable, comparable value
// object.
type HandlingActivity struct {
	eventType    handling.Type
	location     kernel.UnLocode
	voyageNumber voyage.Number

	guard guard.ConstructorGuard
}

// NewHandlingActivity creates a HandlingActivity. The voyage number must be
// present for LOAD and UNLOAD and absent (voyage.NoneNumber) for every other
// event type.
func NewHandlingActivity(
	eventType handling.Type,
	location kernel.UnLocode,
	voyageNumber voyage.Number,
) (HandlingActivity, error) {
	if eventType == handling.Unknown {
		return HandlingActivity{}, errs.NewValueIsRequiredError("eventType")
	}
	if err := location.Validate(); err != nil {
		return HandlingActivity{}, err
	}

	if eventType.RequiresVoyage() && voyageNumber.IsNone() {
		return HandlingActivity{}, errs.NewValueIsRequiredError("voyageNumber")
	}
	if eventType.ProhibitsVoyage() && !voyageNumber.IsNone() {
		return HandlingActivity{}, errs.NewValueIsInvalidErrorWithCause("voyageNumber",
			fmt.Errorf("%s activity must not reference a voyage", eventType))
	}

	return HandlingActivity{
		eventType:    eventType,
		location:     location,
		voyageNumber: voyageNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the activity was created through the constructor.
func (a HandlingActivity) Validate() error {
	return a.guard.Validate(ErrHandlingActivityIsNotConstructed)
}

// EventType returns the kind of handling the activity expects.
func (a HandlingActivity) EventType() handling.Type {
	return a.eventType
}

// Location returns where the handling is expected.
func (a HandlingActivity) Location() kernel.UnLocode {
	return a.location
}

// VoyageNumber returns the expected voyage, or voyage.NoneNumber when the
// activity is not tied to one.
func (a HandlingActivity) VoyageNumber() voyage.Number {
	return a.voyageNumber
}

// IsEqual compares two activities field by field.
func (a HandlingActivity) IsEqual(other HandlingActivity) bool {
	return a.eventType == other.eventType &&
		a.location.IsEqual(other.location) &&
		a.voyageNumber.IsEqual(other.voyageNumber)
}

// String returns a human-readable description of the activity.
func (a HandlingActivity) String() string {
	if a.voyageNumber.IsNone() {
		return fmt.Sprintf("%s in %s", a.eventType, a.location)
	}
	return fmt.Sprintf("%s in %s on voyage %s", a.eventType, a.location, a.voyageNumber)
}
