package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLegIsNotConstructed is returned when a Leg was not created through the
// NewLeg constructor.
var ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg constructor")

// Leg is one voyage segment of an itinerary: the cargo is loaded onto a
// voyage at one location and unloaded from it at another. Leg is an
// immutable value object.
type Leg struct { //nolint:recvcheck //using for validation
	voyageNumber   voyage.Number
	loadLocation   kernel.UnLocode
	unloadLocation kernel.UnLocode
	loadTime       time.Time
	unloadTime     time.Time

	guard guard.ConstructorGuard
}

// NewLeg creates a Leg on the given voyage between two distinct locations,
// loading before unloading.
func NewLeg(
	voyageNumber voyage.Number,
	loadLocation kernel.UnLocode,
	unloadLocation kernel.UnLocode,
	loadTime time.Time,
	unloadTime time.Time,
) (Leg, error) {
	leg := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leg.setVoyageNumber(voyageNumber),
		leg.setLoadLocation(loadLocation),
		leg.setUnloadLocation(unloadLocation),
		leg.setTimes(loadTime, unloadTime),
	); err != nil {
		return Leg{}, err
	}

	if loadLocation.IsEqual(unloadLocation) {
		return Leg{}, errs.NewValueIsInvalidErrorWithCause("unloadLocation",
			fmt.Errorf("leg loads and unloads at %s", loadLocation))
	}

	return leg, nil
}

// Validate ensures the leg was created through the constructor.
func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// VoyageNumber returns the voyage this leg travels on.
func (l Leg) VoyageNumber() voyage.Number {
	return l.voyageNumber
}

// LoadLocation returns the UN locode where the cargo is loaded.
func (l Leg) LoadLocation() kernel.UnLocode {
	return l.loadLocation
}

// UnloadLocation returns the UN locode where the cargo is unloaded.
func (l Leg) UnloadLocation() kernel.UnLocode {
	return l.unloadLocation
}

// LoadTime returns the scheduled load time.
func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadTime returns the scheduled unload time.
func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

// IsEqual compares two legs field by field.
func (l Leg) IsEqual(other Leg) bool {
	return l.voyageNumber.IsEqual(other.voyageNumber) &&
		l.loadLocation.IsEqual(other.loadLocation) &&
		l.unloadLocation.IsEqual(other.unloadLocation) &&
		l.loadTime.Equal(other.loadTime) &&
		l.unloadTime.Equal(other.unloadTime)
}

// String returns a human-readable one-line description of the leg.
func (l Leg) String() string {
	return fmt.Sprintf("%s -> %s on voyage %s", l.loadLocation, l.unloadLocation, l.voyageNumber)
}

func (l *Leg) setVoyageNumber(voyageNumber voyage.Number) error {
	if err := voyageNumber.Validate(); err != nil {
		return err
	}
	l.voyageNumber = voyageNumber
	return nil
}

func (l *Leg) setLoadLocation(loadLocation kernel.UnLocode) error {
	if err := loadLocation.Validate(); err != nil {
		return err
	}
	l.loadLocation = loadLocation
	return nil
}

func (l *Leg) setUnloadLocation(unloadLocation kernel.UnLocode) error {
	if err := unloadLocation.Validate(); err != nil {
		return err
	}
	l.unloadLocation = unloadLocation
	return nil
}

func (l *Leg) setTimes(loadTime, unloadTime time.Time) error {
	if loadTime.IsZero() || unloadTime.IsZero() {
		return errs.NewValueIsRequiredError("loadTime and unloadTime")
	}
	if !loadTime.Before(unloadTime) {
		return errs.NewValueIsInvalidErrorWithCause("unloadTime",
			fmt.Errorf("unload %s is not after load %s", unloadTime, loadTime))
	}

	l.loadTime = loadTime
	l.unloadTime = unloadTime
	return nil
}
