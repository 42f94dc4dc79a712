package voyage

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// ErrCarrierMovementIsNotConstructed is returned when a CarrierMovement was not
// created through the NewCarrierMovement constructor.
var ErrCarrierMovementIsNotConstructed = errs.NewValueIsRequiredError(
	"carrier movement must be created via NewCarrierMovement constructor")

// CarrierMovement is one vessel movement from a departure location to an
// arrival location. It is an immutable value object.
type CarrierMovement struct {
	departureLocation kernel.UnLocode
	arrivalLocation   kernel.UnLocode
	departureTime     time.Time
	arrivalTime       time.Time
}

// NewCarrierMovement creates a CarrierMovement between two distinct locations.
// Departure must precede arrival.
func NewCarrierMovement(
	departureLocation kernel.UnLocode,
	arrivalLocation kernel.UnLocode,
	departureTime time.Time,
	arrivalTime time.Time,
) (CarrierMovement, error) {
	if err := errors.Join(departureLocation.Validate(), arrivalLocation.Validate()); err != nil {
		return CarrierMovement{}, err
	}
	if departureLocation.IsEqual(arrivalLocation) {
		return CarrierMovement{}, errs.NewValueIsInvalidErrorWithCause("arrivalLocation",
			fmt.Errorf("movement departs and arrives at %s", departureLocation))
	}
	if departureTime.IsZero() || arrivalTime.IsZero() {
		return CarrierMovement{}, errs.NewValueIsRequiredError("departureTime and arrivalTime")
	}
	if !departureTime.Before(arrivalTime) {
		return CarrierMovement{}, errs.NewValueIsInvalidErrorWithCause("arrivalTime",
			fmt.Errorf("arrival %s is not after departure %s", arrivalTime, departureTime))
	}

	return CarrierMovement{
		departureLocation: departureLocation,
		arrivalLocation:   arrivalLocation,
		departureTime:     departureTime,
		arrivalTime:       arrivalTime,
	}, nil
}

// Validate checks if the CarrierMovement was properly constructed.
func (m CarrierMovement) Validate() error {
	if m.departureLocation.Validate() != nil {
		return ErrCarrierMovementIsNotConstructed
	}
	return nil
}

// DepartureLocation returns the UN locode the movement departs from.
func (m CarrierMovement) DepartureLocation() kernel.UnLocode {
	return m.departureLocation
}

// ArrivalLocation returns the UN locode the movement arrives at.
func (m CarrierMovement) ArrivalLocation() kernel.UnLocode {
	return m.arrivalLocation
}

// DepartureTime returns the scheduled departure time.
func (m CarrierMovement) DepartureTime() time.Time {
	return m.departureTime
}

// ArrivalTime returns the scheduled arrival time.
func (m CarrierMovement) ArrivalTime() time.Time {
	return m.arrivalTime
}

// Schedule is the ordered, connected sequence of carrier movements of one
// voyage. It is an immutable value object.
type Schedule struct {
	movements []CarrierMovement
}

// NewSchedule creates a Schedule from a non-empty sequence of movements.
// Adjacent movements must connect: each movement departs where the previous
// one arrived, no earlier than the previous arrival.
func NewSchedule(movements []CarrierMovement) (Schedule, error) {
	if len(movements) == 0 {
		return Schedule{}, errs.NewValueIsRequiredError("movements")
	}

	for i, movement := range movements {
		if err := movement.Validate(); err != nil {
			return Schedule{}, err
		}
		if i == 0 {
			continue
		}

		previous := movements[i-1]
		if !previous.ArrivalLocation().IsEqual(movement.DepartureLocation()) {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause("movements",
				fmt.Errorf("movement %d departs from %s but the previous one arrives at %s",
					i, movement.DepartureLocation(), previous.ArrivalLocation()))
		}
		if movement.DepartureTime().Before(previous.ArrivalTime()) {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause("movements",
				fmt.Errorf("movement %d departs before the previous one arrives", i))
		}
	}

	return Schedule{movements: append([]CarrierMovement(nil), movements...)}, nil
}

// Validate checks if the Schedule was properly constructed.
// A voyage must have at least one carrier movement; "no voyage" is carried
// by NoneNumber, not by an empty schedule.
func (s Schedule) Validate() error {
	if len(s.movements) == 0 {
		return errs.NewValueIsRequiredError("movements")
	}
	return nil
}

// Movements returns the carrier movements in schedule order.
// The returned slice is a copy; the schedule itself stays immutable.
func (s Schedule) Movements() []CarrierMovement {
	return append([]CarrierMovement(nil), s.movements...)
}
