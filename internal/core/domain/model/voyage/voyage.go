// Package voyage provides the Voyage reference entity of the cargo tracking
// domain. A voyage is a uniquely identified series of carrier movements that
// cargo legs and handling events refer to by voyage number.
package voyage

import (
	"errors"
	"strings"

	"cargotracker/internal/pkg/errs"
)

var (
	// ErrVoyageIsNotConstructed is returned when a Voyage instance was not created
	// through the NewVoyage constructor.
	ErrVoyageIsNotConstructed = errors.New("Voyage must be created via NewVoyage constructor")

	// ErrNumberIsNotConstructed is returned when attempting to use an improperly
	// initialized voyage Number.
	ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"voyage number must be created via NewNumber constructor")
)

// Number uniquely identifies a voyage, e.g. "V100".
// It is an immutable value object; the zero value represents "no voyage"
// (see NoneNumber) and fails Validate.
type Number struct {
	number string
}

// NoneNumber is the pseudo-value representing "no voyage". It is used where a
// cargo is not aboard a carrier, and is never a valid identifier of an actual
// voyage.
var NoneNumber = Number{}

// NewNumber creates a voyage Number from its string form.
func NewNumber(number string) (Number, error) {
	if number == "" {
		return Number{}, errs.NewValueIsRequiredError("voyageNumber")
	}
	if strings.TrimSpace(number) != number {
		return Number{}, errs.NewValueIsInvalidError("voyageNumber")
	}

	return Number{number: number}, nil
}

// Validate checks if the Number identifies an actual voyage.
// The zero value (NoneNumber) fails with ErrNumberIsNotConstructed.
func (n Number) Validate() error {
	if n.number == "" {
		return ErrNumberIsNotConstructed
	}
	return nil
}

// IsNone reports whether this is the "no voyage" pseudo-value.
func (n Number) IsNone() bool {
	return n.number == ""
}

// String returns the voyage number in its string form, or "NONE" for the
// "no voyage" pseudo-value.
func (n Number) String() string {
	if n.IsNone() {
		return "NONE"
	}
	return n.number
}

// IsEqual compares two voyage numbers for equality.
func (n Number) IsEqual(other Number) bool {
	return n.number == other.number
}

// Voyage is a vessel voyage: a voyage number plus the ordered schedule of
// carrier movements the vessel performs. Voyages are immutable reference data.
type Voyage struct {
	number   Number
	schedule Schedule

	isConstructed bool
}

// NewVoyage creates a Voyage with the given number and schedule.
func NewVoyage(number Number, schedule Schedule) (*Voyage, error) {
	if err := errors.Join(number.Validate(), schedule.Validate()); err != nil {
		return nil, err
	}

	return &Voyage{
		number:        number,
		schedule:      schedule,
		isConstructed: true,
	}, nil
}

// Validate ensures the Voyage instance was properly constructed.
func (v *Voyage) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVoyageIsNotConstructed
	}
	return nil
}

// Number returns the voyage number identifying this voyage.
func (v *Voyage) Number() Number {
	return v.number
}

// Schedule returns the ordered carrier movements of this voyage.
func (v *Voyage) Schedule() Schedule {
	return v.schedule
}

// IsEqual compares two voyages by their voyage numbers.
func (v *Voyage) IsEqual(other *Voyage) bool {
	return other != nil && v.number.IsEqual(other.number)
}

// String returns the voyage number in its string form.
func (v *Voyage) String() string {
	return v.number.String()
}
