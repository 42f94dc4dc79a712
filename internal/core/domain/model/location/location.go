// Package location provides the Location reference entity of the cargo tracking
// domain. Locations are immutable reference data identified by their UN location
// code; cargo routing and handling always refer to locations by that code.
package location

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not created
// through the NewLocation constructor.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a port, terminal or other transport node where cargo can be
// received, loaded, unloaded or claimed. It is identified by its UnLocode and
// carries a human-readable name. Locations are immutable reference data.
type Location struct {
	unLocode kernel.UnLocode
	name     string

	isConstructed bool
}

// NewLocation creates a Location with the given UN location code and name.
// Both the code and the name are required.
func NewLocation(unLocode kernel.UnLocode, name string) (*Location, error) {
	loc := &Location{
		isConstructed: true,
	}

	if err := errors.Join(
		loc.setUnLocode(unLocode),
		loc.setName(name),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// Validate ensures the Location instance was properly constructed through NewLocation.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// UnLocode returns the UN location code identifying this location.
func (l *Location) UnLocode() kernel.UnLocode {
	return l.unLocode
}

// Name returns the human-readable location name, e.g. "Stockholm".
func (l *Location) Name() string {
	return l.name
}

// IsEqual compares two locations by their UN location codes.
// Locations are entities identified solely by their code.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.unLocode.IsEqual(other.unLocode)
}

// String returns a human-readable representation, e.g. "Stockholm (SESTO)".
func (l *Location) String() string {
	return fmt.Sprintf("%s (%s)", l.name, l.unLocode)
}

func (l *Location) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	l.unLocode = unLocode
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}
