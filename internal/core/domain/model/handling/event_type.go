package handling

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// Type classifies a handling event by the physical action it records.
//
// The voyage requirement differs per type: Load and Unload happen on a
// carrier and must name a voyage, while Receive, Claim and Customs happen
// in a port or terminal and must not.
type Type int

const (
	// Unknown represents an invalid or undefined handling event type.
	// This value (0) helps catch uninitialized Type values.
	Unknown Type = iota

	// Receive records the cargo being received into the transport network.
	Receive

	// Load records the cargo being loaded onto a carrier on some voyage.
	Load

	// Unload records the cargo being unloaded from a carrier on some voyage.
	Unload

	// Customs records a customs inspection of the cargo.
	Customs

	// Claim records the cargo being claimed by its receiver. This ends the
	// cargo lifecycle.
	Claim
)

// getTypeStrings returns a map of Type values to their string representations.
// All types are included for string conversion.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown: "UNKNOWN",
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Customs: "CUSTOMS",
		Claim:   "CLAIM",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
// Only valid types are included to support validation and parsing.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Customs: "CUSTOMS",
		Claim:   "CLAIM",
	}
}

// TypeFromString parses a handling event type from its string form, e.g. "LOAD".
// Returns an error for unrecognized values.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("eventType",
		fmt.Errorf("%q is not a valid handling event type", s))
}

// Validate checks if the Type value is valid.
// Valid types are: Receive, Load, Unload, Customs, Claim.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("eventType",
			fmt.Errorf("%d is not a valid handling event type", t))
	}
	return nil
}

// RequiresVoyage reports whether events of this type must name a voyage.
func (t Type) RequiresVoyage() bool {
	return t == Load || t == Unload
}

// ProhibitsVoyage reports whether events of this type must not name a voyage.
func (t Type) ProhibitsVoyage() bool {
	return !t.RequiresVoyage()
}

// String returns the upper-case name of the type, e.g. "RECEIVE".
// Implements the fmt.Stringer interface and is safe on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
