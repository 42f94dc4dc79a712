package kernel

import (
	"regexp"
	"strings"

	"cargotracker/internal/pkg/errs"
)

// ErrUnLocodeIsNotConstructed is returned when attempting to use an improperly
// initialized UnLocode. UN location codes must be created via NewUnLocode.
var ErrUnLocodeIsNotConstructed = errs.NewValueIsRequiredError(
	"UN locode must be created via NewUnLocode constructor")

// unLocodePattern matches the United Nations location code format:
// a two-letter ISO country code followed by three letters or digits 2-9.
var unLocodePattern = regexp.MustCompile(`^[a-zA-Z]{2}[a-zA-Z2-9]{3}$`)

// UnLocode is the United Nations location code identifying a port, terminal
// or other transport node, e.g. "SESTO" for Stockholm. It is an immutable
// value object; the zero value is invalid and fails validation.
//
// Example:
//
//	code, err := kernel.NewUnLocode("CNHKG")
//	if err != nil {
//	    // handle validation error
//	}
type UnLocode struct {
	code string
}

// NewUnLocode creates a UnLocode from its five-character string form.
// Input is upper-cased to the canonical representation. Strings that do not
// match the UN location code format are rejected.
func NewUnLocode(code string) (UnLocode, error) {
	if code == "" {
		return UnLocode{}, errs.NewValueIsRequiredError("unLocode")
	}
	if !unLocodePattern.MatchString(code) {
		return UnLocode{}, errs.NewValueIsInvalidError("unLocode")
	}

	return UnLocode{code: strings.ToUpper(code)}, nil
}

// Validate checks if the UnLocode was properly constructed.
// The zero value fails with ErrUnLocodeIsNotConstructed.
func (u UnLocode) Validate() error {
	if u.code == "" {
		return ErrUnLocodeIsNotConstructed
	}
	return nil
}

// String returns the canonical upper-case five-character code.
func (u UnLocode) String() string {
	return u.code
}

// IsEqual compares two UN location codes for equality.
func (u UnLocode) IsEqual(other UnLocode) bool {
	return u.code == other.code
}
