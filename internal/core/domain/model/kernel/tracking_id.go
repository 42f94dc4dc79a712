package kernel

import (
	"strings"

	"cargotracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed is returned when attempting to use an improperly
// initialized TrackingID. Tracking IDs must be created via NewTrackingID or
// GenerateTrackingID to ensure validity.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking ID must be created via NewTrackingID or GenerateTrackingID constructors")

// TrackingID uniquely identifies one cargo booking. It is assigned once at
// booking time and never reused. TrackingID is an immutable value object;
// the zero value is invalid and fails validation.
//
// Example:
//
//	id, err := kernel.NewTrackingID("ABC123")
//	if err != nil {
//	    // handle validation error
//	}
type TrackingID struct {
	id string
}

// NewTrackingID creates a TrackingID from its string form.
// The identifier must be non-empty; surrounding whitespace is rejected rather
// than trimmed so that stored and reported identifiers stay bit-identical.
func NewTrackingID(id string) (TrackingID, error) {
	if id == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}
	if strings.TrimSpace(id) != id {
		return TrackingID{}, errs.NewValueIsInvalidError("trackingId")
	}

	return TrackingID{id: id}, nil
}

// GenerateTrackingID produces a fresh unique TrackingID for a new booking.
// The identifier is derived from a random UUID, upper-cased for presentation.
func GenerateTrackingID() TrackingID {
	return TrackingID{id: strings.ToUpper(uuid.NewString())}
}

// Validate checks if the TrackingID was properly constructed.
// The zero value fails with ErrTrackingIDIsNotConstructed.
func (t TrackingID) Validate() error {
	if t.id == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}

// String returns the identifier in its canonical string form.
func (t TrackingID) String() string {
	return t.id
}

// IsEqual compares two tracking IDs for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}
