package cargo

import "cargotracker/internal/pkg/errs"

// TransportStatus describes where a cargo physically is with respect to the
// transport network: not yet in the system, sitting in a port, riding a
// carrier, or already claimed by the customer.
type TransportStatus int

const (
	// TransportUnknown is the zero value; it is never derived from a
	// well-formed handling history and signals a programming error.
	TransportUnknown TransportStatus = iota

	// NotReceived means no handling has been reported yet.
	NotReceived

	// InPort means the cargo was last received, unloaded or cleared by
	// customs and is waiting at a location.
	InPort

	// OnboardCarrier means the cargo was last loaded onto a voyage.
	OnboardCarrier

	// Claimed means the customer has taken delivery of the cargo.
	Claimed
)

func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		TransportUnknown: "UNKNOWN",
		NotReceived:      "NOT_RECEIVED",
		InPort:           "IN_PORT",
		OnboardCarrier:   "ONBOARD_CARRIER",
		Claimed:          "CLAIMED",
	}
}

// String returns the name of the transport status.
func (s TransportStatus) String() string {
	return getTransportStatusStrings()[s]
}

// TransportStatusFromString restores a TransportStatus from its name.
func TransportStatusFromString(name string) (TransportStatus, error) {
	for status, statusName := range getTransportStatusStrings() {
		if statusName == name {
			return status, nil
		}
	}
	return TransportUnknown, errs.NewValueIsInvalidError("name")
}
