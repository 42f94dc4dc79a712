package handling_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/require"
)

func unLocode(t *testing.T, code string) kernel.UnLocode {
	t.Helper()
	u, err := kernel.NewUnLocode(code)
	require.NoError(t, err)
	return u
}

func trackingID(t *testing.T, id string) kernel.TrackingID {
	t.Helper()
	tid, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	return tid
}

func voyageNumber(t *testing.T, number string) voyage.Number {
	t.Helper()
	n, err := voyage.NewNumber(number)
	require.NoError(t, err)
	return n
}

func day(d int) time.Time {
	return time.Date(2009, 3, d, 0, 0, 0, 0, time.UTC)
}

func event(
	t *testing.T,
	tid kernel.TrackingID,
	eventType handling.Type,
	locationCode string,
	voyageNum string,
	completionTime time.Time,
	registrationTime time.Time,
) handling.HandlingEvent {
	t.Helper()

	number := voyage.NoneNumber
	if voyageNum != "" {
		number = voyageNumber(t, voyageNum)
	}

	e, err := handling.NewHandlingEvent(tid, eventType, unLocode(t, locationCode), number, completionTime, registrationTime)
	require.NoError(t, err)
	return e
}
