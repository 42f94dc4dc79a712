package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
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

func leg(t *testing.T, voyageNum, from, to string, loadDay, unloadDay int) cargo.Leg {
	t.Helper()
	l, err := cargo.NewLeg(
		voyageNumber(t, voyageNum),
		unLocode(t, from),
		unLocode(t, to),
		day(loadDay),
		day(unloadDay),
	)
	require.NoError(t, err)
	return l
}

func itinerary(t *testing.T, legs ...cargo.Leg) cargo.Itinerary {
	t.Helper()
	i, err := cargo.NewItinerary(legs)
	require.NoError(t, err)
	return i
}

func routeSpecification(t *testing.T, origin, destination string, deadlineDay int) cargo.RouteSpecification {
	t.Helper()
	s, err := cargo.NewRouteSpecification(
		unLocode(t, origin),
		unLocode(t, destination),
		day(deadlineDay),
	)
	require.NoError(t, err)
	return s
}

func event(
	t *testing.T,
	tid kernel.TrackingID,
	eventType handling.Type,
	locationCode string,
	voyageNum string,
	completionDay int,
) handling.HandlingEvent {
	t.Helper()

	number := voyage.NoneNumber
	if voyageNum != "" {
		number = voyageNumber(t, voyageNum)
	}

	e, err := handling.NewHandlingEvent(
		tid,
		eventType,
		unLocode(t, locationCode),
		number,
		day(completionDay),
		day(completionDay).Add(time.Hour),
	)
	require.NoError(t, err)
	return e
}

// hongkongToStockholm is the three-leg plan used across the derivation tests:
// Hongkong to New York on V100, on to Chicago on V200, on to Stockholm on V200.
func hongkongToStockholm(t *testing.T) cargo.Itinerary {
	t.Helper()
	return itinerary(t,
		leg(t, "V100", "CNHKG", "USNYC", 1, 3),
		leg(t, "V200", "USNYC", "USCHI", 4, 6),
		leg(t, "V200", "USCHI", "SESTO", 7, 11),
	)
}

// tokyoToStockholm is the recovery plan assigned after a misdirection to
// Tokyo: Tokyo to Hamburg on V300, on to Stockholm on V400.
func tokyoToStockholm(t *testing.T) cargo.Itinerary {
	t.Helper()
	return itinerary(t,
		leg(t, "V300", "JNTKO", "DEHAM", 8, 12),
		leg(t, "V400", "DEHAM", "SESTO", 14, 15),
	)
}
