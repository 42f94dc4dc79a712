package voyage

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
)

// Well-known sample voyages used for seeding and tests. Together they cover
// the Hongkong - New York - Chicago - Stockholm route and the Tokyo - Hamburg -
// Stockholm rerouting alternative.
var (
	// V100: Hongkong - Tokyo - New York.
	V100 = mustVoyage("V100",
		movement("CNHKG", "JNTKO", date(2009, 3, 3), date(2009, 3, 5)),
		movement("JNTKO", "USNYC", date(2009, 3, 6), date(2009, 3, 9)),
	)

	// V200: New York - Chicago - Stockholm.
	V200 = mustVoyage("V200",
		movement("USNYC", "USCHI", date(2009, 3, 10), date(2009, 3, 12)),
		movement("USCHI", "SESTO", date(2009, 3, 13), date(2009, 3, 16)),
	)

	// V300: Tokyo - Rotterdam - Hamburg.
	V300 = mustVoyage("V300",
		movement("JNTKO", "NLRTM", date(2009, 3, 8), date(2009, 3, 10)),
		movement("NLRTM", "DEHAM", date(2009, 3, 11), date(2009, 3, 12)),
	)

	// V400: Hamburg - Stockholm - Helsinki.
	V400 = mustVoyage("V400",
		movement("DEHAM", "SESTO", date(2009, 3, 14), date(2009, 3, 15)),
		movement("SESTO", "FIHEL", date(2009, 3, 15), date(2009, 3, 16)),
	)
)

// SampleVoyages returns all well-known voyages, for database seeding and
// in-memory lookup stubs.
func SampleVoyages() []*Voyage {
	return []*Voyage{V100, V200, V300, V400}
}

func mustVoyage(number string, movements ...CarrierMovement) *Voyage {
	n, err := NewNumber(number)
	if err != nil {
		panic(err)
	}
	schedule, err := NewSchedule(movements)
	if err != nil {
		panic(err)
	}
	v, err := NewVoyage(n, schedule)
	if err != nil {
		panic(err)
	}
	return v
}

func movement(from, to string, departure, arrival time.Time) CarrierMovement {
	departureLocation, err := kernel.NewUnLocode(from)
	if err != nil {
		panic(err)
	}
	arrivalLocation, err := kernel.NewUnLocode(to)
	if err != nil {
		panic(err)
	}
	m, err := NewCarrierMovement(departureLocation, arrivalLocation, departure, arrival)
	if err != nil {
		panic(err)
	}
	return m
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
