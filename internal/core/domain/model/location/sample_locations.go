package location

import "cargotracker/internal/core/domain/model/kernel"

// Well-known sample locations used for seeding and tests.
var (
	Hongkong   = mustLocation("CNHKG", "Hongkong")
	Shanghai   = mustLocation("CNSHA", "Shanghai")
	Tokyo      = mustLocation("JNTKO", "Tokyo")
	Melbourne  = mustLocation("AUMEL", "Melbourne")
	NewYork    = mustLocation("USNYC", "New York")
	Chicago    = mustLocation("USCHI", "Chicago")
	Dallas     = mustLocation("USDAL", "Dallas")
	Hamburg    = mustLocation("DEHAM", "Hamburg")
	Rotterdam  = mustLocation("NLRTM", "Rotterdam")
	Gothenburg = mustLocation("SEGOT", "Gothenburg")
	Stockholm  = mustLocation("SESTO", "Stockholm")
	Helsinki   = mustLocation("FIHEL", "Helsinki")
)

// SampleLocations returns all well-known locations, for database seeding and
// in-memory lookup stubs.
func SampleLocations() []*Location {
	return []*Location{
		Hongkong, Shanghai, Tokyo, Melbourne, NewYork, Chicago,
		Dallas, Hamburg, Rotterdam, Gothenburg, Stockholm, Helsinki,
	}
}

func mustLocation(code, name string) *Location {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		panic(err)
	}
	loc, err := NewLocation(unLocode, name)
	if err != nil {
		panic(err)
	}
	return loc
}
