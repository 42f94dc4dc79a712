// Package locationrepo provides persistence for the location reference data.
// Locations are seeded at startup and read-only afterwards.
package locationrepo

import (
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationDTO represents one known shipping location row.
type LocationDTO struct {
	UnLocode string `gorm:"primaryKey"`
	Name     string
}

// TableName specifies the database table name for locations.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location to its database representation.
func fromDomain(loc *location.Location) LocationDTO {
	return LocationDTO{
		UnLocode: loc.UnLocode().String(),
		Name:     loc.Name(),
	}
}

// toDomain converts a database DTO back to a location.
func toDomain(dto LocationDTO) (*location.Location, error) {
	unLocode, err := kernel.NewUnLocode(dto.UnLocode)
	if err != nil {
		return nil, err
	}

	return location.NewLocation(unLocode, dto.Name)
}
