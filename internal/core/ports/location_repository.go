package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationRepository defines the read contract for location reference data.
// Locations are immutable reference data seeded at startup; there is no
// update path.
type LocationRepository interface {
	// Get retrieves a location by its UN locode.
	Get(ctx context.Context, unLocode kernel.UnLocode) (*location.Location, error)

	// Exists reports whether a location with the given UN locode is known.
	Exists(ctx context.Context, unLocode kernel.UnLocode) (bool, error)

	// GetAll retrieves every known location.
	GetAll(ctx context.Context) ([]*location.Location, error)
}
