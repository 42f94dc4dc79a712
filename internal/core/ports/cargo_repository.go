// Package ports defines repository and service interfaces for the cargo
// tracking domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
// Provides methods for storing, retrieving, and querying cargos together
// with their route specification, itinerary and derived delivery snapshot.
type CargoRepository interface {
	// Add persists a newly booked cargo aggregate to storage.
	// The cargo must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo aggregate.
	// The cargo must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a cargo aggregate by its tracking ID.
	// Returns the complete cargo with its current itinerary and delivery.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// Exists reports whether a cargo with the given tracking ID is booked.
	Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)

	// GetAll retrieves every booked cargo. Used by the inspection job to
	// sweep for cargos whose delivery snapshot needs attention.
	GetAll(ctx context.Context) ([]*cargo.Cargo, error)
}
