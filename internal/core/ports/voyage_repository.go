package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageRepository defines the read contract for voyage reference data.
type VoyageRepository interface {
	// Get retrieves a voyage with its schedule by voyage number.
	Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)

	// Exists reports whether a voyage with the given number is known.
	Exists(ctx context.Context, number voyage.Number) (bool, error)

	// GetAll retrieves every known voyage. Used by route candidate
	// generation to walk the schedules.
	GetAll(ctx context.Context) ([]*voyage.Voyage, error)
}
