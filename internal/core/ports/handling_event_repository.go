package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// HandlingEventRepository defines the persistence contract for the
// append-only handling event history. Recorded events are never updated or
// removed.
type HandlingEventRepository interface {
	// Add appends a handling event to the store.
	Add(ctx context.Context, event handling.HandlingEvent) error

	// GetHistory retrieves the complete handling history of one cargo in
	// canonical order.
	GetHistory(ctx context.Context, trackingID kernel.TrackingID) (handling.History, error)
}
