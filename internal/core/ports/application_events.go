package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
)

// ApplicationEvents is the notification point fired after successful
// mutations, carrying the affected tracking ID. Implementations relay the
// notification to whatever the surrounding application wires in: alerting,
// cargo inspection, an outbound message broker.
type ApplicationEvents interface {
	// CargoWasHandled is fired after a handling event was registered for the
	// cargo.
	CargoWasHandled(ctx context.Context, trackingID kernel.TrackingID)

	// CargoWasMisdirected is fired when inspection finds the cargo's latest
	// handling off its itinerary.
	CargoWasMisdirected(ctx context.Context, trackingID kernel.TrackingID)

	// CargoHasArrived is fired when inspection finds the cargo unloaded at
	// its destination.
	CargoHasArrived(ctx context.Context, trackingID kernel.TrackingID)
}
