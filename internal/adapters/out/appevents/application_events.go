// Package appevents relays application event notifications: every event is
// logged, and a handled cargo is queued for inspection so misdirection and
// arrival are noticed right after the handling that caused them.
package appevents

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/kernel"
)

// ApplicationEventDispatcher implements ports.ApplicationEvents.
//
// CargoWasHandled triggers the inspection handler in a separate goroutine.
// The registration handler fires the event while it still holds the cargo's
// lock, so inspecting inline would deadlock on the same key.
type ApplicationEventDispatcher struct {
	logger    *slog.Logger
	inspector *commands.InspectCargoCommandHandler
}

// NewApplicationEventDispatcher creates a dispatcher that only logs.
// Attach the inspection handler with AttachInspector once it is built.
func NewApplicationEventDispatcher(logger *slog.Logger) *ApplicationEventDispatcher {
	return &ApplicationEventDispatcher{
		logger: logger.With("component", "application_events"),
	}
}

// AttachInspector wires the inspection handler that reacts to handled
// cargos. Called once during composition; the dispatcher and the inspection
// handler reference each other, so one of them has to be attached late.
func (d *ApplicationEventDispatcher) AttachInspector(inspector *commands.InspectCargoCommandHandler) {
	d.inspector = inspector
}

// CargoWasHandled queues an inspection of the handled cargo.
func (d *ApplicationEventDispatcher) CargoWasHandled(ctx context.Context, trackingID kernel.TrackingID) {
	d.logger.InfoContext(ctx, "Cargo was handled", "trackingId", trackingID.String())

	if d.inspector == nil {
		return
	}

	cmd, err := commands.NewInspectCargoCommand(trackingID)
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to build inspection command",
			"trackingId", trackingID.String(), "error", err)
		return
	}

	// The registration that fired this event must not be cancelled together
	// with the inspection it spawned.
	inspectCtx := context.WithoutCancel(ctx)
	go func() {
		if err := d.inspector.Handle(inspectCtx, cmd); err != nil {
			d.logger.ErrorContext(inspectCtx, "Cargo inspection failed",
				"trackingId", trackingID.String(), "error", err)
		}
	}()
}

// CargoWasMisdirected logs the misdirection alert.
func (d *ApplicationEventDispatcher) CargoWasMisdirected(ctx context.Context, trackingID kernel.TrackingID) {
	d.logger.WarnContext(ctx, "Cargo is misdirected", "trackingId", trackingID.String())
}

// CargoHasArrived logs the arrival notification.
func (d *ApplicationEventDispatcher) CargoHasArrived(ctx context.Context, trackingID kernel.TrackingID) {
	d.logger.InfoContext(ctx, "Cargo has arrived at destination", "trackingId", trackingID.String())
}
