package commands

import (
	"context"

	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/lock"
)

// InspectCargoCommandHandler recomputes a cargo's delivery snapshot and
// raises notifications for the conditions the snapshot reveals: misdirection
// and arrival at the destination. It is typically triggered after each
// handling registration and periodically by the inspection job.
type InspectCargoCommandHandler struct {
	uowFactory UoWFactory
	appEvents  ports.ApplicationEvents
	locker     *lock.KeyedMutex
}

// NewInspectCargoCommandHandler creates a handler for cargo inspection.
func NewInspectCargoCommandHandler(
	uowFactory UoWFactory,
	appEvents ports.ApplicationEvents,
	locker *lock.KeyedMutex,
) InspectCargoCommandHandler {
	return InspectCargoCommandHandler{
		uowFactory: uowFactory,
		appEvents:  appEvents,
		locker:     locker,
	}
}

// Handle processes the inspection command.
// Notifications fire after the transaction commits, so a listener never
// observes a snapshot that was subsequently rolled back.
func (h *InspectCargoCommandHandler) Handle(ctx context.Context, cmd InspectCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(cmd.TrackingID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CargoRepository().Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().GetHistory(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	aggregate.DeriveDeliveryProgress(history)

	if err = uow.CargoRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	delivery := aggregate.Delivery()
	if delivery.IsMisdirected() {
		h.appEvents.CargoWasMisdirected(ctx, cmd.TrackingID())
	}
	if delivery.IsUnloadedAtDestination() {
		h.appEvents.CargoHasArrived(ctx, cmd.TrackingID())
	}

	return nil
}
