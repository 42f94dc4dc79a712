package commands

import (
	"context"

	"cargotracker/internal/pkg/lock"
)

// AssignRouteToCargoCommandHandler handles the business logic for itinerary
// assignment. Mutations to one cargo are serialized on its tracking ID, so a
// concurrent reroute or handling registration cannot interleave and lose the
// freshly derived delivery. Different cargos proceed in parallel.
type AssignRouteToCargoCommandHandler struct {
	uowFactory UoWFactory
	locker     *lock.KeyedMutex
}

// NewAssignRouteToCargoCommandHandler creates a handler for itinerary
// assignment operations.
func NewAssignRouteToCargoCommandHandler(
	uowFactory UoWFactory,
	locker *lock.KeyedMutex,
) AssignRouteToCargoCommandHandler {
	return AssignRouteToCargoCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the assignment command.
// Reads the cargo and its full handling history, attaches the itinerary and
// persists the cargo with its recomputed delivery snapshot.
func (h *AssignRouteToCargoCommandHandler) Handle(ctx context.Context, cmd AssignRouteToCargoCommand) error {
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

	if err = aggregate.AssignToRoute(cmd.Itinerary(), history); err != nil {
		return err
	}

	if err = uow.CargoRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
