package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/pkg/lock"
)

// SpecifyNewRouteCommandHandler handles the business logic for rerouting.
// Replacing the route specification recomputes the delivery snapshot against
// the full current history, so a cargo whose itinerary no longer satisfies
// the new specification flips to MISROUTED immediately.
type SpecifyNewRouteCommandHandler struct {
	uowFactory UoWFactory
	locker     *lock.KeyedMutex
}

// NewSpecifyNewRouteCommandHandler creates a handler for rerouting operations.
func NewSpecifyNewRouteCommandHandler(
	uowFactory UoWFactory,
	locker *lock.KeyedMutex,
) SpecifyNewRouteCommandHandler {
	return SpecifyNewRouteCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the reroute command.
// Reads the cargo and its full handling history, replaces the route
// specification and persists the cargo with its recomputed delivery snapshot.
func (h *SpecifyNewRouteCommandHandler) Handle(ctx context.Context, cmd SpecifyNewRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	routeSpecification, err := cargo.NewRouteSpecification(cmd.Origin(), cmd.Destination(), cmd.ArrivalDeadline())
	if err != nil {
		return err
	}

	unlock := h.locker.Lock(cmd.TrackingID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.SpecifyNewRoute(routeSpecification, history); err != nil {
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
