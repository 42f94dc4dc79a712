package commands

import (
	"context"
	"fmt"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/ports"
)

// BookCargoCommandHandler handles the business logic for cargo booking.
// Verifies the origin and destination against location reference data,
// creates the cargo with its route specification and persists it. A freshly
// booked cargo has no itinerary and a NOT_RECEIVED / NOT_ROUTED delivery.
type BookCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	locations  ports.LocationRepository
}

// NewBookCargoCommandHandler creates a handler for cargo booking operations.
// Requires a CargoUoWFactory for transactional persistence and the location
// repository for reference data checks.
func NewBookCargoCommandHandler(
	uowFactory CargoUoWFactory,
	locations ports.LocationRepository,
) BookCargoCommandHandler {
	return BookCargoCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
	}
}

// Handle processes the booking command.
// Both locations must exist; the tracking ID must not already be booked.
// Uses a transaction to ensure the cargo is properly persisted or rolled back
// on error.
func (h *BookCargoCommandHandler) Handle(ctx context.Context, cmd BookCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	originExists, err := h.locations.Exists(ctx, cmd.Origin())
	if err != nil {
		return err
	}
	if !originExists {
		return fmt.Errorf("%w: %s", handling.ErrUnknownLocation, cmd.Origin())
	}

	destinationExists, err := h.locations.Exists(ctx, cmd.Destination())
	if err != nil {
		return err
	}
	if !destinationExists {
		return fmt.Errorf("%w: %s", handling.ErrUnknownLocation, cmd.Destination())
	}

	routeSpecification, err := cargo.NewRouteSpecification(cmd.Origin(), cmd.Destination(), cmd.ArrivalDeadline())
	if err != nil {
		return err
	}

	newCargo, err := cargo.NewCargo(cmd.TrackingID(), routeSpecification)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CargoRepository().Add(ctx, newCargo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
