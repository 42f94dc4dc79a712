package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/lock"
)

// RegisterHandlingEventCommandHandler handles incoming handling reports.
//
// A report passes through the handling event factory, which validates it
// against reference data and produces a HandlingEvent, or rejects it with a
// distinct reason and no side effect. A valid event is appended to the
// cargo's history and the cargo's delivery snapshot is recomputed from the
// complete updated history, all in one transaction. The factory never checks
// the event against the itinerary: an implausible but structurally valid
// report is registered and surfaces as misdirection in the derived delivery.
//
// After a successful registration the handler fires CargoWasHandled so the
// wired notification collaborator (cargo inspection, alerting) can react.
type RegisterHandlingEventCommandHandler struct {
	uowFactory   UoWFactory
	eventFactory *handling.EventFactory
	appEvents    ports.ApplicationEvents
	locker       *lock.KeyedMutex
}

// NewRegisterHandlingEventCommandHandler creates a handler for handling
// report registration.
func NewRegisterHandlingEventCommandHandler(
	uowFactory UoWFactory,
	eventFactory *handling.EventFactory,
	appEvents ports.ApplicationEvents,
	locker *lock.KeyedMutex,
) RegisterHandlingEventCommandHandler {
	return RegisterHandlingEventCommandHandler{
		uowFactory:   uowFactory,
		eventFactory: eventFactory,
		appEvents:    appEvents,
		locker:       locker,
	}
}

// Handle processes the handling report.
// On success the cargo's history has grown by one event, its delivery
// snapshot reflects the full updated history, and CargoWasHandled has fired.
// On failure the history and the cargo are left untouched.
func (h *RegisterHandlingEventCommandHandler) Handle(ctx context.Context, cmd RegisterHandlingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(cmd.TrackingID().String())
	defer unlock()

	event, err := h.eventFactory.CreateEvent(
		ctx,
		cmd.CompletionTime(),
		cmd.TrackingID(),
		cmd.VoyageNumber(),
		cmd.UnLocode(),
		cmd.EventType(),
	)
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

	if err = uow.HandlingEventRepository().Add(ctx, event); err != nil {
		return err
	}

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

	h.appEvents.CargoWasHandled(ctx, cmd.TrackingID())
	return nil
}
