package handling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

var (
	// ErrUnknownCargo reports a handling report naming a tracking ID for which
	// no cargo exists.
	ErrUnknownCargo = errors.New("no cargo exists with this tracking ID")

	// ErrUnknownLocation reports a handling report naming an unknown UN locode.
	ErrUnknownLocation = errors.New("no location exists with this UN locode")

	// ErrUnknownVoyage reports a handling report naming an unknown voyage number.
	ErrUnknownVoyage = errors.New("no voyage exists with this voyage number")
)

// Lookup capabilities the factory needs from the surrounding application.
// They are satisfied by the repository ports; the factory only ever asks
// about existence.
type (
	// CargoLookup answers whether a cargo with a given tracking ID is booked.
	CargoLookup interface {
		Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
	}

	// LocationLookup answers whether a location with a given UN locode exists.
	LocationLookup interface {
		Exists(ctx context.Context, unLocode kernel.UnLocode) (bool, error)
	}

	// VoyageLookup answers whether a voyage with a given number exists.
	VoyageLookup interface {
		Exists(ctx context.Context, number voyage.Number) (bool, error)
	}
)

// EventFactory validates raw handling reports against reference data and
// produces valid HandlingEvents. Validation is purely structural: the factory
// checks that the cargo, location and voyage exist and that the voyage rule
// for the event type holds, but never checks the event against the cargo's
// itinerary. A structurally valid but implausible event (wrong place, wrong
// order) is accepted here and surfaces later as misdirection in the derived
// delivery, not as a failure.
type EventFactory struct {
	cargos    CargoLookup
	voyages   VoyageLookup
	locations LocationLookup
	now       func() time.Time
}

// NewEventFactory creates an EventFactory backed by the given lookup
// capabilities. Registration times are taken from the wall clock.
func NewEventFactory(cargos CargoLookup, voyages VoyageLookup, locations LocationLookup) *EventFactory {
	return &EventFactory{
		cargos:    cargos,
		voyages:   voyages,
		locations: locations,
		now:       time.Now,
	}
}

// CreateEvent validates a raw handling report and produces a HandlingEvent
// with the registration time set to the current instant.
//
// Validation order, each failure a distinct reason and aborting with no side
// effect: cargo existence, location existence, then the per-type voyage rule
// (including voyage existence for Load and Unload). Pass voyage.NoneNumber
// for event types that happen off-carrier.
//
// Appending the returned event to the cargo's history and triggering delivery
// recomputation is the caller's responsibility.
func (f *EventFactory) CreateEvent(
	ctx context.Context,
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber voyage.Number,
	unLocode kernel.UnLocode,
	eventType Type,
) (HandlingEvent, error) {
	if err := errors.Join(trackingID.Validate(), unLocode.Validate(), eventType.Validate()); err != nil {
		return HandlingEvent{}, err
	}

	cargoExists, err := f.cargos.Exists(ctx, trackingID)
	if err != nil {
		return HandlingEvent{}, err
	}
	if !cargoExists {
		return HandlingEvent{}, fmt.Errorf("%w: %s", ErrUnknownCargo, trackingID)
	}

	locationExists, err := f.locations.Exists(ctx, unLocode)
	if err != nil {
		return HandlingEvent{}, err
	}
	if !locationExists {
		return HandlingEvent{}, fmt.Errorf("%w: %s", ErrUnknownLocation, unLocode)
	}

	if eventType.RequiresVoyage() {
		if voyageNumber.IsNone() {
			return HandlingEvent{}, fmt.Errorf("%w: %s", ErrVoyageIsMissing, eventType)
		}

		voyageExists, voyageErr := f.voyages.Exists(ctx, voyageNumber)
		if voyageErr != nil {
			return HandlingEvent{}, voyageErr
		}
		if !voyageExists {
			return HandlingEvent{}, fmt.Errorf("%w: %s", ErrUnknownVoyage, voyageNumber)
		}
	}

	return NewHandlingEvent(trackingID, eventType, unLocode, voyageNumber, completionTime, f.now())
}
