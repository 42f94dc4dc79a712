// Package cargorepo provides data transfer objects and mapping functions for
// cargo persistence. The cargo aggregate is flattened into two tables: the
// cargos row carries the route specification and the derived delivery
// snapshot, the itinerary_legs rows carry the assigned itinerary in leg
// order.
package cargorepo

import (
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// CargoDTO represents the database structure for persisting cargo aggregates.
// The delivery snapshot is denormalized into nullable columns so the tracking
// query can read it without touching the domain.
type CargoDTO struct {
	TrackingID              string `gorm:"primaryKey"`
	Origin                  string
	Destination             string
	ArrivalDeadline         time.Time
	TransportStatus         int
	RoutingStatus           int
	LastKnownLocation       *string
	CurrentVoyage           *string
	IsMisdirected           bool
	Eta                     *time.Time
	NextEventType           *int
	NextLocation            *string
	NextVoyage              *string
	IsUnloadedAtDestination bool
	Legs                    []LegDTO `gorm:"foreignKey:TrackingID;references:TrackingID"`
}

// TableName specifies the database table name for cargo rows.
func (CargoDTO) TableName() string {
	return "cargos"
}

// LegDTO represents one itinerary leg row. LegIndex preserves leg order.
type LegDTO struct {
	TrackingID     string `gorm:"primaryKey"`
	LegIndex       int    `gorm:"primaryKey"`
	VoyageNumber   string
	LoadLocation   string
	UnloadLocation string
	LoadTime       time.Time
	UnloadTime     time.Time
}

// TableName specifies the database table name for itinerary legs.
func (LegDTO) TableName() string {
	return "itinerary_legs"
}

// fromDomain converts a cargo domain aggregate to its database
// representation, flattening the delivery snapshot into nullable columns.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	spec := aggregate.RouteSpecification()
	delivery := aggregate.Delivery()

	dto := CargoDTO{
		TrackingID:              aggregate.TrackingID().String(),
		Origin:                  spec.Origin().String(),
		Destination:             spec.Destination().String(),
		ArrivalDeadline:         spec.ArrivalDeadline(),
		TransportStatus:         int(delivery.TransportStatus()),
		RoutingStatus:           int(delivery.RoutingStatus()),
		IsMisdirected:           delivery.IsMisdirected(),
		IsUnloadedAtDestination: delivery.IsUnloadedAtDestination(),
	}

	if location, ok := delivery.LastKnownLocation(); ok {
		code := location.String()
		dto.LastKnownLocation = &code
	}
	if !delivery.CurrentVoyage().IsNone() {
		number := delivery.CurrentVoyage().String()
		dto.CurrentVoyage = &number
	}
	if eta, ok := delivery.EstimatedTimeOfArrival(); ok {
		dto.Eta = &eta
	}
	if activity, ok := delivery.NextExpectedActivity(); ok {
		eventType := int(activity.EventType())
		location := activity.Location().String()
		dto.NextEventType = &eventType
		dto.NextLocation = &location
		if !activity.VoyageNumber().IsNone() {
			number := activity.VoyageNumber().String()
			dto.NextVoyage = &number
		}
	}

	if itinerary, ok := aggregate.Itinerary(); ok {
		for i, leg := range itinerary.Legs() {
			dto.Legs = append(dto.Legs, LegDTO{
				TrackingID:     dto.TrackingID,
				LegIndex:       i,
				VoyageNumber:   leg.VoyageNumber().String(),
				LoadLocation:   leg.LoadLocation().String(),
				UnloadLocation: leg.UnloadLocation().String(),
				LoadTime:       leg.LoadTime(),
				UnloadTime:     leg.UnloadTime(),
			})
		}
	}

	return dto
}

// toDomain converts a database DTO to a cargo domain aggregate.
// Reconstructs the complete aggregate including the itinerary and delivery
// snapshot using RestoreCargo.
func toDomain(dto CargoDTO) (*cargo.Cargo, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	spec, err := toRouteSpecification(dto)
	if err != nil {
		return nil, err
	}

	itinerary, err := toItinerary(dto.Legs)
	if err != nil {
		return nil, err
	}

	delivery, err := toDelivery(dto)
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(trackingID, spec, itinerary, delivery)
}

func toRouteSpecification(dto CargoDTO) (cargo.RouteSpecification, error) {
	origin, err := kernel.NewUnLocode(dto.Origin)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}

	destination, err := kernel.NewUnLocode(dto.Destination)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}

	return cargo.NewRouteSpecification(origin, destination, dto.ArrivalDeadline)
}

func toItinerary(legs []LegDTO) (cargo.Itinerary, error) {
	if len(legs) == 0 {
		return cargo.Itinerary{}, nil
	}

	domainLegs := make([]cargo.Leg, 0, len(legs))
	for _, dto := range legs {
		voyageNumber, err := voyage.NewNumber(dto.VoyageNumber)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		loadLocation, err := kernel.NewUnLocode(dto.LoadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		unloadLocation, err := kernel.NewUnLocode(dto.UnloadLocation)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		leg, err := cargo.NewLeg(voyageNumber, loadLocation, unloadLocation, dto.LoadTime, dto.UnloadTime)
		if err != nil {
			return cargo.Itinerary{}, err
		}
		domainLegs = append(domainLegs, leg)
	}

	return cargo.NewItinerary(domainLegs)
}

func toDelivery(dto CargoDTO) (cargo.Delivery, error) {
	restored := cargo.RestoredDelivery{
		TransportStatus:         cargo.TransportStatus(dto.TransportStatus),
		RoutingStatus:           cargo.RoutingStatus(dto.RoutingStatus),
		CurrentVoyage:           voyage.NoneNumber,
		IsMisdirected:           dto.IsMisdirected,
		EstimatedTimeOfArrival:  dto.Eta,
		IsUnloadedAtDestination: dto.IsUnloadedAtDestination,
	}

	if dto.LastKnownLocation != nil {
		location, err := kernel.NewUnLocode(*dto.LastKnownLocation)
		if err != nil {
			return cargo.Delivery{}, err
		}
		restored.LastKnownLocation = &location
	}

	if dto.CurrentVoyage != nil {
		number, err := voyage.NewNumber(*dto.CurrentVoyage)
		if err != nil {
			return cargo.Delivery{}, err
		}
		restored.CurrentVoyage = number
	}

	if dto.NextEventType != nil && dto.NextLocation != nil {
		activity, err := toNextActivity(dto)
		if err != nil {
			return cargo.Delivery{}, err
		}
		restored.NextExpectedActivity = &activity
	}

	return cargo.RestoreDelivery(restored), nil
}

func toNextActivity(dto CargoDTO) (cargo.HandlingActivity, error) {
	location, err := kernel.NewUnLocode(*dto.NextLocation)
	if err != nil {
		return cargo.HandlingActivity{}, err
	}

	voyageNumber := voyage.NoneNumber
	if dto.NextVoyage != nil {
		voyageNumber, err = voyage.NewNumber(*dto.NextVoyage)
		if err != nil {
			return cargo.HandlingActivity{}, err
		}
	}

	return cargo.NewHandlingActivity(handling.Type(*dto.NextEventType), location, voyageNumber)
}
