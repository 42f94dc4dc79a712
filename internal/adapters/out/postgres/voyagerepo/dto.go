// Package voyagerepo provides persistence for the voyage reference data.
// A voyage row carries the number; its schedule lives in carrier_movements
// rows ordered by movement_index.
package voyagerepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageDTO represents one voyage row.
type VoyageDTO struct {
	VoyageNumber string               `gorm:"primaryKey"`
	Movements    []CarrierMovementDTO `gorm:"foreignKey:VoyageNumber;references:VoyageNumber"`
}

// TableName specifies the database table name for voyages.
func (VoyageDTO) TableName() string {
	return "voyages"
}

// CarrierMovementDTO represents one carrier movement of a voyage schedule.
type CarrierMovementDTO struct {
	VoyageNumber      string `gorm:"primaryKey"`
	MovementIndex     int    `gorm:"primaryKey"`
	DepartureLocation string
	ArrivalLocation   string
	DepartureTime     time.Time
	ArrivalTime       time.Time
}

// TableName specifies the database table name for carrier movements.
func (CarrierMovementDTO) TableName() string {
	return "carrier_movements"
}

// fromDomain converts a voyage to its database representation.
func fromDomain(v *voyage.Voyage) VoyageDTO {
	dto := VoyageDTO{
		VoyageNumber: v.Number().String(),
	}

	for i, movement := range v.Schedule().Movements() {
		dto.Movements = append(dto.Movements, CarrierMovementDTO{
			VoyageNumber:      dto.VoyageNumber,
			MovementIndex:     i,
			DepartureLocation: movement.DepartureLocation().String(),
			ArrivalLocation:   movement.ArrivalLocation().String(),
			DepartureTime:     movement.DepartureTime(),
			ArrivalTime:       movement.ArrivalTime(),
		})
	}

	return dto
}

// toDomain converts a database DTO back to a voyage with its schedule.
func toDomain(dto VoyageDTO) (*voyage.Voyage, error) {
	number, err := voyage.NewNumber(dto.VoyageNumber)
	if err != nil {
		return nil, err
	}

	movements := make([]voyage.CarrierMovement, 0, len(dto.Movements))
	for _, m := range dto.Movements {
		departure, err := kernel.NewUnLocode(m.DepartureLocation)
		if err != nil {
			return nil, err
		}
		arrival, err := kernel.NewUnLocode(m.ArrivalLocation)
		if err != nil {
			return nil, err
		}
		movement, err := voyage.NewCarrierMovement(departure, arrival, m.DepartureTime, m.ArrivalTime)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		return nil, err
	}

	return voyage.NewVoyage(number, schedule)
}
