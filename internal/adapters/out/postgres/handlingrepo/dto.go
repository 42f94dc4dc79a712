// Package handlingrepo provides data transfer objects and mapping functions
// for the append-only handling event store.
package handlingrepo

import (
	"time"

	"github.com/google/uuid"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// HandlingEventDTO represents one recorded handling event row. Rows are
// inserted once and never updated; the surrogate id exists only because the
// domain identifies events by value.
type HandlingEventDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID       string    `gorm:"index"`
	EventType        int
	Location         string
	VoyageNumber     *string
	CompletionTime   time.Time
	RegistrationTime time.Time
}

// TableName specifies the database table name for handling events.
func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

// fromDomain converts a handling event to its database representation.
func fromDomain(event handling.HandlingEvent) HandlingEventDTO {
	dto := HandlingEventDTO{
		ID:               uuid.New(),
		TrackingID:       event.TrackingID().String(),
		EventType:        int(event.EventType()),
		Location:         event.Location().String(),
		CompletionTime:   event.CompletionTime(),
		RegistrationTime: event.RegistrationTime(),
	}

	if !event.VoyageNumber().IsNone() {
		number := event.VoyageNumber().String()
		dto.VoyageNumber = &number
	}

	return dto
}

// toDomain converts a database DTO back to a handling event.
func toDomain(dto HandlingEventDTO) (handling.HandlingEvent, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	location, err := kernel.NewUnLocode(dto.Location)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	voyageNumber := voyage.NoneNumber
	if dto.VoyageNumber != nil {
		voyageNumber, err = voyage.NewNumber(*dto.VoyageNumber)
		if err != nil {
			return handling.HandlingEvent{}, err
		}
	}

	return handling.NewHandlingEvent(
		trackingID,
		handling.Type(dto.EventType),
		location,
		voyageNumber,
		dto.CompletionTime,
		dto.RegistrationTime,
	)
}
