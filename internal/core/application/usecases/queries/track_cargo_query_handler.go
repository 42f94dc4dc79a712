package queries

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/pkg/errs"
)

// TrackCargoQueryHandler reads the tracking view of a cargo straight from the
// database: the persisted delivery projection from the cargos table and the
// recorded handling events in canonical order.
type TrackCargoQueryHandler struct {
	db *gorm.DB
}

// NewTrackCargoQueryHandler creates a handler for cargo tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackCargoQueryHandler(db *gorm.DB) TrackCargoQueryHandler {
	return TrackCargoQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns an object-not-found error when no cargo with the tracking ID is
// booked.
func (h TrackCargoQueryHandler) Handle(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response, err := h.readCargo(ctx, query)
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	events, err := h.readHandlingEvents(ctx, query)
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}
	response.HandlingEvents = events

	return response, nil
}

func (h TrackCargoQueryHandler) readCargo(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	var row struct {
		TrackingID              string
		Origin                  string
		Destination             string
		ArrivalDeadline         sql.NullTime
		TransportStatus         int
		RoutingStatus           int
		LastKnownLocation       sql.NullString
		CurrentVoyage           sql.NullString
		IsMisdirected           bool
		Eta                     sql.NullTime
		NextEventType           sql.NullInt64
		NextLocation            sql.NullString
		NextVoyage              sql.NullString
		IsUnloadedAtDestination bool
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin,
			destination,
			arrival_deadline,
			transport_status,
			routing_status,
			last_known_location,
			current_voyage,
			is_misdirected,
			eta,
			next_event_type,
			next_location,
			next_voyage,
			is_unloaded_at_destination
		FROM cargos
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Scan(&row)
	if result.Error != nil {
		return TrackCargoQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TrackCargoQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"trackingId", query.TrackingID(), gorm.ErrRecordNotFound)
	}

	response := TrackCargoQueryResponse{
		TrackingID:              row.TrackingID,
		Origin:                  row.Origin,
		Destination:             row.Destination,
		TransportStatus:         cargo.TransportStatus(row.TransportStatus).String(),
		RoutingStatus:           cargo.RoutingStatus(row.RoutingStatus).String(),
		IsMisdirected:           row.IsMisdirected,
		IsUnloadedAtDestination: row.IsUnloadedAtDestination,
	}
	if row.ArrivalDeadline.Valid {
		response.ArrivalDeadline = row.ArrivalDeadline.Time
	}
	if row.LastKnownLocation.Valid {
		response.LastKnownLocation = &row.LastKnownLocation.String
	}
	if row.CurrentVoyage.Valid && row.CurrentVoyage.String != "" {
		response.CurrentVoyage = &row.CurrentVoyage.String
	}
	if row.Eta.Valid {
		eta := row.Eta.Time
		response.EstimatedTimeOfArrival = &eta
	}
	if activity := formatNextActivity(row.NextEventType, row.NextLocation, row.NextVoyage); activity != "" {
		response.NextExpectedActivity = &activity
	}

	return response, nil
}

func (h TrackCargoQueryHandler) readHandlingEvents(
	ctx context.Context,
	query TrackCargoQuery,
) ([]TrackCargoHandlingEventResponse, error) {
	events := make([]TrackCargoHandlingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			location,
			voyage_number,
			completion_time
		FROM handling_events
		WHERE tracking_id = ?
		ORDER BY completion_time, registration_time
	`, query.TrackingID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eventType      int
			location       string
			voyageNumber   sql.NullString
			completionTime sql.NullTime
		)

		if err = rows.Scan(&eventType, &location, &voyageNumber, &completionTime); err != nil {
			return nil, err
		}

		eventResp := TrackCargoHandlingEventResponse{
			EventType: handling.Type(eventType).String(),
			Location:  location,
		}
		if voyageNumber.Valid && voyageNumber.String != "" {
			eventResp.VoyageNumber = &voyageNumber.String
		}
		if completionTime.Valid {
			eventResp.CompletionTime = completionTime.Time
		}
		events = append(events, eventResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// formatNextActivity renders the persisted next-expected-activity columns as
// a single display string, e.g. "LOAD in CNHKG on voyage V100". Returns the
// empty string when no activity is stored.
func formatNextActivity(eventType sql.NullInt64, location, voyageNumber sql.NullString) string {
	if !eventType.Valid || !location.Valid {
		return ""
	}

	name := handling.Type(eventType.Int64).String()
	if voyageNumber.Valid && voyageNumber.String != "" {
		return fmt.Sprintf("%s in %s on voyage %s", name, location.String, voyageNumber.String)
	}
	return fmt.Sprintf("%s in %s", name, location.String)
}
