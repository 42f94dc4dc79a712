package handling_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/handling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCanonicalOrder(t *testing.T) {
	tid := trackingID(t, "ABC123")

	t.Run("orders by completion time ascending", func(t *testing.T) {
		unload := event(t, tid, handling.Unload, "USNYC", "V100", day(3), day(3))
		receive := event(t, tid, handling.Receive, "CNHKG", "", day(1), day(1))
		load := event(t, tid, handling.Load, "CNHKG", "V100", day(2), day(2))

		history := handling.NewHistory([]handling.HandlingEvent{unload, receive, load})

		events := history.EventsInCanonicalOrder()
		require.Len(t, events, 3)
		assert.True(t, events[0].IsEqual(receive))
		assert.True(t, events[1].IsEqual(load))
		assert.True(t, events[2].IsEqual(unload))
	})

	t.Run("breaks completion ties by registration time", func(t *testing.T) {
		late := event(t, tid, handling.Load, "CNHKG", "V100", day(1), day(5))
		early := event(t, tid, handling.Receive, "CNHKG", "", day(1), day(2))

		history := handling.NewHistory([]handling.HandlingEvent{late, early})

		events := history.EventsInCanonicalOrder()
		assert.True(t, events[0].IsEqual(early))
		assert.True(t, events[1].IsEqual(late))
	})

	t.Run("keeps insertion order for full ties", func(t *testing.T) {
		first := event(t, tid, handling.Receive, "CNHKG", "", day(1), day(1))
		second := event(t, tid, handling.Customs, "CNHKG", "", day(1), day(1))

		history := handling.NewHistory([]handling.HandlingEvent{first, second})

		events := history.EventsInCanonicalOrder()
		assert.True(t, events[0].IsEqual(first))
		assert.True(t, events[1].IsEqual(second))
	})
}

func TestHistoryAppend(t *testing.T) {
	tid := trackingID(t, "ABC123")

	t.Run("append leaves the receiver untouched", func(t *testing.T) {
		receive := event(t, tid, handling.Receive, "CNHKG", "", day(1), day(1))
		history := handling.NewHistory([]handling.HandlingEvent{receive})

		grown := history.Append(event(t, tid, handling.Load, "CNHKG", "V100", day(2), day(2)))

		assert.Equal(t, 1, history.Size())
		assert.Equal(t, 2, grown.Size())
	})

	t.Run("append inserts at the canonical position", func(t *testing.T) {
		load := event(t, tid, handling.Load, "CNHKG", "V100", day(2), day(2))
		history := handling.NewHistory([]handling.HandlingEvent{load})

		grown := history.Append(event(t, tid, handling.Receive, "CNHKG", "", day(1), day(1)))

		last, ok := grown.MostRecentlyCompletedEvent()
		require.True(t, ok)
		assert.True(t, last.IsEqual(load))
	})

	t.Run("appending never alters recorded events", func(t *testing.T) {
		receive := event(t, tid, handling.Receive, "CNHKG", "", day(1), day(1))
		history := handling.NewHistory([]handling.HandlingEvent{receive})

		history.Append(event(t, tid, handling.Load, "CNHKG", "V100", day(2), day(2)))

		events := history.EventsInCanonicalOrder()
		require.Len(t, events, 1)
		assert.True(t, events[0].IsEqual(receive))
	})
}

func TestHistoryMostRecentlyCompletedEvent(t *testing.T) {
	t.Run("empty history has no most recent event", func(t *testing.T) {
		_, ok := handling.EmptyHistory().MostRecentlyCompletedEvent()

		assert.False(t, ok)
		assert.True(t, handling.EmptyHistory().IsEmpty())
	})
}

func TestHistoryFilterOnCargo(t *testing.T) {
	t.Run("keeps only the given cargo's events", func(t *testing.T) {
		mine := trackingID(t, "ABC123")
		other := trackingID(t, "XYZ987")
		history := handling.NewHistory([]handling.HandlingEvent{
			event(t, mine, handling.Receive, "CNHKG", "", day(1), day(1)),
			event(t, other, handling.Receive, "JNTKO", "", day(1), day(1)),
			event(t, mine, handling.Load, "CNHKG", "V100", day(2), day(2)),
		})

		filtered := history.FilterOnCargo(mine)

		assert.Equal(t, 2, filtered.Size())
		for _, e := range filtered.EventsInCanonicalOrder() {
			assert.True(t, e.TrackingID().IsEqual(mine))
		}
	})
}
