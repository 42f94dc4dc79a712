package handling_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlingEvent(t *testing.T) {
	tid := trackingID(t, "ABC123")

	t.Run("should create load event with voyage", func(t *testing.T) {
		e, err := handling.NewHandlingEvent(
			tid,
			handling.Load,
			unLocode(t, "CNHKG"),
			voyageNumber(t, "V100"),
			day(1),
			day(1).Add(time.Hour),
		)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, tid, e.TrackingID())
		assert.Equal(t, handling.Load, e.EventType())
		assert.Equal(t, unLocode(t, "CNHKG"), e.Location())
		assert.Equal(t, voyageNumber(t, "V100"), e.VoyageNumber())
		assert.Equal(t, day(1), e.CompletionTime())
		assert.Equal(t, day(1).Add(time.Hour), e.RegistrationTime())
	})

	t.Run("should create receive event without voyage", func(t *testing.T) {
		e, err := handling.NewHandlingEvent(
			tid,
			handling.Receive,
			unLocode(t, "CNHKG"),
			voyage.NoneNumber,
			day(1),
			day(1),
		)

		require.NoError(t, err)
		assert.True(t, e.VoyageNumber().IsNone())
	})

	t.Run("should fail when load has no voyage", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			tid,
			handling.Load,
			unLocode(t, "CNHKG"),
			voyage.NoneNumber,
			day(1),
			day(1),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, handling.ErrVoyageIsMissing)
	})

	t.Run("should fail when claim names a voyage", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			tid,
			handling.Claim,
			unLocode(t, "SESTO"),
			voyageNumber(t, "V400"),
			day(16),
			day(16),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, handling.ErrVoyageNotAllowed)
	})

	t.Run("should fail with zero completion time", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			tid,
			handling.Receive,
			unLocode(t, "CNHKG"),
			voyage.NoneNumber,
			time.Time{},
			day(1),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown event type", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			tid,
			handling.Unknown,
			unLocode(t, "CNHKG"),
			voyage.NoneNumber,
			day(1),
			day(1),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e handling.HandlingEvent

		require.ErrorIs(t, e.Validate(), handling.ErrHandlingEventIsNotConstructed)
	})
}

func TestHandlingEventIsEqual(t *testing.T) {
	tid := trackingID(t, "ABC123")

	t.Run("registration time does not participate in equality", func(t *testing.T) {
		first := event(t, tid, handling.Load, "CNHKG", "V100", day(1), day(1))
		second := event(t, tid, handling.Load, "CNHKG", "V100", day(1), day(2))

		assert.True(t, first.IsEqual(second))
	})

	t.Run("completion time does", func(t *testing.T) {
		first := event(t, tid, handling.Load, "CNHKG", "V100", day(1), day(1))
		second := event(t, tid, handling.Load, "CNHKG", "V100", day(2), day(1))

		assert.False(t, first.IsEqual(second))
	})
}
