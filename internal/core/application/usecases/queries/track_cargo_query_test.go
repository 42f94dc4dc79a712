package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargotracker/internal/core/domain/model/kernel"
)

func TestTrackCargoQuery(t *testing.T) {
	t.Run("creates query with valid tracking ID", func(t *testing.T) {
		trackingID, err := kernel.NewTrackingID("ABC123")
		require.NoError(t, err)

		query, err := NewTrackCargoQuery(trackingID)
		require.NoError(t, err)

		assert.NoError(t, query.Validate())
		assert.Equal(t, trackingID, query.TrackingID())
	})

	t.Run("rejects unconstructed tracking ID", func(t *testing.T) {
		_, err := NewTrackCargoQuery(kernel.TrackingID{})

		assert.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query TrackCargoQuery

		assert.Error(t, query.Validate())
	})
}
