package kernel_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID(t *testing.T) {
	t.Run("should create valid tracking ID", func(t *testing.T) {
		id, err := kernel.NewTrackingID("ABC123")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "ABC123", id.String())
	})

	t.Run("should fail with empty string", func(t *testing.T) {
		_, err := kernel.NewTrackingID("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with surrounding whitespace", func(t *testing.T) {
		_, err := kernel.NewTrackingID(" ABC123 ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGenerateTrackingID(t *testing.T) {
	t.Run("should produce distinct valid identifiers", func(t *testing.T) {
		first := kernel.GenerateTrackingID()
		second := kernel.GenerateTrackingID()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})
}

func TestTrackingID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.TrackingID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrTrackingIDIsNotConstructed, err)
	})
}

func TestTrackingID_IsEqual(t *testing.T) {
	first, _ := kernel.NewTrackingID("ABC123")
	second, _ := kernel.NewTrackingID("ABC123")
	third, _ := kernel.NewTrackingID("XYZ789")

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
}
