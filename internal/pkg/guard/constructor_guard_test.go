package guard_test

import (
	"errors"
	"testing"

	"cargotracker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// Nil error falls back to the default sentinel.
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type handlingReport struct {
		trackingID string
		unLocode   string
		guard      guard.ConstructorGuard
	}

	var errReportNotConstructed = errors.New("handlingReport must be created via newHandlingReport")

	newHandlingReport := func(trackingID, unLocode string) (handlingReport, error) {
		if trackingID == "" {
			return handlingReport{}, errors.New("tracking id is required")
		}
		if unLocode == "" {
			return handlingReport{}, errors.New("un locode is required")
		}
		return handlingReport{
			trackingID: trackingID,
			unLocode:   unLocode,
			guard:      guard.NewConstructorGuard(),
		}, nil
	}

	validateReport := func(r handlingReport) error {
		return r.guard.Validate(errReportNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		report, err := newHandlingReport("ABC123", "SESTO")

		require.NoError(t, err)
		require.NoError(t, validateReport(report))
		assert.Equal(t, "ABC123", report.trackingID)
		assert.Equal(t, "SESTO", report.unLocode)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var report handlingReport // zero value

		err := validateReport(report)

		require.Error(t, err)
		assert.Equal(t, errReportNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newHandlingReport("", "SESTO")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tracking id is required")

		_, err = newHandlingReport("ABC123", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "un locode is required")
	})
}
