package handling_test

import (
	"context"
	"testing"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCargoLookup struct{ mock.Mock }

func (m *MockCargoLookup) Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, trackingID)
	return args.Bool(0), args.Error(1)
}

type MockLocationLookup struct{ mock.Mock }

func (m *MockLocationLookup) Exists(ctx context.Context, unLocode kernel.UnLocode) (bool, error) {
	args := m.Called(ctx, unLocode)
	return args.Bool(0), args.Error(1)
}

type MockVoyageLookup struct{ mock.Mock }

func (m *MockVoyageLookup) Exists(ctx context.Context, number voyage.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func newFactoryFixture() (*handling.EventFactory, *MockCargoLookup, *MockVoyageLookup, *MockLocationLookup) {
	cargos := new(MockCargoLookup)
	voyages := new(MockVoyageLookup)
	locations := new(MockLocationLookup)
	return handling.NewEventFactory(cargos, voyages, locations), cargos, voyages, locations
}

func TestEventFactoryCreateEvent(t *testing.T) {
	ctx := t.Context()
	tid := trackingID(t, "ABC123")

	t.Run("creates a load event when all reference data resolves", func(t *testing.T) {
		factory, cargos, voyages, locations := newFactoryFixture()
		cargos.On("Exists", ctx, tid).Return(true, nil).Once()
		locations.On("Exists", ctx, unLocode(t, "CNHKG")).Return(true, nil).Once()
		voyages.On("Exists", ctx, voyageNumber(t, "V100")).Return(true, nil).Once()

		e, err := factory.CreateEvent(ctx, day(1), tid, voyageNumber(t, "V100"), unLocode(t, "CNHKG"), handling.Load)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, handling.Load, e.EventType())
		assert.False(t, e.RegistrationTime().IsZero())
		cargos.AssertExpectations(t)
		locations.AssertExpectations(t)
		voyages.AssertExpectations(t)
	})

	t.Run("creates a claim event without consulting the voyage lookup", func(t *testing.T) {
		factory, cargos, voyages, locations := newFactoryFixture()
		cargos.On("Exists", ctx, tid).Return(true, nil).Once()
		locations.On("Exists", ctx, unLocode(t, "SESTO")).Return(true, nil).Once()

		_, err := factory.CreateEvent(ctx, day(16), tid, voyage.NoneNumber, unLocode(t, "SESTO"), handling.Claim)

		require.NoError(t, err)
		voyages.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("fails for an unknown cargo before any other lookup", func(t *testing.T) {
		factory, cargos, voyages, locations := newFactoryFixture()
		cargos.On("Exists", ctx, tid).Return(false, nil).Once()

		_, err := factory.CreateEvent(ctx, day(1), tid, voyage.NoneNumber, unLocode(t, "CNHKG"), handling.Receive)

		require.ErrorIs(t, err, handling.ErrUnknownCargo)
		locations.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		voyages.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("fails for an unknown location", func(t *testing.T) {
		factory, cargos, _, locations := newFactoryFixture()
		cargos.On("Exists", ctx, tid).Return(true, nil).Once()
		locations.On("Exists", ctx, unLocode(t, "XXXXX")).Return(false, nil).Once()

		_, err := factory.CreateEvent(ctx, day(1), tid, voyage.NoneNumber, unLocode(t, "XXXXX"), handling.Receive)

		require.ErrorIs(t, err, handling.ErrUnknownLocation)
	})

	t.Run("fails when load names an unknown voyage", func(t *testing.T) {
		factory, cargos, voyages, locations := newFactoryFixture()
		cargos.On("Exists", ctx, tid).Return(true, nil).Once()
		locations.On("Exists", ctx, unLocode(t, "CNHKG")).Return(true, nil).Once()
		voyages.On("Exists", ctx, voyageNumber(t, "V999")).Return(false, nil).Once()

		_, err := factory.CreateEvent(ctx, day(1), tid, voyageNumber(t, "V999"), unLocode(t, "CNHKG"), handling.Load)

		require.ErrorIs(t, err, handling.ErrUnknownVoyage)
	})

	t.Run("fails when load omits the voyage", func(t *testing.T) {
		factory, cargos, voyages, locations := newFactoryFixture()
		cargos.On("Exists", ctx, tid).Return(true, nil).Once()
		locations.On("Exists", ctx, unLocode(t, "CNHKG")).Return(true, nil).Once()

		_, err := factory.CreateEvent(ctx, day(1), tid, voyage.NoneNumber, unLocode(t, "CNHKG"), handling.Load)

		require.ErrorIs(t, err, handling.ErrVoyageIsMissing)
		voyages.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("fails when receive names a voyage", func(t *testing.T) {
		factory, cargos, _, locations := newFactoryFixture()
		cargos.On("Exists", ctx, tid).Return(true, nil).Once()
		locations.On("Exists", ctx, unLocode(t, "CNHKG")).Return(true, nil).Once()

		_, err := factory.CreateEvent(ctx, day(1), tid, voyageNumber(t, "V100"), unLocode(t, "CNHKG"), handling.Receive)

		require.ErrorIs(t, err, handling.ErrVoyageNotAllowed)
	})

	t.Run("fails with an unconstructed tracking ID without consulting lookups", func(t *testing.T) {
		factory, cargos, _, _ := newFactoryFixture()

		_, err := factory.CreateEvent(ctx, day(1), kernel.TrackingID{}, voyage.NoneNumber, unLocode(t, "CNHKG"), handling.Receive)

		require.Error(t, err)
		cargos.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})
}
