package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cargotracker/internal/adapters/out/routing"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/domain/services"
)

type MockCargoRepository struct {
	mock.Mock
}

func (m *MockCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *MockCargoRepository) Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, trackingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCargoRepository) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cargo.Cargo), args.Error(1)
}

type MockVoyageRepository struct {
	mock.Mock
}

func (m *MockVoyageRepository) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voyage.Voyage), args.Error(1)
}

func (m *MockVoyageRepository) Exists(ctx context.Context, number voyage.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoyageRepository) GetAll(ctx context.Context) ([]*voyage.Voyage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*voyage.Voyage), args.Error(1)
}

func bookedCargo(t *testing.T, origin, destination string, deadline time.Time) *cargo.Cargo {
	t.Helper()

	trackingID, err := kernel.NewTrackingID("CARGO1")
	require.NoError(t, err)
	originCode, err := kernel.NewUnLocode(origin)
	require.NoError(t, err)
	destinationCode, err := kernel.NewUnLocode(destination)
	require.NoError(t, err)
	spec, err := cargo.NewRouteSpecification(originCode, destinationCode, deadline)
	require.NoError(t, err)
	aggregate, err := cargo.NewCargo(trackingID, spec)
	require.NoError(t, err)

	return aggregate
}

func TestRequestPossibleRoutesQueryHandler(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2009, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("returns candidates over published voyages", func(t *testing.T) {
		aggregate := bookedCargo(t, "CNHKG", "SESTO", day(20))

		cargos := &MockCargoRepository{}
		voyages := &MockVoyageRepository{}
		cargos.On("Get", mock.Anything, aggregate.TrackingID()).Return(aggregate, nil).Once()
		voyages.On("GetAll", mock.Anything).Return(voyage.SampleVoyages(), nil).Once()

		handler := NewRequestPossibleRoutesQueryHandler(
			cargos, routing.NewScheduleRoutingService(voyages, services.NewItineraryFinder()))
		query, err := NewRequestPossibleRoutesQuery(aggregate.TrackingID())
		require.NoError(t, err)

		response, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)

		require.NotEmpty(t, response.Routes)
		for _, route := range response.Routes {
			require.NotEmpty(t, route.Legs)
			assert.Equal(t, "CNHKG", route.Legs[0].LoadLocation)
			assert.Equal(t, "SESTO", route.Legs[len(route.Legs)-1].UnloadLocation)
			assert.True(t, route.Legs[len(route.Legs)-1].UnloadTime.Before(day(20)))
		}
		cargos.AssertExpectations(t)
		voyages.AssertExpectations(t)
	})

	t.Run("returns no candidates when the deadline cannot be met", func(t *testing.T) {
		aggregate := bookedCargo(t, "CNHKG", "SESTO", day(2))

		cargos := &MockCargoRepository{}
		voyages := &MockVoyageRepository{}
		cargos.On("Get", mock.Anything, aggregate.TrackingID()).Return(aggregate, nil).Once()
		voyages.On("GetAll", mock.Anything).Return(voyage.SampleVoyages(), nil).Once()

		handler := NewRequestPossibleRoutesQueryHandler(
			cargos, routing.NewScheduleRoutingService(voyages, services.NewItineraryFinder()))
		query, err := NewRequestPossibleRoutesQuery(aggregate.TrackingID())
		require.NoError(t, err)

		response, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)

		assert.Empty(t, response.Routes)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		trackingID, err := kernel.NewTrackingID("CARGO1")
		require.NoError(t, err)

		cargos := &MockCargoRepository{}
		voyages := &MockVoyageRepository{}
		cargos.On("Get", mock.Anything, trackingID).Return(nil, errors.New("get failed")).Once()

		handler := NewRequestPossibleRoutesQueryHandler(
			cargos, routing.NewScheduleRoutingService(voyages, services.NewItineraryFinder()))
		query, err := NewRequestPossibleRoutesQuery(trackingID)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)
		assert.Error(t, err)
	})

	t.Run("rejects zero value query", func(t *testing.T) {
		handler := NewRequestPossibleRoutesQueryHandler(
			&MockCargoRepository{},
			routing.NewScheduleRoutingService(&MockVoyageRepository{}, services.NewItineraryFinder()))

		_, err := handler.Handle(context.Background(), RequestPossibleRoutesQuery{})
		assert.Error(t, err)
	})
}
