package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func unLocode(t *testing.T, code string) kernel.UnLocode {
	t.Helper()
	u, err := kernel.NewUnLocode(code)
	require.NoError(t, err)
	return u
}

func trackingID(t *testing.T, id string) kernel.TrackingID {
	t.Helper()
	tid, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	return tid
}

func voyageNumber(t *testing.T, number string) voyage.Number {
	t.Helper()
	n, err := voyage.NewNumber(number)
	require.NoError(t, err)
	return n
}

func day(d int) time.Time {
	return time.Date(2009, 3, d, 0, 0, 0, 0, time.UTC)
}

func bookedCargo(t *testing.T, tid kernel.TrackingID) *cargo.Cargo {
	t.Helper()
	spec, err := cargo.NewRouteSpecification(unLocode(t, "CNHKG"), unLocode(t, "SESTO"), day(18))
	require.NoError(t, err)
	c, err := cargo.NewCargo(tid, spec)
	require.NoError(t, err)
	return c
}

func hongkongToStockholm(t *testing.T) cargo.Itinerary {
	t.Helper()

	legs := make([]cargo.Leg, 0, 2)
	for _, step := range []struct {
		voyageNum, from, to string
		loadDay, unloadDay  int
	}{
		{"V100", "CNHKG", "USNYC", 1, 3},
		{"V200", "USNYC", "SESTO", 4, 11},
	} {
		l, err := cargo.NewLeg(
			voyageNumber(t, step.voyageNum),
			unLocode(t, step.from),
			unLocode(t, step.to),
			day(step.loadDay),
			day(step.unloadDay),
		)
		require.NoError(t, err)
		legs = append(legs, l)
	}

	itinerary, err := cargo.NewItinerary(legs)
	require.NoError(t, err)
	return itinerary
}

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, tid kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, tid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *MockCargoRepository) Exists(ctx context.Context, tid kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, tid)
	return args.Bool(0), args.Error(1)
}

func (m *MockCargoRepository) GetAll(_ context.Context) ([]*cargo.Cargo, error) {
	return nil, errors.New("not implemented in mock")
}

type MockHandlingEventRepository struct{ mock.Mock }

func (m *MockHandlingEventRepository) Add(ctx context.Context, event handling.HandlingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHandlingEventRepository) GetHistory(ctx context.Context, tid kernel.TrackingID) (handling.History, error) {
	args := m.Called(ctx, tid)
	return args.Get(0).(handling.History), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Get(_ context.Context, _ kernel.UnLocode) (*location.Location, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockLocationRepository) Exists(ctx context.Context, unLocode kernel.UnLocode) (bool, error) {
	args := m.Called(ctx, unLocode)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationRepository) GetAll(_ context.Context) ([]*location.Location, error) {
	return nil, errors.New("not implemented in mock")
}

type MockVoyageRepository struct{ mock.Mock }

func (m *MockVoyageRepository) Get(_ context.Context, _ voyage.Number) (*voyage.Voyage, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockVoyageRepository) Exists(ctx context.Context, number voyage.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoyageRepository) GetAll(_ context.Context) ([]*voyage.Voyage, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCargoUoW struct{ mock.Mock }

func (m *MockCargoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

type MockCargoUoWFactory struct{ mock.Mock }

func (m *MockCargoUoWFactory) Create() commands.CargoUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockApplicationEvents struct{ mock.Mock }

func (m *MockApplicationEvents) CargoWasHandled(ctx context.Context, tid kernel.TrackingID) {
	m.Called(ctx, tid)
}

func (m *MockApplicationEvents) CargoWasMisdirected(ctx context.Context, tid kernel.TrackingID) {
	m.Called(ctx, tid)
}

func (m *MockApplicationEvents) CargoHasArrived(ctx context.Context, tid kernel.TrackingID) {
	m.Called(ctx, tid)
}
