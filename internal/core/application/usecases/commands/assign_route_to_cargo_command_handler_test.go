package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/pkg/lock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignRouteToCargoCommand(t *testing.T) {
	t.Run("should fail with empty itinerary", func(t *testing.T) {
		_, err := commands.NewAssignRouteToCargoCommand(trackingID(t, "ABC123"), cargo.Itinerary{})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AssignRouteToCargoCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignRouteToCargoCommandIsNotConstructed)
	})
}

func TestAssignRouteToCargoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tid := trackingID(t, "ABC123")
	aggregate := bookedCargo(t, tid)
	cmd, err := commands.NewAssignRouteToCargoCommand(tid, hongkongToStockholm(t))
	require.NoError(t, err)

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", mock.Anything, tid).Return(aggregate, nil).Once(),
		uow.On("HandlingEventRepository").Return(eventRepo).Once(),
		eventRepo.On("GetHistory", mock.Anything, tid).Return(handling.EmptyHistory(), nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignRouteToCargoCommandHandler(factory, lock.NewKeyedMutex())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, cargo.Routed, aggregate.Delivery().RoutingStatus())
	cargoRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignRouteToCargoCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignRouteToCargoCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	h := commands.NewAssignRouteToCargoCommandHandler(factory, lock.NewKeyedMutex())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAssignRouteToCargoCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
