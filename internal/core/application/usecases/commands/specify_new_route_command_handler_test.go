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

func TestNewSpecifyNewRouteCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewSpecifyNewRouteCommand(
			trackingID(t, "ABC123"),
			unLocode(t, "JNTKO"),
			unLocode(t, "SESTO"),
			day(18),
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.SpecifyNewRouteCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrSpecifyNewRouteCommandIsNotConstructed)
	})
}

func TestSpecifyNewRouteCommandHandler_Handle_FlipsToMisrouted(t *testing.T) {
	ctx := t.Context()
	tid := trackingID(t, "ABC123")
	aggregate := bookedCargo(t, tid)
	require.NoError(t, aggregate.AssignToRoute(hongkongToStockholm(t), handling.EmptyHistory()))
	require.Equal(t, cargo.Routed, aggregate.Delivery().RoutingStatus())

	cmd, err := commands.NewSpecifyNewRouteCommand(tid, unLocode(t, "JNTKO"), unLocode(t, "SESTO"), day(18))
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

	h := commands.NewSpecifyNewRouteCommandHandler(factory, lock.NewKeyedMutex())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, cargo.Misrouted, aggregate.Delivery().RoutingStatus())
	cargoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSpecifyNewRouteCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SpecifyNewRouteCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	h := commands.NewSpecifyNewRouteCommandHandler(factory, lock.NewKeyedMutex())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrSpecifyNewRouteCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
