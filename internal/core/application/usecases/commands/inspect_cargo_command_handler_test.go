package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/lock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inspectionFixture(
	t *testing.T,
	tid kernel.TrackingID,
	history handling.History,
) (*MockUoWFactory, *MockUoW, *MockCargoRepository) {
	t.Helper()

	aggregate := bookedCargo(t, tid)
	require.NoError(t, aggregate.AssignToRoute(hongkongToStockholm(t), handling.EmptyHistory()))

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("CargoRepository").Return(cargoRepo)
	uow.On("HandlingEventRepository").Return(eventRepo)
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	cargoRepo.On("Get", mock.Anything, tid).Return(aggregate, nil).Once()
	cargoRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	eventRepo.On("GetHistory", mock.Anything, tid).Return(history, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, cargoRepo
}

func TestInspectCargoCommandHandler_Handle_Misdirected(t *testing.T) {
	ctx := t.Context()
	tid := trackingID(t, "ABC123")

	offPlan, err := handling.NewHandlingEvent(
		tid, handling.Unload, unLocode(t, "JNTKO"), voyageNumber(t, "V100"), day(3), day(3))
	require.NoError(t, err)
	factory, uow, cargoRepo := inspectionFixture(t, tid, handling.NewHistory([]handling.HandlingEvent{offPlan}))

	appEvents := new(MockApplicationEvents)
	appEvents.On("CargoWasMisdirected", ctx, tid).Once()

	h := commands.NewInspectCargoCommandHandler(factory, appEvents, lock.NewKeyedMutex())
	err = h.Handle(ctx, inspectCommand(t, tid))
	require.NoError(t, err)
	appEvents.AssertExpectations(t)
	appEvents.AssertNotCalled(t, "CargoHasArrived", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	cargoRepo.AssertExpectations(t)
}

func TestInspectCargoCommandHandler_Handle_Arrived(t *testing.T) {
	ctx := t.Context()
	tid := trackingID(t, "ABC123")

	arrival, err := handling.NewHandlingEvent(
		tid, handling.Unload, unLocode(t, "SESTO"), voyageNumber(t, "V200"), day(11), day(11))
	require.NoError(t, err)
	factory, _, _ := inspectionFixture(t, tid, handling.NewHistory([]handling.HandlingEvent{arrival}))

	appEvents := new(MockApplicationEvents)
	appEvents.On("CargoHasArrived", ctx, tid).Once()

	h := commands.NewInspectCargoCommandHandler(factory, appEvents, lock.NewKeyedMutex())
	err = h.Handle(ctx, inspectCommand(t, tid))
	require.NoError(t, err)
	appEvents.AssertExpectations(t)
	appEvents.AssertNotCalled(t, "CargoWasMisdirected", mock.Anything, mock.Anything)
}

func TestInspectCargoCommandHandler_Handle_OnTrack(t *testing.T) {
	ctx := t.Context()
	tid := trackingID(t, "ABC123")

	receive, err := handling.NewHandlingEvent(
		tid, handling.Receive, unLocode(t, "CNHKG"), voyage.NoneNumber, day(1), day(1))
	require.NoError(t, err)
	factory, _, _ := inspectionFixture(t, tid, handling.NewHistory([]handling.HandlingEvent{receive}))

	appEvents := new(MockApplicationEvents)

	h := commands.NewInspectCargoCommandHandler(factory, appEvents, lock.NewKeyedMutex())
	err = h.Handle(ctx, inspectCommand(t, tid))
	require.NoError(t, err)
	appEvents.AssertNotCalled(t, "CargoWasMisdirected", mock.Anything, mock.Anything)
	appEvents.AssertNotCalled(t, "CargoHasArrived", mock.Anything, mock.Anything)
}

func inspectCommand(t *testing.T, tid kernel.TrackingID) commands.InspectCargoCommand {
	t.Helper()
	cmd, err := commands.NewInspectCargoCommand(tid)
	require.NoError(t, err)
	return cmd
}
