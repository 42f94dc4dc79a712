package cmd

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"cargotracker/internal/adapters/out/appevents"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/adapters/out/routing"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/jobs"
	"cargotracker/internal/pkg/lock"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locations  *locationrepo.GormLocationRepository
	voyages    *voyagerepo.GormVoyageRepository
	locker     *lock.KeyedMutex
	appEvents  *appevents.ApplicationEventDispatcher
	logger     *slog.Logger
}

// NewCompositionRoot wires the shared infrastructure. The keyed mutex is a
// single instance so every handler serializes on the same per-cargo locks,
// and the event dispatcher gets the inspection handler attached here because
// the two reference each other.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locations:  locationrepo.NewGormLocationRepository(gormDB),
		voyages:    voyagerepo.NewGormVoyageRepository(gormDB),
		locker:     lock.NewKeyedMutex(),
		appEvents:  appevents.NewApplicationEventDispatcher(logger),
		logger:     logger,
	}

	inspectHandler := root.CreateInspectCargoCommandHandler()
	root.appEvents.AttachInspector(&inspectHandler)

	return root
}

// SeedReferenceData loads the sample locations and voyages into the
// database. Idempotent; safe to run on every startup.
func (c *CompositionRoot) SeedReferenceData(ctx context.Context) error {
	if err := c.locations.Seed(ctx, location.SampleLocations()); err != nil {
		return err
	}
	return c.voyages.Seed(ctx, voyage.SampleVoyages())
}

func (c *CompositionRoot) CreateBookCargoCommandHandler() commands.BookCargoCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCargoCommandHandler(f, c.locations)
}

func (c *CompositionRoot) CreateAssignRouteToCargoCommandHandler() commands.AssignRouteToCargoCommandHandler {
	return commands.NewAssignRouteToCargoCommandHandler(c.createUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateSpecifyNewRouteCommandHandler() commands.SpecifyNewRouteCommandHandler {
	return commands.NewSpecifyNewRouteCommandHandler(c.createUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() commands.RegisterHandlingEventCommandHandler {
	cargos := c.uowFactory.Create().CargoRepository()
	eventFactory := handling.NewEventFactory(cargos, c.voyages, c.locations)
	return commands.NewRegisterHandlingEventCommandHandler(
		c.createUoWFactory(), eventFactory, c.appEvents, c.locker)
}

func (c *CompositionRoot) CreateInspectCargoCommandHandler() commands.InspectCargoCommandHandler {
	return commands.NewInspectCargoCommandHandler(c.createUoWFactory(), c.appEvents, c.locker)
}

func (c *CompositionRoot) CreateTrackCargoQueryHandler() queries.TrackCargoQueryHandler {
	return queries.NewTrackCargoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRequestPossibleRoutesQueryHandler() queries.RequestPossibleRoutesQueryHandler {
	cargos := c.uowFactory.Create().CargoRepository()
	routingService := routing.NewScheduleRoutingService(c.voyages, services.NewItineraryFinder())
	return queries.NewRequestPossibleRoutesQueryHandler(cargos, routingService)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	cargos := c.uowFactory.Create().CargoRepository()
	return jobs.NewJobManager(c.CreateInspectCargoCommandHandler(), cargos, c.logger)
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}
