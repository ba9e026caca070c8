package cmd

import (
	"log/slog"

	"parceltrack/internal/adapters/out/directory"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	trackingCache    queries.TrackingViewCache
	orderDirectory   ports.OrderDirectory
	courierDirectory ports.CourierDirectory
	overdueSchedule  string
	logger           *slog.Logger
}

// NewCompositionRoot wires the application's adapters together. The tracking
// cache may be nil, in which case tracking queries always hit the database.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	trackingCache queries.TrackingViewCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		trackingCache:    trackingCache,
		orderDirectory:   directory.NewOrderDirectoryClient(configs.OrderDirectoryURL),
		courierDirectory: directory.NewCourierDirectoryClient(configs.CourierDirectoryURL),
		overdueSchedule:  configs.OverdueSweepCron,
		logger:           logger,
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.orderDirectory, c.courierDirectory)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var parcelFactory commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	var eventFactory commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(parcelFactory, eventFactory)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.courierDirectory)
}

func (c *CompositionRoot) CreateRecordLocationCommandHandler() commands.RecordLocationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateFlagOverdueParcelsCommandHandler() commands.FlagOverdueParcelsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagOverdueParcelsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB, c.trackingCache, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFlagOverdueParcelsCommandHandler(), c.overdueSchedule, c.logger)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
