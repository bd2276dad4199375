package cmd

import (
	"time"

	"fleetcore/internal/adapters/out/postgres"
	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application handlers.
// Command handlers get unit of work factories; query handlers read the
// database directly.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateRetireVehicleCommandHandler() commands.RetireVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetireVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDriverDutyCommandHandler() commands.ChangeDriverDutyCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDriverDutyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	return commands.NewCreateTripCommandHandler(c.tripUoWFactory())
}

func (c *CompositionRoot) CreateDispatchTripCommandHandler() commands.DispatchTripCommandHandler {
	return commands.NewDispatchTripCommandHandler(c.tripUoWFactory())
}

func (c *CompositionRoot) CreateCompleteTripCommandHandler() commands.CompleteTripCommandHandler {
	return commands.NewCompleteTripCommandHandler(c.tripUoWFactory())
}

func (c *CompositionRoot) CreateCancelTripCommandHandler() commands.CancelTripCommandHandler {
	return commands.NewCancelTripCommandHandler(c.tripUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTripCommandHandler() commands.UpdateTripCommandHandler {
	return commands.NewUpdateTripCommandHandler(c.tripUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTripCommandHandler() commands.DeleteTripCommandHandler {
	return commands.NewDeleteTripCommandHandler(c.tripUoWFactory())
}

func (c *CompositionRoot) CreateCreateServiceLogCommandHandler() commands.CreateServiceLogCommandHandler {
	return commands.NewCreateServiceLogCommandHandler(c.serviceUoWFactory())
}

func (c *CompositionRoot) CreateStartServiceCommandHandler() commands.StartServiceCommandHandler {
	return commands.NewStartServiceCommandHandler(c.serviceUoWFactory())
}

func (c *CompositionRoot) CreateCompleteServiceCommandHandler() commands.CompleteServiceCommandHandler {
	interval := time.Duration(c.config.MaintenanceIntervalDays) * 24 * time.Hour
	return commands.NewCompleteServiceCommandHandler(c.serviceUoWFactory(), interval)
}

func (c *CompositionRoot) CreateCancelServiceCommandHandler() commands.CancelServiceCommandHandler {
	return commands.NewCancelServiceCommandHandler(c.serviceUoWFactory())
}

func (c *CompositionRoot) CreateDeleteServiceCommandHandler() commands.DeleteServiceCommandHandler {
	return commands.NewDeleteServiceCommandHandler(c.serviceUoWFactory())
}

func (c *CompositionRoot) CreateRecordExpenseCommandHandler() commands.RecordExpenseCommandHandler {
	var f commands.ExpenseUoWFactory = FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordExpenseCommandHandler(f)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTripsQueryHandler() queries.GetTripsQueryHandler {
	return queries.NewGetTripsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTripDetailsQueryHandler() queries.GetTripDetailsQueryHandler {
	return queries.NewGetTripDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMaintenanceDueQueryHandler() queries.GetMaintenanceDueQueryHandler {
	return queries.NewGetMaintenanceDueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpiringLicencesQueryHandler() queries.GetExpiringLicencesQueryHandler {
	return queries.NewGetExpiringLicencesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) tripUoWFactory() commands.TripUoWFactory {
	return FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) serviceUoWFactory() commands.ServiceUoWFactory {
	return FuncServiceUoWFactory(func() commands.ServiceUoW {
		return c.uowFactory.Create()
	})
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncServiceUoWFactory func() commands.ServiceUoW

func (f FuncServiceUoWFactory) Create() commands.ServiceUoW {
	return f()
}

type FuncExpenseUoWFactory func() commands.ExpenseUoW

func (f FuncExpenseUoWFactory) Create() commands.ExpenseUoW {
	return f()
}
