package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fleetcore/cmd"
	fleethttp "fleetcore/internal/adapters/in/http"
	"fleetcore/internal/adapters/out/postgres/driverrepo"
	"fleetcore/internal/adapters/out/postgres/expenserepo"
	"fleetcore/internal/adapters/out/postgres/servicerepo"
	"fleetcore/internal/adapters/out/postgres/triprepo"
	"fleetcore/internal/adapters/out/postgres/vehiclerepo"
	"fleetcore/internal/jobs"

	"fleetcore/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultMaintenanceIntervalDays = 90

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	startJobs(&app)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		MaintenanceIntervalDays: goDotEnvIntVariable("MAINTENANCE_INTERVAL_DAYS", defaultMaintenanceIntervalDays),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %s", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&triprepo.TripDTO{},
		&servicerepo.ServiceLogDTO{},
		&expenserepo.ExpenseLogDTO{},
		&postgres.SequenceDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetMaintenanceDueQueryHandler(),
		app.CreateGetExpiringLicencesQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := fleethttp.NewServer(
		fleethttp.Commands{
			RegisterVehicle:  app.CreateRegisterVehicleCommandHandler(),
			RetireVehicle:    app.CreateRetireVehicleCommandHandler(),
			RegisterDriver:   app.CreateRegisterDriverCommandHandler(),
			ChangeDriverDuty: app.CreateChangeDriverDutyCommandHandler(),
			CreateTrip:       app.CreateCreateTripCommandHandler(),
			DispatchTrip:     app.CreateDispatchTripCommandHandler(),
			CompleteTrip:     app.CreateCompleteTripCommandHandler(),
			CancelTrip:       app.CreateCancelTripCommandHandler(),
			UpdateTrip:       app.CreateUpdateTripCommandHandler(),
			DeleteTrip:       app.CreateDeleteTripCommandHandler(),
			CreateServiceLog: app.CreateCreateServiceLogCommandHandler(),
			StartService:     app.CreateStartServiceCommandHandler(),
			CompleteService:  app.CreateCompleteServiceCommandHandler(),
			CancelService:    app.CreateCancelServiceCommandHandler(),
			DeleteService:    app.CreateDeleteServiceCommandHandler(),
			RecordExpense:    app.CreateRecordExpenseCommandHandler(),
		},
		fleethttp.Queries{
			GetVehicles:       app.CreateGetVehiclesQueryHandler(),
			GetTrips:          app.CreateGetTripsQueryHandler(),
			GetTripDetails:    app.CreateGetTripDetailsQueryHandler(),
			GetMaintenanceDue: app.CreateGetMaintenanceDueQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
