// Package http exposes the fleet lifecycle operations over a REST API.
// Every handler translates the request into a typed command or query,
// delegates to the application layer and maps the domain error taxonomy to
// HTTP status codes. No business rules live here.
package http

import (
	"net/http"
	"strconv"
	"time"

	"fleetcore/internal/core/application/usecases/commands"
	"fleetcore/internal/core/application/usecases/queries"
	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// Commands bundles the command handlers the server dispatches to.
type Commands struct {
	RegisterVehicle  commands.RegisterVehicleCommandHandler
	RetireVehicle    commands.RetireVehicleCommandHandler
	RegisterDriver   commands.RegisterDriverCommandHandler
	ChangeDriverDuty commands.ChangeDriverDutyCommandHandler
	CreateTrip       commands.CreateTripCommandHandler
	DispatchTrip     commands.DispatchTripCommandHandler
	CompleteTrip     commands.CompleteTripCommandHandler
	CancelTrip       commands.CancelTripCommandHandler
	UpdateTrip       commands.UpdateTripCommandHandler
	DeleteTrip       commands.DeleteTripCommandHandler
	CreateServiceLog commands.CreateServiceLogCommandHandler
	StartService     commands.StartServiceCommandHandler
	CompleteService  commands.CompleteServiceCommandHandler
	CancelService    commands.CancelServiceCommandHandler
	DeleteService    commands.DeleteServiceCommandHandler
	RecordExpense    commands.RecordExpenseCommandHandler
}

// Queries bundles the query handlers the server dispatches to.
type Queries struct {
	GetVehicles       queries.GetVehiclesQueryHandler
	GetTrips          queries.GetTripsQueryHandler
	GetTripDetails    queries.GetTripDetailsQueryHandler
	GetMaintenanceDue queries.GetMaintenanceDueQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(cmds Commands, qs Queries) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
	}
}

// RegisterRoutes mounts every fleet endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/vehicles", s.RegisterVehicle)
	v1.GET("/vehicles", s.GetVehicles)
	v1.GET("/vehicles/maintenance-due", s.GetMaintenanceDue)
	v1.POST("/vehicles/:id/retire", s.RetireVehicle)

	v1.POST("/drivers", s.RegisterDriver)
	v1.POST("/drivers/:id/duty", s.ChangeDriverDuty)

	v1.POST("/trips", s.CreateTrip)
	v1.GET("/trips", s.GetTrips)
	v1.GET("/trips/:id", s.GetTripDetails)
	v1.PUT("/trips/:id", s.UpdateTrip)
	v1.DELETE("/trips/:id", s.DeleteTrip)
	v1.POST("/trips/:id/dispatch", s.DispatchTrip)
	v1.POST("/trips/:id/complete", s.CompleteTrip)
	v1.POST("/trips/:id/cancel", s.CancelTrip)

	v1.POST("/service-logs", s.CreateServiceLog)
	v1.POST("/service-logs/:id/start", s.StartService)
	v1.POST("/service-logs/:id/complete", s.CompleteService)
	v1.POST("/service-logs/:id/cancel", s.CancelService)
	v1.DELETE("/service-logs/:id", s.DeleteService)

	v1.POST("/expenses", s.RecordExpense)
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var req registerVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterVehicleCommand(
		kernel.NewUUID(),
		req.Plate,
		req.Model,
		req.MaxLoadCapacityKg,
		req.Region,
		req.OdometerKm,
		req.FuelEfficiencyKmPerLiter,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	veh, err := s.commands.RegisterVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newVehicleResponse(veh))
}

// RetireVehicle handles POST /api/v1/vehicles/:id/retire.
func (s *Server) RetireVehicle(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid vehicle id")
	}

	cmd, err := commands.NewRetireVehicleCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	veh, err := s.commands.RetireVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newVehicleResponse(veh))
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	var status *vehicle.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, ok := parseVehicleStatus(raw)
		if !ok {
			return writeBadRequest(ctx, "unknown vehicle status: "+raw)
		}
		status = &parsed
	}

	offset := intQueryParam(ctx, "offset", 0)
	limit := intQueryParam(ctx, "limit", 50)

	query, err := queries.NewGetVehiclesQuery(status, ctx.QueryParam("region"), offset, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	vehicles, err := s.queries.GetVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicles)
}

// GetMaintenanceDue handles GET /api/v1/vehicles/maintenance-due.
func (s *Server) GetMaintenanceDue(ctx echo.Context) error {
	query := queries.NewGetMaintenanceDueQuery(time.Now().UTC())

	vehicles, err := s.queries.GetMaintenanceDue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicles)
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req registerDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterDriverCommand(
		kernel.NewUUID(),
		req.Name,
		req.LicenceNumber,
		req.LicenceExpiry,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	drv, err := s.commands.RegisterDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newDriverResponse(drv))
}

// ChangeDriverDuty handles POST /api/v1/drivers/:id/duty.
func (s *Server) ChangeDriverDuty(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid driver id")
	}

	var req changeDutyRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeDriverDutyCommand(id, req.OnDuty)
	if err != nil {
		return writeError(ctx, err)
	}

	drv, err := s.commands.ChangeDriverDuty.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newDriverResponse(drv))
}

// CreateTrip handles POST /api/v1/trips.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var req createTripRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return writeBadRequest(ctx, "invalid vehicle id")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeBadRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewCreateTripCommand(
		kernel.NewUUID(),
		vehicleID,
		driverID,
		req.Origin,
		req.Destination,
		req.CargoWeightKg,
		req.ScheduledStartTime,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	t, err := s.commands.CreateTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newTripResponse(t))
}

// GetTrips handles GET /api/v1/trips.
func (s *Server) GetTrips(ctx echo.Context) error {
	var status *trip.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, ok := parseTripStatus(raw)
		if !ok {
			return writeBadRequest(ctx, "unknown trip status: "+raw)
		}
		status = &parsed
	}

	offset := intQueryParam(ctx, "offset", 0)
	limit := intQueryParam(ctx, "limit", 50)

	query, err := queries.NewGetTripsQuery(status, offset, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	trips, err := s.queries.GetTrips.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trips)
}

// GetTripDetails handles GET /api/v1/trips/:id.
func (s *Server) GetTripDetails(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid trip id")
	}

	query, err := queries.NewGetTripDetailsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.queries.GetTripDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, details)
}

// UpdateTrip handles PUT /api/v1/trips/:id.
func (s *Server) UpdateTrip(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid trip id")
	}

	var req updateTripRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateTripCommand(
		id,
		req.Origin,
		req.Destination,
		req.CargoWeightKg,
		req.ScheduledStartTime,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	t, err := s.commands.UpdateTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTripResponse(t))
}

// DeleteTrip handles DELETE /api/v1/trips/:id.
func (s *Server) DeleteTrip(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid trip id")
	}

	cmd, err := commands.NewDeleteTripCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchTrip handles POST /api/v1/trips/:id/dispatch.
func (s *Server) DispatchTrip(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid trip id")
	}

	cmd, err := commands.NewDispatchTripCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	t, err := s.commands.DispatchTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTripResponse(t))
}

// CompleteTrip handles POST /api/v1/trips/:id/complete.
func (s *Server) CompleteTrip(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid trip id")
	}

	var req completeTripRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteTripCommand(
		id,
		req.FinalOdometerKm,
		req.FuelConsumedLiters,
		req.FuelCost,
		req.Revenue,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	t, err := s.commands.CompleteTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTripResponse(t))
}

// CancelTrip handles POST /api/v1/trips/:id/cancel.
func (s *Server) CancelTrip(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid trip id")
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelTripCommand(id, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	t, err := s.commands.CancelTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTripResponse(t))
}

// CreateServiceLog handles POST /api/v1/service-logs.
func (s *Server) CreateServiceLog(ctx echo.Context) error {
	var req createServiceLogRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return writeBadRequest(ctx, "invalid vehicle id")
	}

	cmd, err := commands.NewCreateServiceLogCommand(
		kernel.NewUUID(),
		vehicleID,
		req.Issue,
		req.ScheduledDate,
		req.EstimatedCost,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	svc, err := s.commands.CreateServiceLog.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newServiceLogResponse(svc))
}

// StartService handles POST /api/v1/service-logs/:id/start.
func (s *Server) StartService(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid service log id")
	}

	cmd, err := commands.NewStartServiceCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	svc, err := s.commands.StartService.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newServiceLogResponse(svc))
}

// CompleteService handles POST /api/v1/service-logs/:id/complete.
func (s *Server) CompleteService(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid service log id")
	}

	var req completeServiceRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteServiceCommand(id, req.Cost, req.OdometerKm, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	svc, err := s.commands.CompleteService.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newServiceLogResponse(svc))
}

// CancelService handles POST /api/v1/service-logs/:id/cancel.
func (s *Server) CancelService(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid service log id")
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelServiceCommand(id, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	svc, err := s.commands.CancelService.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newServiceLogResponse(svc))
}

// DeleteService handles DELETE /api/v1/service-logs/:id.
func (s *Server) DeleteService(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid service log id")
	}

	cmd, err := commands.NewDeleteServiceCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteService.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordExpense handles POST /api/v1/expenses.
func (s *Server) RecordExpense(ctx echo.Context) error {
	var req recordExpenseRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return writeBadRequest(ctx, "invalid vehicle id")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeBadRequest(ctx, "invalid driver id")
	}

	var tripID *kernel.UUID
	if req.TripID != nil {
		parsed, tripErr := kernel.UUIDFromString(*req.TripID)
		if tripErr != nil {
			return writeBadRequest(ctx, "invalid trip id")
		}
		tripID = &parsed
	}

	category, ok := parseExpenseCategory(req.Category)
	if !ok {
		return writeBadRequest(ctx, "unknown expense category: "+req.Category)
	}

	cmd, err := commands.NewRecordExpenseCommand(
		kernel.NewUUID(),
		vehicleID,
		driverID,
		tripID,
		category,
		req.Liters,
		req.CostPerLiter,
		req.ExpenseType,
		req.TotalCost,
		req.OdometerReadingKm,
		req.Description,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	expense, err := s.commands.RecordExpense.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newExpenseLogResponse(expense))
}

func parseVehicleStatus(raw string) (vehicle.Status, bool) {
	for _, s := range []vehicle.Status{vehicle.Available, vehicle.OnTrip, vehicle.InShop, vehicle.OutOfService} {
		if s.String() == raw {
			return s, true
		}
	}
	return vehicle.Unknown, false
}

func parseTripStatus(raw string) (trip.Status, bool) {
	for _, s := range []trip.Status{trip.Draft, trip.Dispatched, trip.Completed, trip.Cancelled} {
		if s.String() == raw {
			return s, true
		}
	}
	return trip.Unknown, false
}

func parseExpenseCategory(raw string) (expenselog.Category, bool) {
	for _, c := range []expenselog.Category{expenselog.Fuel, expenselog.Misc} {
		if c.String() == raw {
			return c, true
		}
	}
	return expenselog.UnknownCategory, false
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
