package http

import (
	"time"

	"fleetcore/internal/core/domain/model/driver"
	"fleetcore/internal/core/domain/model/expenselog"
	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/core/domain/model/vehicle"
)

// ErrorResponse is the wire shape of every error reply.
// Retryable marks conflicts the client may safely retry after reloading.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

type registerVehicleRequest struct {
	Plate                    string  `json:"plate"`
	Model                    string  `json:"model"`
	MaxLoadCapacityKg        int     `json:"maxLoadCapacityKg"`
	Region                   string  `json:"region"`
	OdometerKm               float64 `json:"odometerKm"`
	FuelEfficiencyKmPerLiter float64 `json:"fuelEfficiencyKmPerLiter"`
}

type registerDriverRequest struct {
	Name          string     `json:"name"`
	LicenceNumber string     `json:"licenceNumber"`
	LicenceExpiry *time.Time `json:"licenceExpiry,omitempty"`
}

type changeDutyRequest struct {
	OnDuty bool `json:"onDuty"`
}

type createTripRequest struct {
	VehicleID          string    `json:"vehicleId"`
	DriverID           string    `json:"driverId"`
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	CargoWeightKg      int       `json:"cargoWeightKg"`
	ScheduledStartTime time.Time `json:"scheduledStartTime"`
}

type updateTripRequest struct {
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	CargoWeightKg      int       `json:"cargoWeightKg"`
	ScheduledStartTime time.Time `json:"scheduledStartTime"`
}

type completeTripRequest struct {
	FinalOdometerKm    *float64 `json:"finalOdometerKm,omitempty"`
	FuelConsumedLiters *float64 `json:"fuelConsumedLiters,omitempty"`
	FuelCost           *float64 `json:"fuelCost,omitempty"`
	Revenue            *float64 `json:"revenue,omitempty"`
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

type createServiceLogRequest struct {
	VehicleID     string    `json:"vehicleId"`
	Issue         string    `json:"issue"`
	ScheduledDate time.Time `json:"scheduledDate"`
	EstimatedCost float64   `json:"estimatedCost"`
}

type completeServiceRequest struct {
	Cost       float64  `json:"cost"`
	OdometerKm *float64 `json:"odometerKm,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

type recordExpenseRequest struct {
	VehicleID         string   `json:"vehicleId"`
	DriverID          string   `json:"driverId"`
	TripID            *string  `json:"tripId,omitempty"`
	Category          string   `json:"category"`
	Liters            float64  `json:"liters,omitempty"`
	CostPerLiter      float64  `json:"costPerLiter,omitempty"`
	ExpenseType       string   `json:"expenseType,omitempty"`
	TotalCost         float64  `json:"totalCost,omitempty"`
	OdometerReadingKm *float64 `json:"odometerReadingKm,omitempty"`
	Description       string   `json:"description,omitempty"`
}

type vehicleResponse struct {
	ID                       string     `json:"id"`
	Plate                    string     `json:"plate"`
	Model                    string     `json:"model"`
	MaxLoadCapacityKg        int        `json:"maxLoadCapacityKg"`
	Region                   string     `json:"region"`
	OdometerKm               float64    `json:"odometerKm"`
	FuelEfficiencyKmPerLiter float64    `json:"fuelEfficiencyKmPerLiter"`
	Status                   string     `json:"status"`
	AssignedDriverID         *string    `json:"assignedDriverId,omitempty"`
	CurrentTripID            *string    `json:"currentTripId,omitempty"`
	IsActive                 bool       `json:"isActive"`
	LastMaintenanceDate      *time.Time `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDue       *time.Time `json:"nextMaintenanceDue,omitempty"`
}

func newVehicleResponse(v *vehicle.Vehicle) vehicleResponse {
	resp := vehicleResponse{
		ID:                       v.ID().String(),
		Plate:                    v.Plate(),
		Model:                    v.Model(),
		MaxLoadCapacityKg:        v.MaxLoadCapacityKg(),
		Region:                   v.Region(),
		OdometerKm:               v.OdometerKm(),
		FuelEfficiencyKmPerLiter: v.FuelEfficiencyKmPerLiter(),
		Status:                   v.Status().String(),
		IsActive:                 v.IsActive(),
		LastMaintenanceDate:      v.LastMaintenanceDate(),
		NextMaintenanceDue:       v.NextMaintenanceDue(),
	}
	if id := v.AssignedDriver(); id != nil {
		s := id.String()
		resp.AssignedDriverID = &s
	}
	if id := v.CurrentTrip(); id != nil {
		s := id.String()
		resp.CurrentTripID = &s
	}
	return resp
}

type driverResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	LicenceNumber  string     `json:"licenceNumber"`
	LicenceExpiry  *time.Time `json:"licenceExpiry,omitempty"`
	DutyStatus     string     `json:"dutyStatus"`
	TotalTrips     int        `json:"totalTrips"`
	CompletedTrips int        `json:"completedTrips"`
	CancelledTrips int        `json:"cancelledTrips"`
	IsActive       bool       `json:"isActive"`
}

func newDriverResponse(d *driver.Driver) driverResponse {
	return driverResponse{
		ID:             d.ID().String(),
		Name:           d.Name(),
		LicenceNumber:  d.LicenceNumber(),
		LicenceExpiry:  d.LicenceExpiry(),
		DutyStatus:     d.DutyStatus().String(),
		TotalTrips:     d.TotalTrips(),
		CompletedTrips: d.CompletedTrips(),
		CancelledTrips: d.CancelledTrips(),
		IsActive:       d.IsActive(),
	}
}

type tripResponse struct {
	ID                 string     `json:"id"`
	Number             string     `json:"number"`
	VehicleID          string     `json:"vehicleId"`
	DriverID           string     `json:"driverId"`
	Origin             string     `json:"origin"`
	Destination        string     `json:"destination"`
	CargoWeightKg      int        `json:"cargoWeightKg"`
	ScheduledStartTime time.Time  `json:"scheduledStartTime"`
	ActualStartTime    *time.Time `json:"actualStartTime,omitempty"`
	ActualEndTime      *time.Time `json:"actualEndTime,omitempty"`
	Status             string     `json:"status"`
	FuelConsumedLiters float64    `json:"fuelConsumedLiters"`
	FuelCost           float64    `json:"fuelCost"`
	Revenue            float64    `json:"revenue"`
	CancelReason       string     `json:"cancelReason,omitempty"`
}

func newTripResponse(t *trip.Trip) tripResponse {
	return tripResponse{
		ID:                 t.ID().String(),
		Number:             t.Number(),
		VehicleID:          t.VehicleID().String(),
		DriverID:           t.DriverID().String(),
		Origin:             t.Origin(),
		Destination:        t.Destination(),
		CargoWeightKg:      t.CargoWeightKg(),
		ScheduledStartTime: t.ScheduledStartTime(),
		ActualStartTime:    t.ActualStartTime(),
		ActualEndTime:      t.ActualEndTime(),
		Status:             t.Status().String(),
		FuelConsumedLiters: t.FuelConsumedLiters(),
		FuelCost:           t.FuelCost(),
		Revenue:            t.Revenue(),
		CancelReason:       t.CancelReason(),
	}
}

type serviceLogResponse struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	VehicleID     string     `json:"vehicleId"`
	Issue         string     `json:"issue"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	EstimatedCost float64    `json:"estimatedCost"`
	Cost          float64    `json:"cost"`
	Notes         string     `json:"notes,omitempty"`
	CancelReason  string     `json:"cancelReason,omitempty"`
	Status        string     `json:"status"`
}

func newServiceLogResponse(s *servicelog.ServiceLog) serviceLogResponse {
	return serviceLogResponse{
		ID:            s.ID().String(),
		Number:        s.Number(),
		VehicleID:     s.VehicleID().String(),
		Issue:         s.Issue(),
		ScheduledDate: s.ScheduledDate(),
		StartedAt:     s.StartedAt(),
		CompletedAt:   s.CompletedAt(),
		EstimatedCost: s.EstimatedCost(),
		Cost:          s.Cost(),
		Notes:         s.Notes(),
		CancelReason:  s.CancelReason(),
		Status:        s.Status().String(),
	}
}

type expenseLogResponse struct {
	ID                string    `json:"id"`
	Number            string    `json:"number"`
	VehicleID         string    `json:"vehicleId"`
	DriverID          string    `json:"driverId"`
	TripID            *string   `json:"tripId,omitempty"`
	Category          string    `json:"category"`
	Liters            float64   `json:"liters,omitempty"`
	CostPerLiter      float64   `json:"costPerLiter,omitempty"`
	TotalCost         float64   `json:"totalCost"`
	ExpenseType       string    `json:"expenseType,omitempty"`
	OdometerReadingKm float64   `json:"odometerReadingKm,omitempty"`
	Description       string    `json:"description,omitempty"`
	RecordedAt        time.Time `json:"recordedAt"`
}

func newExpenseLogResponse(e *expenselog.ExpenseLog) expenseLogResponse {
	resp := expenseLogResponse{
		ID:                e.ID().String(),
		Number:            e.Number(),
		VehicleID:         e.VehicleID().String(),
		DriverID:          e.DriverID().String(),
		Category:          e.Category().String(),
		Liters:            e.Liters(),
		CostPerLiter:      e.CostPerLiter(),
		TotalCost:         e.TotalCost(),
		ExpenseType:       e.ExpenseType(),
		OdometerReadingKm: e.OdometerReadingKm(),
		Description:       e.Description(),
		RecordedAt:        e.RecordedAt(),
	}
	if id := e.TripID(); id != nil {
		s := id.String()
		resp.TripID = &s
	}
	return resp
}
