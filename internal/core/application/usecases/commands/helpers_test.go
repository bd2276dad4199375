package commands_test

import (
	"testing"
	"time"

	"fleetcore/internal/core/domain/model/driver"
	"fleetcore/internal/core/domain/model/kernel"
	"fleetcore/internal/core/domain/model/servicelog"
	"fleetcore/internal/core/domain/model/trip"
	"fleetcore/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func availableVehicle(t *testing.T, id kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(id, "AB-1234", "Volvo FH16", 20000, "north", 125000, 2.8)
	require.NoError(t, err)
	return v
}

func onTripVehicle(t *testing.T, id, tripID, driverID kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(
		id, "AB-1234", "Volvo FH16", 20000, "north", 125000, 2.8,
		vehicle.OnTrip, &driverID, &tripID, true, nil, nil, 2,
	)
	require.NoError(t, err)
	return v
}

func inShopVehicle(t *testing.T, id kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	now := time.Now().UTC()
	v, err := vehicle.RestoreVehicle(
		id, "AB-1234", "Volvo FH16", 20000, "north", 125000, 2.8,
		vehicle.InShop, nil, nil, true, &now, nil, 2,
	)
	require.NoError(t, err)
	return v
}

func onDutyDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(id, "Sam Reyes", "LIC-99812", nil, driver.OnDuty, 0, 0, 0, true, 1)
	require.NoError(t, err)
	return d
}

func offDutyDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, "Sam Reyes", "LIC-99812", nil)
	require.NoError(t, err)
	return d
}

func onTripDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(id, "Sam Reyes", "LIC-99812", nil, driver.OnTrip, 3, 3, 0, true, 2)
	require.NoError(t, err)
	return d
}

func draftTrip(t *testing.T, id, vehicleID, driverID kernel.UUID) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(id, "TRP-000042", vehicleID, driverID, "Rotterdam", "Hamburg", 15000, time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, err)
	return tr
}

func dispatchedTrip(t *testing.T, id, vehicleID, driverID kernel.UUID) *trip.Trip {
	t.Helper()
	start := time.Now().UTC().Add(-time.Hour)
	tr, err := trip.RestoreTrip(
		id, "TRP-000042", vehicleID, driverID, "Rotterdam", "Hamburg", 15000,
		start, &start, nil, trip.Dispatched, 0, 0, 0, "", 2,
	)
	require.NoError(t, err)
	return tr
}

func newServiceLog(t *testing.T, id, vehicleID kernel.UUID) *servicelog.ServiceLog {
	t.Helper()
	s, err := servicelog.NewServiceLog(id, "SRV-000007", vehicleID, "brake pads worn", time.Now().UTC().Add(48*time.Hour), 350)
	require.NoError(t, err)
	return s
}

func inProgressServiceLog(t *testing.T, id, vehicleID kernel.UUID) *servicelog.ServiceLog {
	t.Helper()
	started := time.Now().UTC().Add(-time.Hour)
	s, err := servicelog.RestoreServiceLog(
		id, "SRV-000007", vehicleID, "brake pads worn", started,
		&started, nil, 350, 0, "", "", servicelog.InProgress, 2,
	)
	require.NoError(t, err)
	return s
}
