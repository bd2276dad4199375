// Package vehicle provides the Vehicle aggregate root and its lifecycle
// state machine.
//
// The package includes:
//   - Vehicle: the aggregate root owning identity, telemetry (odometer, fuel
//     efficiency) and the operational status
//   - Status: a state machine enforcing valid status transitions
//
// Key business rules:
//   - A vehicle is claimed by at most one operation at a time: its status is
//     the mutual-exclusion flag between trips and maintenance
//   - OnTrip always coincides with a current-trip back-reference
//   - The odometer never decreases
//   - Vehicles are retired logically, never deleted
package vehicle
