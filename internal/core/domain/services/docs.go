// Package services contains domain services: business rules that span more
// than one aggregate and therefore cannot live on a single entity.
//
// TripValidator holds the admissibility checks that couple a trip to its
// vehicle and driver. It is stateless and side-effect free; command handlers
// call it against entity snapshots loaded inside the applying transaction.
package services
