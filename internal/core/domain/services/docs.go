// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the cargo tracking system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ItineraryFinder: A domain service assembling candidate itineraries for
//     a route specification from the known voyage schedules
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
