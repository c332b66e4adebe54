// Package services provides domain services that implement business rules
// spanning multiple domain entities in the marketplace system.
//
// The package includes:
//   - AccessPolicy: A pure domain service deciding whether an actor may
//     perform an action on an order, custom order or review, given role and
//     ownership relations
//   - RatingCalculator: Computes a user's aggregate reputation from the
//     overall ratings of received reviews
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root, following
// Domain-Driven Design principles.
package services
