// Package order provides domain entities and business logic for confirmed
// marketplace transactions. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding the parties, the immutable price
//     snapshot, and the fulfillment state
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - An order references exactly one of a catalog listing or an accepted
//     custom order (exclusive-or)
//   - Price and currency are snapshotted at creation and never recomputed
//   - Fulfillment follows Pending -> Accepted -> Paid -> Shipped ->
//     Delivered -> Completed, one step at a time
//   - The buyer may cancel until shipment; a dispute may be raised from any
//     non-terminal state and freezes seller updates
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
