// Package customorder provides domain entities and business logic for bespoke
// purchase requests negotiated outside the catalog inventory. It implements
// the CustomOrder aggregate root with lifecycle management and state
// transitions.
//
// The package includes:
//   - CustomOrder: The aggregate root holding the negotiation state between a
//     buyer and an (optionally unassigned) seller
//   - Status: A state machine that enforces valid lifecycle transitions
//   - DeliveryType: Whether the request carries a delivery deadline
//
// Key business rules:
//   - Buyer and seller are always different users
//   - Pending requests can be accepted, declined or cancelled; accepted
//     requests can be completed or cancelled; all other statuses are terminal
//   - Accepting, declining and completing record their timestamp exactly once
//   - Requests are hard-deletable only while Pending, Declined or Cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package customorder
