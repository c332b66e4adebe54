package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a confirmed order.
// Fulfillment moves forward through a fixed linear sequence, with two
// side-branches: the buyer may cancel before shipment, and a dispute may be
// raised from any non-terminal state.
//
// State transitions:
//
//	Pending ──> Accepted ──> Paid ──> Shipped ──> Delivered ──> Completed
//	   │            │          │
//	   └────────────┴──────────┴──> Cancelled
//	   any non-terminal ──> Disputed (frozen for seller moves)
//
// Completed and Cancelled are terminal. A Disputed order accepts no further
// seller moves; the buyer may still cancel it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Accepted indicates the seller confirmed the order.
	Accepted

	// Paid indicates payment was recorded for the order.
	Paid

	// Shipped indicates the seller handed the goods to delivery.
	// From here on the buyer can no longer cancel.
	Shipped

	// Delivered indicates the goods reached the buyer.
	Delivered

	// Completed indicates the transaction finished successfully. Terminal;
	// only completed orders are reviewable.
	Completed

	// Cancelled indicates the buyer withdrew before shipment. Terminal.
	Cancelled

	// Disputed indicates a party raised a dispute. The order is frozen for
	// seller updates until resolved outside the core.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
		Disputed:  "Disputed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
		Disputed:  "Disputed",
	}
}

// getForwardSteps returns the immediate successor of each status on the
// linear fulfillment sequence.
func getForwardSteps() map[Status]Status {
	return map[Status]Status{
		Pending:   Accepted,
		Accepted:  Paid,
		Paid:      Shipped,
		Shipped:   Delivered,
		Delivered: Completed,
	}
}

// StatusFromString parses a status name. Returns an error for any value
// outside the valid status set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Advance validates a seller-driven move from s to target.
//
// Valid moves:
//   - the immediate next step on the linear fulfillment sequence
//   - Disputed, from any non-terminal, non-disputed status
//
// Cancellation is not reachable through Advance; it has its own buyer-driven
// path (see Cancel). Terminal and Disputed statuses accept no seller moves.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() || s == Disputed {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	if target == Disputed {
		return Disputed, nil
	}
	if next, ok := getForwardSteps()[s]; ok && next == target {
		return target, nil
	}
	return 0, errs.NewInvalidTransitionError(s.String(), target.String())
}

// Cancel validates the buyer-driven move from s to Cancelled.
// Orders that are already shipped, delivered, completed or cancelled cannot
// be cancelled; everything earlier (and disputed orders) can.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Shipped, Delivered, Completed, Cancelled:
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	case Pending, Accepted, Paid, Disputed:
		return Cancelled, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
}
