package customorder

import (
	"marketplace/internal/pkg/errs"

	"fmt"
)

// Status represents the lifecycle state of a custom order request.
// It implements a state machine with defined transitions to ensure
// negotiations follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──┬──> Completed
//	          │               └──> Cancelled
//	          ├──> Declined
//	          └──> Cancelled
//
// Declined, Completed and Cancelled are terminal states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created request,
	// waiting for the seller's decision.
	Pending

	// Accepted indicates the seller agreed to fulfill the request.
	// An accepted request can back a catalog order.
	Accepted

	// Declined indicates the seller rejected the request. Terminal.
	Declined

	// Completed indicates the seller delivered the bespoke work. Terminal.
	Completed

	// Cancelled indicates either party withdrew before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Declined:  "Declined",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Declined:  "Declined",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getTransitions returns the reachable target statuses per current status.
// Terminal statuses have no entries.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:  {Accepted, Declined, Cancelled},
		Accepted: {Completed, Cancelled},
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
		fmt.Errorf("%q is not a valid custom order status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Accepted, Declined, Completed, Cancelled.
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
	return s == Declined || s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to target against the status graph.
// Returns the target status on success, or an InvalidTransitionError for any
// pair outside the graph, including transitions out of terminal states.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
