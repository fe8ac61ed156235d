package order

import (
	"fmt"
	"strings"

	"qrave/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It is a state machine that only moves forward; every change of state
// goes through TransitionTo.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Completed
//	   │            │           │
//	   └────────────┴───────────┴─────> Cancelled
//
// Completed and Cancelled are terminal. Status is stored and sent over the
// wire by its upper-case name (see String).
type Status int

const (
	// Unknown is the zero value and never a legal state.
	// It catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the state of a freshly placed order awaiting the kitchen.
	Pending

	// Preparing means the kitchen accepted the order and is cooking it.
	Preparing

	// Ready means the order waits at the pass for service.
	Ready

	// Completed means the order was served. Terminal.
	Completed

	// Cancelled means the order was abandoned before completion. Terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "PENDING",
	Preparing: "PREPARING",
	Ready:     "READY",
	Completed: "COMPLETED",
	Cancelled: "CANCELLED",
}

// successors is the legal transition graph.
var successors = map[Status][]Status{
	Pending:   {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {Completed, Cancelled},
}

// AllStatuses lists the legal states in display priority order.
func AllStatuses() []Status {
	return []Status{Pending, Preparing, Ready, Completed, Cancelled}
}

// ParseStatus maps a wire name back to a Status.
//
// Matching ignores case and surrounding whitespace, so "ready" and
// " READY " both parse.
//
// Returns:
//   - (status, nil) for one of the five legal names
//   - (Unknown, error) wrapping errs.ErrValueIsInvalid otherwise
//
// Example:
//
//	s, err := order.ParseStatus("preparing") // Preparing, nil
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire name of the status.
//
// Returns:
//   - "PENDING", "PREPARING", "READY", "COMPLETED" or "CANCELLED"
//   - "UNKNOWN" for any other value
//
// It implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate checks that s is one of the legal states.
//
// Unknown (0) and out-of-range values, e.g. read from storage, are
// rejected with an error wrapping errs.ErrValueIsInvalid.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Priority is the dashboard rank of s: lower ranks are shown first.
//
// Returns:
//   - 0 for Pending up to 4 for Cancelled, following AllStatuses
//   - 5 for Unknown and invalid values, so they sort last
func (s Status) Priority() int {
	switch s {
	case Pending:
		return 0
	case Preparing:
		return 1
	case Ready:
		return 2
	case Completed:
		return 3
	case Cancelled:
		return 4
	default:
		return 5
	}
}

// CanTransitionTo reports whether target is a legal successor of s.
// Self transitions are never legal, and nothing leaves a terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range successors[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves s to target when the transition graph allows it.
//
// Returns:
//   - (target, nil) on a legal move
//   - (s, error) wrapping errs.ErrValueIsInvalid when target is not a legal state
//   - (s, *errs.InvalidTransitionError) naming both states otherwise
//
// Order.ChangeStatus uses it to enforce the lifecycle.
//
// Example:
//
//	next, err := order.Ready.TransitionTo(order.Completed) // Completed, nil
//	_, err = order.Completed.TransitionTo(order.Pending)   // invalid transition
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(target) {
		return s, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
