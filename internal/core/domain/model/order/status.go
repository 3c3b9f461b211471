package order

import (
	"fmt"
	"strings"

	"hotelpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions form a linear chain with no branches and no way back:
//
//	Pending ──> Preparing ──> Ready ──> Delivered ──> Paid
//	   │            │           │
//	   └────────────┴───────────┴──────────────────> Paid  (payment only, see MarkPaid)
//
// Paid is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Preparing means the kitchen or the bar has started on the order.
	Preparing

	// Ready means the order is waiting to be served or sent up.
	Ready

	// Delivered means the order reached the table or the room.
	Delivered

	// Paid means a completed payment was applied. No further transitions exist.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Paid:      "paid",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Preparing, Ready, Delivered, Paid}
}

// ParseStatus converts the wire name of a status ("pending", "preparing", ...)
// into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Paid
}

// Next returns the single successor of s. The second result is false when s is
// Paid or not a valid status.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return Delivered, true
	case Delivered:
		return Paid, true
	default:
		return Unknown, false
	}
}

// NextStatus is the lifecycle's successor function; see Status.Next.
func NextStatus(current Status) (Status, bool) {
	return current.Next()
}

// CanTransition reports whether to is the immediate successor of from.
// Skipping stages, repeating a stage and moving backwards are all rejected.
//
//	CanTransition(Pending, Preparing) // true
//	CanTransition(Pending, Ready)     // false, Preparing is skipped
//	CanTransition(Paid, Paid)         // false, Paid is terminal
func CanTransition(from Status, to Status) bool {
	next, ok := from.Next()
	return ok && next == to
}

// TransitionTo validates a lifecycle step and returns the new status.
// It returns an *errs.InvalidTransitionError when CanTransition(s, to) is false.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !CanTransition(s, to) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), to.String())
	}
	return to, nil
}
