package reservation

import "errors"

var ErrInvalidStatus = errors.New("invalid reservation status")

// Status values are a wire contract with clients; do not rename.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusRefused   Status = "refused"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusPaid, StatusCancelled, StatusRefused:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// transitions is the single source of truth for the lifecycle:
// pending -> accepted | rejected; accepted -> paid | cancelled | refused.
// Checking here centrally means no call site can forget the reconcile and
// notification hooks that transitions cascade into.
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusPaid, StatusCancelled, StatusRefused},
}

// CanTransition reports whether from -> to is a permitted lifecycle step.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Blocks reports whether a reservation in this status holds its pool
// (makes it unavailable while the rental window has not elapsed).
func (s Status) Blocks() bool {
	return s == StatusAccepted || s == StatusPaid
}
