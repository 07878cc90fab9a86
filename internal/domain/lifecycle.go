package domain

import (
	"fmt"
	"time"
)

var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCheckedIn},
	StatusCheckedIn: {StatusCheckedOut},
}

// IsTerminal reports whether no transition leaves s.
func (s ReservationStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// AllowedTransitions lists the statuses reachable from s in one step.
func AllowedTransitions(s ReservationStatus) []ReservationStatus {
	out := make([]ReservationStatus, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

// CheckTransition validates a status change against the lifecycle table.
// today is the hotel's current calendar date, used by the check-in precondition.
func CheckTransition(r *Reservation, to ReservationStatus, today time.Time) error {
	allowed := false
	for _, s := range transitions[r.Status] {
		if s == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return &InvalidTransitionError{From: r.Status, To: to}
	}

	if to == StatusCheckedIn && !r.Range.Contains(today) {
		return &InvalidTransitionError{
			From: r.Status,
			To:   to,
			Reason: fmt.Sprintf("check-in is only possible from %s until %s",
				r.Range.CheckIn.Format(DateLayout), r.Range.CheckOut.Format(DateLayout)),
		}
	}

	return nil
}
