package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckTransition_Table(t *testing.T) {
	today := date(2024, 6, 1)
	rng := DateRange{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 3)}

	cases := []struct {
		from ReservationStatus
		to   ReservationStatus
		ok   bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusCheckedIn, StatusCheckedOut, true},

		{StatusPending, StatusCheckedIn, false},
		{StatusPending, StatusCheckedOut, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCheckedIn, StatusCancelled, false},
		{StatusCheckedOut, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			r := &Reservation{Status: tc.from, Range: rng}
			err := CheckTransition(r, tc.to, today)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			var te *InvalidTransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tc.from, te.From)
			assert.Equal(t, tc.to, te.To)
		})
	}
}

func TestCheckTransition_CheckInWindow(t *testing.T) {
	r := &Reservation{
		Status: StatusConfirmed,
		Range:  DateRange{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 3)},
	}

	err := CheckTransition(r, StatusCheckedIn, date(2024, 5, 31))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.NoError(t, CheckTransition(r, StatusCheckedIn, date(2024, 6, 2)))

	err = CheckTransition(r, StatusCheckedIn, date(2024, 6, 3))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCheckedOut.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
}

func TestReservation_MarkStatus(t *testing.T) {
	r := &Reservation{Status: StatusPending}
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	r.MarkStatus(StatusCancelled, at)

	assert.Equal(t, StatusCancelled, r.Status)
	require.NotNil(t, r.CancelledAt)
	assert.Equal(t, at, *r.CancelledAt)
	assert.Equal(t, at, r.UpdatedAt)
	assert.False(t, r.Status.HoldsDates())
}
