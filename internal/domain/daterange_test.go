package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, in, out string) DateRange {
	t.Helper()
	r, err := ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func TestDateRange_RequiresOneNight(t *testing.T) {
	_, err := ParseDateRange("2024-05-10", "2024-05-10")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseDateRange("2024-05-10", "2024-05-09")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDateRange_InvalidFormat(t *testing.T) {
	_, err := ParseDateRange("10/05/2024", "2024-05-12")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDateRange_Overlaps_HalfOpen(t *testing.T) {
	a := mustRange(t, "2024-05-08", "2024-05-10")
	b := mustRange(t, "2024-05-10", "2024-05-12")

	assert.False(t, a.Overlaps(b), "checkout day must not conflict with check-in day")
	assert.False(t, b.Overlaps(a))
}

func TestDateRange_Overlaps(t *testing.T) {
	a := mustRange(t, "2024-06-01", "2024-06-03")

	cases := []struct {
		name string
		r    DateRange
		want bool
	}{
		{"identical", mustRange(t, "2024-06-01", "2024-06-03"), true},
		{"partial tail", mustRange(t, "2024-06-02", "2024-06-04"), true},
		{"partial head", mustRange(t, "2024-05-30", "2024-06-02"), true},
		{"enclosing", mustRange(t, "2024-05-01", "2024-07-01"), true},
		{"adjacent after", mustRange(t, "2024-06-03", "2024-06-05"), false},
		{"adjacent before", mustRange(t, "2024-05-30", "2024-06-01"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Overlaps(tc.r))
		})
	}
}

func TestDateRange_NightsAndDates(t *testing.T) {
	r := mustRange(t, "2024-02-27", "2024-03-02")

	assert.Equal(t, 4, r.Nights())
	dates := r.Dates()
	require.Len(t, dates, 4)
	assert.Equal(t, "2024-02-29", dates[2].Format(DateLayout))
}

func TestDateRange_Contains(t *testing.T) {
	r := mustRange(t, "2024-06-01", "2024-06-03")

	assert.True(t, r.Contains(time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC)))
}

func TestDateRange_Intersect(t *testing.T) {
	r := mustRange(t, "2024-06-01", "2024-06-10")

	got, ok := r.Intersect(mustRange(t, "2024-06-08", "2024-06-20"))
	require.True(t, ok)
	assert.Equal(t, "2024-06-08..2024-06-10", got.String())

	_, ok = r.Intersect(mustRange(t, "2024-06-10", "2024-06-11"))
	assert.False(t, ok)
}
