package availability

import (
	"testing"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(t *testing.T, in, out string) domain.DateRange {
	t.Helper()
	r, err := domain.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func res(t *testing.T, id, in, out string, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()
	return &domain.Reservation{ID: id, RoomID: "R101", Range: rng(t, in, out), Status: status}
}

func formatDates(idx *Index, horizon domain.DateRange) []string {
	var out []string
	for _, d := range idx.BlockedDates(horizon) {
		out = append(out, d.Format(domain.DateLayout))
	}
	return out
}

func TestIndex_IsFree(t *testing.T) {
	idx := New([]*domain.Reservation{
		res(t, "a", "2024-06-01", "2024-06-03", domain.StatusConfirmed),
		res(t, "b", "2024-06-10", "2024-06-12", domain.StatusPending),
	})

	assert.True(t, idx.IsFree(rng(t, "2024-06-03", "2024-06-05")), "adjacent after")
	assert.True(t, idx.IsFree(rng(t, "2024-05-28", "2024-06-01")), "adjacent before")
	assert.True(t, idx.IsFree(rng(t, "2024-06-03", "2024-06-10")), "gap exactly")
	assert.True(t, idx.IsFree(rng(t, "2024-07-01", "2024-07-02")), "after all")

	assert.False(t, idx.IsFree(rng(t, "2024-06-02", "2024-06-04")))
	assert.False(t, idx.IsFree(rng(t, "2024-05-01", "2024-07-01")))
	assert.False(t, idx.IsFree(rng(t, "2024-06-11", "2024-06-12")))
}

func TestIndex_IgnoresCancelled(t *testing.T) {
	idx := New([]*domain.Reservation{
		res(t, "a", "2024-06-01", "2024-06-03", domain.StatusCancelled),
		res(t, "b", "2024-06-05", "2024-06-07", domain.StatusCheckedOut),
	})

	assert.Equal(t, 1, idx.Len())
	assert.True(t, idx.IsFree(rng(t, "2024-06-01", "2024-06-03")))
	assert.False(t, idx.IsFree(rng(t, "2024-06-06", "2024-06-08")))
}

func TestIndex_Overlapping(t *testing.T) {
	idx := New([]*domain.Reservation{
		res(t, "c", "2024-06-09", "2024-06-11", domain.StatusConfirmed),
		res(t, "a", "2024-06-01", "2024-06-03", domain.StatusConfirmed),
		res(t, "b", "2024-06-05", "2024-06-07", domain.StatusConfirmed),
	})

	got := idx.Overlapping(rng(t, "2024-06-02", "2024-06-10"))
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)

	assert.Empty(t, idx.Overlapping(rng(t, "2024-06-03", "2024-06-05")))
}

func TestIndex_BlockedDates(t *testing.T) {
	idx := New([]*domain.Reservation{
		res(t, "a", "2024-06-01", "2024-06-03", domain.StatusConfirmed),
		res(t, "b", "2024-06-03", "2024-06-05", domain.StatusPending),
		res(t, "c", "2024-06-20", "2024-06-25", domain.StatusConfirmed),
		res(t, "x", "2024-06-10", "2024-06-12", domain.StatusCancelled),
	})

	got := formatDates(idx, rng(t, "2024-06-02", "2024-06-22"))

	assert.Equal(t, []string{
		"2024-06-02", "2024-06-03", "2024-06-04",
		"2024-06-20", "2024-06-21",
	}, got)
}

func TestIndex_ReadsAreIdempotent(t *testing.T) {
	idx := New([]*domain.Reservation{
		res(t, "a", "2024-06-01", "2024-06-03", domain.StatusConfirmed),
	})
	horizon := rng(t, "2024-05-01", "2024-07-01")
	window := rng(t, "2024-06-02", "2024-06-04")

	assert.Equal(t, idx.IsFree(window), idx.IsFree(window))
	assert.Equal(t, formatDates(idx, horizon), formatDates(idx, horizon))
}

func TestIndex_InsertKeepsInvariant(t *testing.T) {
	idx := New(nil)

	require.NoError(t, idx.Insert(res(t, "b", "2024-06-05", "2024-06-07", domain.StatusPending)))
	require.NoError(t, idx.Insert(res(t, "a", "2024-06-01", "2024-06-05", domain.StatusPending)))
	require.NoError(t, idx.Insert(res(t, "c", "2024-06-07", "2024-06-08", domain.StatusPending)))

	err := idx.Insert(res(t, "d", "2024-06-04", "2024-06-06", domain.StatusPending))
	assert.ErrorIs(t, err, domain.ErrConflict)

	got := idx.Overlapping(rng(t, "2024-01-01", "2025-01-01"))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})

	for i := range got {
		for j := i + 1; j < len(got); j++ {
			assert.False(t, got[i].Range.Overlaps(got[j].Range))
		}
	}
}

func TestIndex_RemoveFreesWindow(t *testing.T) {
	idx := New([]*domain.Reservation{
		res(t, "a", "2024-06-01", "2024-06-03", domain.StatusConfirmed),
	})
	window := rng(t, "2024-06-01", "2024-06-03")

	assert.False(t, idx.IsFree(window))
	assert.True(t, idx.Remove("a"))
	assert.True(t, idx.IsFree(window))
	assert.False(t, idx.Remove("a"))
}
