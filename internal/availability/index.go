// Package availability answers conflict and blocked-date queries for a single room.
package availability

import (
	"sort"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

// Index holds the date-holding reservations of one room sorted by check-in.
//
// Because the held ranges are pairwise non-overlapping, sorting by check-in also sorts
// them by check-out, which lets overlap queries start from a binary search.
// Index is not safe for concurrent use.
type Index struct {
	entries []*domain.Reservation
}

// New builds an index from a room's reservations. Cancelled ones are skipped.
func New(reservations []*domain.Reservation) *Index {
	idx := &Index{entries: make([]*domain.Reservation, 0, len(reservations))}
	for _, r := range reservations {
		if r.Status.HoldsDates() {
			idx.entries = append(idx.entries, r)
		}
	}
	sort.Slice(idx.entries, func(i, j int) bool {
		return idx.entries[i].Range.CheckIn.Before(idx.entries[j].Range.CheckIn)
	})
	return idx
}

func (x *Index) Len() int { return len(x.entries) }

// first returns the position of the first entry whose check-out is after t.
func (x *Index) first(t time.Time) int {
	return sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].Range.CheckOut.After(t)
	})
}

// Overlapping returns the held reservations that overlap r, in check-in order.
func (x *Index) Overlapping(r domain.DateRange) []*domain.Reservation {
	var out []*domain.Reservation
	for i := x.first(r.CheckIn); i < len(x.entries); i++ {
		e := x.entries[i]
		if !e.Range.CheckIn.Before(r.CheckOut) {
			break
		}
		out = append(out, e)
	}
	return out
}

// IsFree reports whether no held reservation overlaps r.
func (x *Index) IsFree(r domain.DateRange) bool {
	i := x.first(r.CheckIn)
	return i == len(x.entries) || !x.entries[i].Range.CheckIn.Before(r.CheckOut)
}

// BlockedDates expands every held reservation into its nights, bounded by horizon.
// The result is sorted and free of duplicates.
func (x *Index) BlockedDates(horizon domain.DateRange) []time.Time {
	var out []time.Time
	for _, e := range x.Overlapping(horizon) {
		part, ok := e.Range.Intersect(horizon)
		if !ok {
			continue
		}
		out = append(out, part.Dates()...)
	}
	return out
}

// Insert adds r keeping the order. It fails with ErrConflict when r would overlap a
// held reservation. Cancelled reservations are ignored.
func (x *Index) Insert(r *domain.Reservation) error {
	if !r.Status.HoldsDates() {
		return nil
	}
	if !x.IsFree(r.Range) {
		return domain.ErrConflict
	}

	pos := sort.Search(len(x.entries), func(i int) bool {
		return !x.entries[i].Range.CheckIn.Before(r.Range.CheckIn)
	})
	x.entries = append(x.entries, nil)
	copy(x.entries[pos+1:], x.entries[pos:])
	x.entries[pos] = r
	return nil
}

// Remove drops the reservation with the given id, returning whether it was held.
func (x *Index) Remove(id string) bool {
	for i, e := range x.entries {
		if e.ID == id {
			x.entries = append(x.entries[:i], x.entries[i+1:]...)
			return true
		}
	}
	return false
}
