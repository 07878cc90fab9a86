// Package memory keeps rooms, accounts and reservations in process. It backs the
// "memory" storage driver and service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/availability"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

// ReservationStore indexes each room's held reservations so that Create rejects
// overlaps under the same mutex that inserts.
type ReservationStore struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Reservation
	byKey  map[string]string
	byRoom map[string][]string
	held   map[string]*availability.Index
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		byID:   make(map[string]*domain.Reservation),
		byKey:  make(map[string]string),
		byRoom: make(map[string][]string),
		held:   make(map[string]*availability.Index),
	}
}

func (s *ReservationStore) Create(_ context.Context, r *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.IdempotencyKey != "" {
		if _, ok := s.byKey[r.IdempotencyKey]; ok {
			return domain.ErrDuplicateRequest
		}
	}

	stored := clone(r)
	idx, ok := s.held[r.RoomID]
	if !ok {
		idx = availability.New(nil)
		s.held[r.RoomID] = idx
	}
	if err := idx.Insert(stored); err != nil {
		return err
	}

	s.byID[r.ID] = stored
	s.byRoom[r.RoomID] = append(s.byRoom[r.RoomID], r.ID)
	if r.IdempotencyKey != "" {
		s.byKey[r.IdempotencyKey] = r.ID
	}
	return nil
}

func (s *ReservationStore) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return clone(r), nil
}

func (s *ReservationStore) GetByIdempotencyKey(_ context.Context, key string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byKey[key]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return clone(s.byID[id]), nil
}

func (s *ReservationStore) ListByRoom(_ context.Context, roomID string, window *domain.DateRange) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Reservation, 0, len(s.byRoom[roomID]))
	for _, id := range s.byRoom[roomID] {
		r := s.byID[id]
		if window != nil && !r.Range.Overlaps(*window) {
			continue
		}
		out = append(out, clone(r))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.CheckIn.Before(out[j].Range.CheckIn)
	})
	return out, nil
}

func (s *ReservationStore) ListActiveByRoom(_ context.Context, roomID string, window domain.DateRange) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.held[roomID]
	if !ok {
		return []*domain.Reservation{}, nil
	}
	found := idx.Overlapping(window)
	out := make([]*domain.Reservation, 0, len(found))
	for _, r := range found {
		out = append(out, clone(r))
	}
	return out, nil
}

func (s *ReservationStore) ListByPhone(_ context.Context, normalizedPhone string) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Reservation{}
	for _, r := range s.byID {
		if r.Requester.IsGuest() && domain.NormalizePhone(r.Requester.Guest.Phone) == normalizedPhone {
			out = append(out, clone(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *ReservationStore) UpdateStatus(_ context.Context, id string, from, to domain.ReservationStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if r.Status != from {
		return &domain.InvalidTransitionError{From: r.Status, To: to, Reason: "status changed concurrently"}
	}

	s.setStatus(r, to, at)
	return nil
}

func (s *ReservationStore) UpdateNotes(_ context.Context, id, notes string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	r.StaffNotes = notes
	r.UpdatedAt = at
	return nil
}

// CancelStalePending cancels pending reservations whose whole stay lies before today.
func (s *ReservationStore) CancelStalePending(_ context.Context, today, at time.Time) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Reservation
	for _, r := range s.byID {
		if r.Status == domain.StatusPending && !r.Range.CheckOut.After(today) {
			s.setStatus(r, domain.StatusCancelled, at)
			out = append(out, clone(r))
		}
	}
	return out, nil
}

// setStatus must be called with mu held.
func (s *ReservationStore) setStatus(r *domain.Reservation, to domain.ReservationStatus, at time.Time) {
	r.MarkStatus(to, at)
	if !to.HoldsDates() {
		if idx, ok := s.held[r.RoomID]; ok {
			idx.Remove(r.ID)
		}
	}
}

func clone(r *domain.Reservation) *domain.Reservation {
	c := *r
	if r.Requester.Guest != nil {
		g := *r.Requester.Guest
		c.Requester.Guest = &g
	}
	c.ConfirmedAt = cloneTime(r.ConfirmedAt)
	c.CheckedInAt = cloneTime(r.CheckedInAt)
	c.CheckedOutAt = cloneTime(r.CheckedOutAt)
	c.CancelledAt = cloneTime(r.CancelledAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
