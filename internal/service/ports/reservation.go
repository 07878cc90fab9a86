package ports

import (
	"context"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

type ReservationRepo interface {
	// Create inserts r atomically. It fails with domain.ErrConflict when r overlaps a
	// date-holding reservation of the same room, and with domain.ErrDuplicateRequest when
	// r's idempotency key is already taken.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error)
	// ListByRoom returns every reservation of the room ordered by check-in, optionally
	// restricted to those overlapping window.
	ListByRoom(ctx context.Context, roomID string, window *domain.DateRange) ([]*domain.Reservation, error)
	// ListActiveByRoom returns the date-holding reservations overlapping window.
	ListActiveByRoom(ctx context.Context, roomID string, window domain.DateRange) ([]*domain.Reservation, error)
	// ListByPhone matches guest reservations on the normalised phone, newest first.
	ListByPhone(ctx context.Context, normalizedPhone string) ([]*domain.Reservation, error)
	// UpdateStatus moves the reservation from -> to only if it is still in from.
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus, at time.Time) error
	UpdateNotes(ctx context.Context, id, notes string, at time.Time) error
	// CancelStalePending cancels pending reservations whose check-out is on or before
	// today. Such a stay can no longer be checked in.
	CancelStalePending(ctx context.Context, today, at time.Time) ([]*domain.Reservation, error)
}
