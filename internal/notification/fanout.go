package notification

import (
	"context"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/quytai0402/KhachSan-sub000/internal/service/ports"
)

// Fanout delivers every notification to each of its targets in order.
type Fanout []ports.ReservationNotifier

func (f Fanout) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, room *domain.Room) {
	for _, n := range f {
		n.NotifyReservationCreated(ctx, r, room)
	}
}

func (f Fanout) NotifyStatusChanged(ctx context.Context, r *domain.Reservation, from domain.ReservationStatus) {
	for _, n := range f {
		n.NotifyStatusChanged(ctx, r, from)
	}
}
