package ports

import (
	"context"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation, room *domain.Room)
	NotifyStatusChanged(ctx context.Context, r *domain.Reservation, from domain.ReservationStatus)
}
