package service

import (
	"context"
	"fmt"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/quytai0402/KhachSan-sub000/internal/service/ports"
)

// GuestService resolves non-account requesters by phone number.
type GuestService struct {
	repo ports.ReservationRepo
}

func NewGuestService(repo ports.ReservationRepo) *GuestService {
	return &GuestService{repo: repo}
}

// ListByPhone returns every guest reservation placed under the phone, newest first.
// An unknown phone yields an empty list.
func (s *GuestService) ListByPhone(ctx context.Context, phone string) ([]*domain.Reservation, error) {
	normalized := domain.NormalizePhone(phone)
	if normalized == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	list, err := s.repo.ListByPhone(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("list by phone: %w", err)
	}
	if list == nil {
		list = []*domain.Reservation{}
	}
	return list, nil
}

// Autofill returns the guest profile of the most recent reservation under the phone.
func (s *GuestService) Autofill(ctx context.Context, phone string) (*domain.GuestProfile, error) {
	list, err := s.ListByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	for _, r := range list {
		if r.Requester.Guest != nil {
			p := *r.Requester.Guest
			return &p, nil
		}
	}
	return nil, domain.ErrGuestNotFound
}
