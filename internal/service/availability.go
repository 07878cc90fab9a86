package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/availability"
	"github.com/quytai0402/KhachSan-sub000/internal/booking"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/quytai0402/KhachSan-sub000/internal/pricing"
	"github.com/quytai0402/KhachSan-sub000/internal/service/ports"
)

const defaultMaxHorizonDays = 366

type AvailabilityService struct {
	repo           ports.ReservationRepo
	rooms          ports.RoomCatalog
	calc           *pricing.Calculator
	maxHorizonDays int
}

func NewAvailabilityService(
	repo ports.ReservationRepo,
	rooms ports.RoomCatalog,
	calc *pricing.Calculator,
	maxHorizonDays int,
) *AvailabilityService {
	if maxHorizonDays <= 0 {
		maxHorizonDays = defaultMaxHorizonDays
	}
	return &AvailabilityService{
		repo:           repo,
		rooms:          rooms,
		calc:           calc,
		maxHorizonDays: maxHorizonDays,
	}
}

// IsFree answers from persisted state only; the answer is advisory until commit.
func (s *AvailabilityService) IsFree(ctx context.Context, roomID string, r domain.DateRange) (bool, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return false, fmt.Errorf("get room: %w", err)
	}
	return s.free(ctx, roomID, r)
}

func (s *AvailabilityService) BlockedDates(ctx context.Context, roomID string, horizon domain.DateRange) ([]time.Time, error) {
	if horizon.Nights() > s.maxHorizonDays {
		return nil, fmt.Errorf("%w: horizon is limited to %d days", domain.ErrValidation, s.maxHorizonDays)
	}
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	idx, err := s.index(ctx, roomID, horizon)
	if err != nil {
		return nil, err
	}
	return idx.BlockedDates(horizon), nil
}

// Quote prices a prospective stay with the current policy.
func (s *AvailabilityService) Quote(ctx context.Context, roomID string, r domain.DateRange) (*domain.PriceBreakdown, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	p := s.calc.Price(room.NightlyRate, r)
	return &p, nil
}

// Checker exposes the advisory check to the booking workflow.
func (s *AvailabilityService) Checker() booking.AvailabilityChecker {
	return checkerFunc(s.free)
}

func (s *AvailabilityService) free(ctx context.Context, roomID string, r domain.DateRange) (bool, error) {
	idx, err := s.index(ctx, roomID, r)
	if err != nil {
		return false, err
	}
	return idx.IsFree(r), nil
}

func (s *AvailabilityService) index(ctx context.Context, roomID string, window domain.DateRange) (*availability.Index, error) {
	active, err := s.repo.ListActiveByRoom(ctx, roomID, window)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	return availability.New(active), nil
}

type checkerFunc func(ctx context.Context, roomID string, r domain.DateRange) (bool, error)

func (f checkerFunc) IsFree(ctx context.Context, roomID string, r domain.DateRange) (bool, error) {
	return f(ctx, roomID, r)
}
