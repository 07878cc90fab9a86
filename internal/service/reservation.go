package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quytai0402/KhachSan-sub000/internal/availability"
	"github.com/quytai0402/KhachSan-sub000/internal/booking"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/quytai0402/KhachSan-sub000/internal/pricing"
	"github.com/quytai0402/KhachSan-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultCommitTimeout = 5 * time.Second

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type ReservationOptions struct {
	// CommitTimeout bounds lock wait plus re-check plus insert.
	CommitTimeout time.Duration
	// Location is the hotel's time zone; it decides which calendar date "today" is.
	Location *time.Location
	Clock    ports.Clock
}

type ReservationService struct {
	repo         ports.ReservationRepo
	rooms        ports.RoomCatalog
	accounts     ports.AccountDirectory
	availability *AvailabilityService
	locker       ports.Locker
	notifier     ports.ReservationNotifier
	calc         *pricing.Calculator
	logger       logger.Logger
	opts         ReservationOptions
}

func NewReservationService(
	repo ports.ReservationRepo,
	rooms ports.RoomCatalog,
	accounts ports.AccountDirectory,
	availability *AvailabilityService,
	locker ports.Locker,
	notifier ports.ReservationNotifier,
	calc *pricing.Calculator,
	logger logger.Logger,
	opts ReservationOptions,
) *ReservationService {
	if opts.CommitTimeout <= 0 {
		opts.CommitTimeout = defaultCommitTimeout
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}

	return &ReservationService{
		repo:         repo,
		rooms:        rooms,
		accounts:     accounts,
		availability: availability,
		locker:       locker,
		notifier:     notifier,
		calc:         calc,
		logger:       logger,
		opts:         opts,
	}
}

// Create runs every workflow step and commits the reservation.
// A request carrying an idempotency key that was already committed returns the
// stored reservation.
func (s *ReservationService) Create(ctx context.Context, req booking.Request) (*domain.Reservation, error) {
	if existing, err := s.byIdempotencyKey(ctx, req.Form.IdempotencyKey); err != nil || existing != nil {
		return existing, err
	}

	wf, room, err := s.start(ctx, req)
	if err != nil {
		return nil, err
	}

	for wf.Step() < booking.StepPayment {
		if err = wf.Advance(ctx); err != nil {
			return nil, err
		}
	}

	return wf.Submit(ctx, func(ctx context.Context, c domain.Candidate) (*domain.Reservation, error) {
		return s.commit(ctx, room, c)
	})
}

// ValidateStep checks a single workflow step for the given request.
func (s *ReservationService) ValidateStep(ctx context.Context, req booking.Request, step booking.Step) (domain.FieldErrors, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("%w: unknown step %d", domain.ErrValidation, step)
	}

	wf, _, err := s.start(ctx, req)
	if err != nil {
		return nil, err
	}
	return wf.Validate(ctx, step)
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) ListForRoom(ctx context.Context, roomID string, window *domain.DateRange) ([]*domain.Reservation, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return s.repo.ListByRoom(ctx, roomID, window)
}

func (s *ReservationService) start(ctx context.Context, req booking.Request) (*booking.Workflow, *domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, nil, fmt.Errorf("get room: %w", err)
	}

	var account *domain.Account
	if req.AccountID != "" {
		account, err = s.accounts.GetByID(ctx, req.AccountID)
		if err != nil {
			return nil, nil, fmt.Errorf("get account: %w", err)
		}
	}

	wf := booking.New(room, account, s.availability.Checker())
	wf.Fill(req.Form)
	return wf, room, nil
}

func (s *ReservationService) byIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error) {
	if key == "" {
		return nil, nil
	}
	r, err := s.repo.GetByIdempotencyKey(ctx, key)
	if errors.Is(err, domain.ErrReservationNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get by idempotency key: %w", err)
	}
	return r, nil
}

// commit re-checks availability and inserts under the room lock. The store's own
// overlap guard stays authoritative; the re-check only fails fast.
func (s *ReservationService) commit(ctx context.Context, room *domain.Room, c domain.Candidate) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.CommitTimeout)
	defer cancel()

	release, err := s.locker.Acquire(ctx, roomLockKey(room.ID))
	if err != nil {
		if lockContended(err) {
			s.logger.Warn("room lock wait timed out",
				logger.String("room_id", room.ID),
				logger.String("range", c.Range.String()),
			)
			return nil, fmt.Errorf("%w: room %s is being booked concurrently", domain.ErrConflict, room.Number)
		}
		return nil, fmt.Errorf("acquire room lock: %w", err)
	}
	defer release()

	active, err := s.repo.ListActiveByRoom(ctx, room.ID, c.Range)
	if err != nil {
		return nil, fmt.Errorf("re-check availability: %w", err)
	}
	if !availability.New(active).IsFree(c.Range) {
		return nil, fmt.Errorf("%w: room %s, %s", domain.ErrConflict, room.Number, c.Range)
	}

	now := s.opts.Clock.Now().UTC()
	res := &domain.Reservation{
		ID:              uuid.New().String(),
		RoomID:          room.ID,
		Range:           c.Range,
		Party:           c.Party,
		SpecialRequests: c.SpecialRequests,
		PaymentMethod:   c.PaymentMethod,
		Price:           s.calc.Price(room.NightlyRate, c.Range),
		Status:          domain.StatusPending,
		Requester:       c.Requester,
		IdempotencyKey:  c.IdempotencyKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.repo.Create(ctx, res); err != nil {
		if errors.Is(err, domain.ErrDuplicateRequest) {
			return s.repo.GetByIdempotencyKey(ctx, c.IdempotencyKey)
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("room_id", res.RoomID),
		logger.String("range", res.Range.String()),
		logger.Int64("total", int64(res.Price.Total)),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), res, room)

	return res, nil
}

func roomLockKey(roomID string) string { return "room:" + roomID }

// lockContended reports whether Acquire gave up waiting, either on its own wait
// limit or on the commit deadline.
func lockContended(err error) bool {
	return errors.Is(err, domain.ErrLockTimeout) || errors.Is(err, context.DeadlineExceeded)
}

func reservationLockKey(id string) string { return "reservation:" + id }

// Transition moves a reservation along the lifecycle. Check-in is only allowed on a
// date inside the stay, evaluated in the hotel's time zone.
func (s *ReservationService) Transition(ctx context.Context, id string, target domain.ReservationStatus) (*domain.Reservation, error) {
	release, err := s.locker.Acquire(ctx, reservationLockKey(id))
	if err != nil {
		if lockContended(err) {
			return nil, fmt.Errorf("%w: reservation %s is being updated", domain.ErrConflict, id)
		}
		return nil, fmt.Errorf("acquire reservation lock: %w", err)
	}
	defer release()

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.opts.Clock.Now()
	if err = domain.CheckTransition(res, target, now.In(s.opts.Location)); err != nil {
		return nil, err
	}

	from := res.Status
	if err = s.repo.UpdateStatus(ctx, id, from, target, now.UTC()); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	res.MarkStatus(target, now.UTC())

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", id),
		logger.String("from", string(from)),
		logger.String("to", string(target)),
	)

	go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), res, from)

	return res, nil
}

func (s *ReservationService) UpdateNotes(ctx context.Context, id, notes string) (*domain.Reservation, error) {
	if err := s.repo.UpdateNotes(ctx, id, notes, s.opts.Clock.Now().UTC()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// CancelStalePending cancels pending reservations whose stay ended without ever
// being confirmed. A pending stay still in progress is left for staff to confirm.
func (s *ReservationService) CancelStalePending(ctx context.Context) (int, error) {
	now := s.opts.Clock.Now()
	today := domain.DateOf(now.In(s.opts.Location))

	cancelled, err := s.repo.CancelStalePending(ctx, today, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("cancel stale pending: %w", err)
	}

	for _, r := range cancelled {
		s.logger.Info("stale pending reservation cancelled",
			logger.String("reservation_id", r.ID),
			logger.String("room_id", r.RoomID),
		)
		go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), r, domain.StatusPending)
	}

	return len(cancelled), nil
}
