package service

import (
	"sync"
	"testing"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/booking"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/quytai0402/KhachSan-sub000/internal/lock"
	"github.com/quytai0402/KhachSan-sub000/internal/pricing"
	"github.com/quytai0402/KhachSan-sub000/internal/repository/memory"
	"github.com/quytai0402/KhachSan-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

var room101 = domain.Room{
	ID:          "r101",
	Number:      "101",
	Type:        domain.RoomType{ID: domain.RoomTypeDouble, Name: "Double"},
	NightlyRate: 1_000_000,
	Capacity:    2,
	Floor:       1,
	Status:      domain.RoomStatusAvailable,
}

var accountLan = domain.Account{ID: "acc-1", Name: "Lan Nguyen", Email: "lan@example.com", Phone: "0912345678"}

type fixture struct {
	svc      *ReservationService
	avail    *AvailabilityService
	guests   *GuestService
	store    *memory.ReservationStore
	rooms    *memory.RoomCatalog
	accounts *memory.AccountDirectory
	clock    *testClock
	notifier *mocks.MockReservationNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:    memory.NewReservationStore(),
		rooms:    memory.NewRoomCatalog(room101),
		accounts: memory.NewAccountDirectory(accountLan),
		clock:    &testClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		notifier: mocks.NewMockReservationNotifier(t),
	}
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	f.svc, f.avail = f.withCalculator(t, newCalculator(t, 0.10, 0.05))
	f.guests = NewGuestService(f.store)
	return f
}

// withCalculator builds services over the fixture's stores with a different price policy.
func (f *fixture) withCalculator(t *testing.T, calc *pricing.Calculator) (*ReservationService, *AvailabilityService) {
	t.Helper()
	avail := NewAvailabilityService(f.store, f.rooms, calc, 0)
	svc := NewReservationService(
		f.store, f.rooms, f.accounts, avail,
		lock.NewLocal(time.Second), f.notifier, calc, newTestLogger(t),
		ReservationOptions{CommitTimeout: 2 * time.Second, Clock: f.clock},
	)
	return svc, avail
}

func newCalculator(t *testing.T, tax, service float64) *pricing.Calculator {
	t.Helper()
	calc, err := pricing.NewCalculator(tax, service)
	require.NoError(t, err)
	return calc
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func dateRange(t *testing.T, in, out string) domain.DateRange {
	t.Helper()
	r, err := domain.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func guestRequest(t *testing.T, in, out string) booking.Request {
	return booking.Request{
		RoomID: room101.ID,
		Form: booking.Form{
			CheckIn:  date(t, in),
			CheckOut: date(t, out),
			Adults:   2,
			Guest: domain.GuestProfile{
				Name:  "Minh Tran",
				Email: "minh@example.com",
				Phone: "090-123-4567",
			},
			PaymentMethod: domain.PaymentCard,
			AgreeToTerms:  true,
		},
	}
}
