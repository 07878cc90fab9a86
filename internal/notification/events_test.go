package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
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

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent []published
	err  error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return f.err
}

func testReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	r, err := domain.ParseDateRange("2025-03-10", "2025-03-13")
	require.NoError(t, err)
	return &domain.Reservation{
		ID:            "res-1",
		RoomID:        "r101",
		Range:         r,
		Party:         domain.PartySize{Adults: 2},
		PaymentMethod: domain.PaymentBankTransfer,
		Price:         domain.PriceBreakdown{Nights: 3, Total: 3_450_000},
		Status:        domain.StatusPending,
		Requester:     domain.GuestRequester(domain.GuestProfile{Name: "Minh_Tran", Phone: "0901234567"}, ""),
	}
}

func TestEventPublisher_ReservationCreated(t *testing.T) {
	ch := &fakeChannel{}
	p := &EventPublisher{ch: ch, exchange: "reservations", logger: newTestLogger(t)}

	p.NotifyReservationCreated(context.Background(), testReservation(t), &domain.Room{ID: "r101", Number: "101"})

	require.Len(t, ch.sent, 1)
	sent := ch.sent[0]
	assert.Equal(t, "reservations", sent.exchange)
	assert.Equal(t, EventReservationCreated, sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)

	var e Event
	require.NoError(t, json.Unmarshal(sent.msg.Body, &e))
	assert.Equal(t, sent.msg.MessageId, e.ID)
	assert.Equal(t, "101", e.RoomNumber)
	assert.Equal(t, "res-1", e.Reservation.ID)
	assert.Equal(t, domain.Money(3_450_000), e.Reservation.TotalAmount())
}

func TestEventPublisher_StatusChanged(t *testing.T) {
	ch := &fakeChannel{}
	p := &EventPublisher{ch: ch, exchange: "reservations", logger: newTestLogger(t)}

	r := testReservation(t)
	r.Status = domain.StatusConfirmed
	p.NotifyStatusChanged(context.Background(), r, domain.StatusPending)

	require.Len(t, ch.sent, 1)
	assert.Equal(t, EventStatusChanged, ch.sent[0].key)

	var e Event
	require.NoError(t, json.Unmarshal(ch.sent[0].msg.Body, &e))
	assert.Equal(t, domain.StatusPending, e.FromStatus)
	assert.Equal(t, domain.StatusConfirmed, e.Reservation.Status)
}

func TestEventPublisher_PublishErrorIsSwallowed(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &EventPublisher{ch: ch, exchange: "reservations", logger: newTestLogger(t)}

	assert.NotPanics(t, func() {
		p.NotifyStatusChanged(context.Background(), testReservation(t), domain.StatusPending)
	})
	assert.NoError(t, p.Close())
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.NotifyReservationCreated(context.Background(), testReservation(t), &domain.Room{Number: "101"})
		n.NotifyStatusChanged(context.Background(), testReservation(t), domain.StatusPending)
	})
}

func TestCreatedText(t *testing.T) {
	text := createdText(testReservation(t), &domain.Room{Number: "101", Type: domain.RoomType{Name: "Double"}})

	assert.Contains(t, text, "Room: 101 (Double)")
	assert.Contains(t, text, "2025-03-10 → 2025-03-13, 3 night(s)")
	assert.Contains(t, text, `Minh\_Tran, 0901234567`)
	assert.Contains(t, text, `bank\_transfer`)
	assert.Contains(t, text, "Total: 3450000")
}

type recorder struct {
	created []string
	changed []domain.ReservationStatus
}

func (r *recorder) NotifyReservationCreated(_ context.Context, res *domain.Reservation, _ *domain.Room) {
	r.created = append(r.created, res.ID)
}

func (r *recorder) NotifyStatusChanged(_ context.Context, _ *domain.Reservation, from domain.ReservationStatus) {
	r.changed = append(r.changed, from)
}

func TestFanout(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	f := Fanout{a, b}

	f.NotifyReservationCreated(context.Background(), testReservation(t), &domain.Room{})
	f.NotifyStatusChanged(context.Background(), testReservation(t), domain.StatusConfirmed)

	for _, r := range []*recorder{a, b} {
		assert.Equal(t, []string{"res-1"}, r.created)
		assert.Equal(t, []domain.ReservationStatus{domain.StatusConfirmed}, r.changed)
	}
}
