package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	EventReservationCreated = "reservation.created"
	EventStatusChanged      = "reservation.status_changed"

	publishTimeout = 5 * time.Second
)

// Event is the message body published for every reservation change.
// Delivery to guests (email, SMS) is done by consumers of the exchange.
type Event struct {
	ID          string                   `json:"id"`
	Type        string                   `json:"type"`
	OccurredAt  time.Time                `json:"occurred_at"`
	Reservation *domain.Reservation      `json:"reservation"`
	FromStatus  domain.ReservationStatus `json:"from_status,omitempty"`
	RoomNumber  string                   `json:"room_number,omitempty"`
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// EventPublisher sends reservation events to a RabbitMQ topic exchange.
type EventPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	logger   logger.Logger
}

func NewEventPublisher(url, exchange string, log logger.Logger) (*EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &EventPublisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *EventPublisher) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, room *domain.Room) {
	p.publish(ctx, Event{
		Type:        EventReservationCreated,
		Reservation: r,
		RoomNumber:  room.Number,
	})
}

func (p *EventPublisher) NotifyStatusChanged(ctx context.Context, r *domain.Reservation, from domain.ReservationStatus) {
	p.publish(ctx, Event{
		Type:        EventStatusChanged,
		Reservation: r,
		FromStatus:  from,
	})
}

func (p *EventPublisher) publish(ctx context.Context, e Event) {
	e.ID = uuid.New().String()
	e.OccurredAt = time.Now().UTC()

	body, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("failed to encode reservation event",
			logger.String("type", e.Type),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, e.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID,
		Timestamp:    e.OccurredAt,
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish reservation event",
			logger.String("type", e.Type),
			logger.String("reservation_id", e.Reservation.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *EventPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
