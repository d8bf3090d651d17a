// Package queue publishes booking lifecycle events to RabbitMQ so downstream
// consumers (analytics, audit trails) can follow reservations without querying
// the primary database.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ndmitrv/seatbooker/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	queueConfirmed = "booking.confirmed"
	queueCanceled  = "booking.canceled"
)

type BookingEvent struct {
	BookingID string `json:"booking_id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Seats     int    `json:"seats"`
	Status    string `json:"status"`
	At        string `json:"at"`
}

type Publisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger logger.Logger
}

// NewPublisher connects to the broker and declares both queues. An empty URL
// disables publishing; every Publish becomes a no-op.
func NewPublisher(url string, logger logger.Logger) (*Publisher, error) {
	if url == "" {
		logger.Warn("rabbitmq url is empty, event publishing disabled")
		return &Publisher{logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	for _, name := range []string{queueConfirmed, queueCanceled} {
		if _, err = ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", name, err)
		}
	}

	return &Publisher{conn: conn, ch: ch, logger: logger}, nil
}

func (p *Publisher) PublishBookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, queueConfirmed, b)
}

func (p *Publisher) PublishBookingCanceled(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, queueCanceled, b)
}

func (p *Publisher) publish(ctx context.Context, queueName string, b *domain.Booking) error {
	if p.ch == nil {
		return nil
	}

	body, err := json.Marshal(BookingEvent{
		BookingID: b.ID,
		EventID:   b.EventID,
		UserID:    b.UserID,
		Seats:     b.Seats,
		Status:    string(b.Status),
		At:        time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// канал amqp не потокобезопасен
	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		return fmt.Errorf("publish to %s: %w", queueName, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.ch == nil {
		return nil
	}
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	return p.conn.Close()
}
