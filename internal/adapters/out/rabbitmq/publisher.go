// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
//
// Every StatusChanged event becomes one persistent JSON message routed by the
// status the order entered:
//
//	order.pending
//	order.preparing
//	order.out_for_delivery
//	order.delivered
//	order.cancelled
//
// Consumers bind queues with patterns such as "order.*" or "order.delivered".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/order"

	"github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "order_events"

	publishTimeout = 10 * time.Second
	dialAttempts   = 5
)

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Message is the JSON body of a published event.
type Message struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	CourierID  *string   `json:"courier_id,omitempty"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	At         time.Time `json:"at"`
}

// Publisher implements ports.EventPublisher. An amqp channel must not be used
// concurrently, so publishing is serialized.
type Publisher struct {
	mu       sync.Mutex
	ch       channel
	conn     *amqp091.Connection
	exchange string
	logger   *slog.Logger
}

// Dial connects to url, retrying with a growing pause, and declares the
// durable topic exchange.
func Dial(ctx context.Context, url, exchange string, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var err error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		var conn *amqp091.Connection
		conn, err = amqp091.Dial(url)
		if err == nil {
			var ch *amqp091.Channel
			ch, err = conn.Channel()
			if err == nil {
				var p *Publisher
				p, err = NewPublisher(ch, exchange, logger)
				if err == nil {
					p.conn = conn
					return p, nil
				}
			}
			_ = conn.Close()
		}

		if attempt == dialAttempts {
			break
		}
		wait := time.Duration(attempt) * 2 * time.Second
		logger.WarnContext(ctx, "rabbitmq connection failed, retrying",
			"attempt", attempt, "retry_in", wait.String(), "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", dialAttempts, err)
}

// NewPublisher declares the exchange on ch and returns a publisher using it.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if ch == nil {
		return nil, errors.New("rabbitmq channel is nil")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "event_publisher"),
	}, nil
}

// Publish sends the events in order. It stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range events {
		body, err := json.Marshal(NewMessage(event))
		if err != nil {
			return fmt.Errorf("failed to marshal event of order %s: %w", event.OrderID, err)
		}

		key := RoutingKey(event.To)
		publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err = p.ch.PublishWithContext(publishCtx, p.exchange, key, false, false, amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.At,
			MessageId:    event.OrderID.String() + ":" + key,
			Body:         body,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("failed to publish %s: %w", key, err)
		}

		p.logger.DebugContext(ctx, "order event published",
			"routing_key", key, "order_id", event.OrderID.String(), "size", len(body))
	}

	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

// RoutingKey maps a status to "order.<status>", e.g. "order.out_for_delivery".
func RoutingKey(status order.Status) string {
	return "order." + strings.ReplaceAll(strings.ToLower(status.String()), " ", "_")
}

func NewMessage(event order.StatusChanged) Message {
	msg := Message{
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		To:         event.To.String(),
		At:         event.At.UTC(),
	}
	if event.From != order.Unknown {
		msg.From = event.From.String()
	}
	if event.CourierID != nil {
		courierID := event.CourierID.String()
		msg.CourierID = &courierID
	}
	return msg
}
