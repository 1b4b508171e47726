package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/metinatakli/cinema-operations/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes domain events as persistent JSON messages on the
// default exchange. Every routing key maps to a durable queue of the same
// name, declared on first use.
type RabbitPublisher struct {
	conn   *amqp.Connection
	logger *slog.Logger

	mu       sync.Mutex
	ch       channel
	declared map[string]bool
	now      func() time.Time
}

func NewRabbitPublisher(url string, logger *slog.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}

	p := newRabbitPublisher(ch, logger)
	p.conn = conn

	return p, nil
}

func newRabbitPublisher(ch channel, logger *slog.Logger) *RabbitPublisher {
	return &RabbitPublisher{
		ch:       ch,
		logger:   logger,
		declared: make(map[string]bool),
		now:      time.Now,
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event domain.Event) error {
	key := event.RoutingKey()

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal %s event failed: %w", key, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[key] {
		_, err = p.ch.QueueDeclare(key, true, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("rabbitmq: queue declare %s failed: %w", key, err)
		}
		p.declared[key] = true
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}

	err = p.ch.PublishWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return fmt.Errorf("rabbitmq: publish %s failed: %w", key, err)
	}

	p.logger.Debug("event published", "routing_key", key)

	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); connErr != nil && err == nil {
			err = connErr
		}
	}

	return err
}

// LogPublisher writes events to the log. It is used when no broker URL is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "event", "routing_key", event.RoutingKey(), "body", string(body))

	return nil
}
