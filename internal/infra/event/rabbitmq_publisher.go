// Package event publishes order events to RabbitMQ.
package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"shopmart/config"
	"shopmart/internal/domain/service"
	"shopmart/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	defaultExchange        = "shopmart.orders"
	orderCreatedRoutingKey = "order.created"
)

// rabbitPublisher implements service.OrderEventPublisher on top of a RabbitMQ
// topic exchange. Channels are not safe for concurrent use, so publishing is
// serialized with a mutex.
type rabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRabbitPublisher connects to RabbitMQ, declares the topic exchange and
// returns the publisher. The connection is torn down through the Fx lifecycle.
func NewRabbitPublisher(params Params) (service.OrderEventPublisher, error) {
	cfg := params.Config.RabbitMQ
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("rabbitmq config must be provided")
	}

	exchange := cfg.Exchange
	if exchange == "" {
		exchange = defaultExchange
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrap(err, "failed to declare exchange")
	}

	publisher := &rabbitPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

// PublishOrderCreated publishes an order-created event for downstream consumers.
func (p *rabbitPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errors.New("publisher is closed")
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		orderCreatedRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.OrderID,
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to publish order event")
	}

	p.logger.Debug("Order event published",
		slog.String("exchange", p.exchange),
		slog.String("routingKey", orderCreatedRoutingKey),
		slog.String("orderID", event.OrderID))

	return nil
}

// Close releases the channel and the connection. It is safe to call twice.
func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.channel.Close(); err != nil {
		p.conn.Close()

		return errors.Wrap(err, "failed to close RabbitMQ channel")
	}

	return errors.Wrap(p.conn.Close(), "failed to close RabbitMQ connection")
}
