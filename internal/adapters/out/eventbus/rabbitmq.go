package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"qrave/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrDeliveriesClosed = errors.New("rabbitmq deliveries channel closed")

// RabbitMQBus publishes to a durable fanout exchange. Every listener binds
// its own exclusive, server-named queue, so each instance receives every
// event.
type RabbitMQBus struct {
	conn     *amqp.Connection
	exchange string
	log      *zap.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

func NewRabbitMQBus(url, exchange string, log *zap.Logger) (*RabbitMQBus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitMQBus{conn: conn, ch: ch, exchange: exchange, log: log.Named("rabbitmq-bus")}, nil
}

func (b *RabbitMQBus) Publish(ctx context.Context, e order.Event) error {
	payload, err := Encode(e)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch.PublishWithContext(ctx,
		b.exchange, // exchange
		"",         // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload,
			Timestamp:   time.Now(),
		})
}

// Listen consumes from a fresh exclusive queue until ctx is done. A closed
// deliveries channel is reported as ErrDeliveriesClosed so the caller can
// reconnect.
func (b *RabbitMQBus) Listen(ctx context.Context, handle func(order.Event)) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err = ch.QueueBind(q.Name, "", b.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, q.Name, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	b.log.Info("listening", zap.String("queue", q.Name), zap.String("exchange", b.exchange))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrDeliveriesClosed
			}
			e, decodeErr := Decode(d.Body)
			if decodeErr != nil {
				b.log.Warn("dropping malformed event", zap.Error(decodeErr))
				continue
			}
			handle(e)
		}
	}
}

func (b *RabbitMQBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch != nil && !b.ch.IsClosed() {
		if err := b.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if b.conn != nil && !b.conn.IsClosed() {
		if err := b.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}
