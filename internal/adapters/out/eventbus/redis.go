package eventbus

import (
	"context"

	"qrave/internal/core/domain/model/order"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisBus uses Redis pub/sub on a single channel.
type RedisBus struct {
	client  *redis.Client
	channel string
	log     *zap.Logger
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

func NewRedisBus(cfg RedisConfig, log *zap.Logger) *RedisBus {
	return &RedisBus{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		channel: cfg.Channel,
		log:     log.Named("redis-bus"),
	}
}

func (b *RedisBus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *RedisBus) Publish(ctx context.Context, e order.Event) error {
	payload, err := Encode(e)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Listen subscribes and blocks until ctx is done. go-redis resubscribes
// after connection loss; the new subscription confirmation is reported as
// ErrListenerReset since messages sent in the gap are lost.
func (b *RedisBus) Listen(ctx context.Context, handle func(order.Event)) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer func() { _ = sub.Close() }()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	b.log.Info("listening", zap.String("channel", b.channel))

	messages := sub.ChannelWithSubscriptions(ctx, 100)
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-messages:
			if !ok {
				return ErrListenerReset
			}
			switch msg := m.(type) {
			case *redis.Subscription:
				if msg.Kind == "subscribe" {
					b.log.Warn("resubscribed after connection loss")
					return ErrListenerReset
				}
			case *redis.Message:
				e, err := Decode([]byte(msg.Payload))
				if err != nil {
					b.log.Warn("dropping malformed event", zap.Error(err))
					continue
				}
				handle(e)
			}
		}
	}
}

func (b *RedisBus) Close() error {
	return b.client.Close()
}
