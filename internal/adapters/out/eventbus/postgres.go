package eventbus

import (
	"context"
	"time"

	"qrave/internal/core/domain/model/order"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pingInterval = 90 * time.Second

// PostgresBus publishes with pg_notify and listens through a dedicated
// lib/pq connection. Payloads must stay under the 8000 byte NOTIFY limit,
// which an encoded event always does.
type PostgresBus struct {
	db      *gorm.DB
	dsn     string
	channel string
	log     *zap.Logger
}

func NewPostgresBus(db *gorm.DB, dsn, channel string, log *zap.Logger) *PostgresBus {
	return &PostgresBus{db: db, dsn: dsn, channel: channel, log: log.Named("pg-bus")}
}

func (b *PostgresBus) Publish(ctx context.Context, e order.Event) error {
	payload, err := Encode(e)
	if err != nil {
		return err
	}
	return b.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", b.channel, string(payload)).Error
}

// Listen blocks until ctx is done or the listener fails to subscribe. The
// lib/pq listener reconnects on its own and marks it with a nil
// notification; Listen then returns ErrListenerReset since notifications
// sent in the gap are lost.
func (b *PostgresBus) Listen(ctx context.Context, handle func(order.Event)) error {
	listener := pq.NewListener(b.dsn, time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				b.log.Warn("listener event", zap.Int("event", int(ev)), zap.Error(err))
			}
		})
	defer func() { _ = listener.Close() }()

	if err := listener.Listen(b.channel); err != nil {
		return err
	}
	b.log.Info("listening", zap.String("channel", b.channel))

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-listener.Notify:
			if n == nil {
				b.log.Warn("listener reconnected")
				return ErrListenerReset
			}
			e, err := Decode([]byte(n.Extra))
			if err != nil {
				b.log.Warn("dropping malformed event", zap.Error(err))
				continue
			}
			handle(e)
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				b.log.Warn("listener ping failed", zap.Error(err))
			}
		}
	}
}

func (b *PostgresBus) Close() error {
	return nil
}
