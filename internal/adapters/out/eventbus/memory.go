package eventbus

import (
	"context"
	"sync"

	"qrave/internal/core/domain/model/order"
)

// MemoryBus delivers events synchronously to the listeners of this process.
// It is the default when a single instance serves all traffic.
type MemoryBus struct {
	mu       sync.RWMutex
	next     int
	handlers map[int]func(order.Event)
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: map[int]func(order.Event){}}
}

func (b *MemoryBus) Publish(ctx context.Context, e order.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.handlers {
		h(e)
	}
	return nil
}

// Listen registers handle until ctx is done.
func (b *MemoryBus) Listen(ctx context.Context, handle func(order.Event)) error {
	b.mu.Lock()
	id := b.next
	b.next++
	b.handlers[id] = handle
	b.mu.Unlock()

	<-ctx.Done()

	b.mu.Lock()
	delete(b.handlers, id)
	b.mu.Unlock()
	return nil
}

func (b *MemoryBus) Close() error {
	return nil
}
