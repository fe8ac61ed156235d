package commands

import (
	"context"
	"time"

	"qrave/internal/core/ports"
)

// RelayOrderEventsCommandHandler drains the outbox into the event bus.
//
// Rows are locked with SKIP LOCKED, so several instances can relay at once
// without publishing the same row twice in the same round. Rows are marked
// published in the transaction that locked them; a crash between publish and
// commit republishes them, so delivery is at-least-once and subscribers
// deduplicate by order version.
//
// When a publish fails the rows already sent are still marked and committed,
// and the error is returned; the failed row stays pending for the next run.
type RelayOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOrderEventsCommandHandler {
	return RelayOrderEventsCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle returns how many events were published.
func (h *RelayOrderEventsCommandHandler) Handle(ctx context.Context, cmd RelayOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	pending, err := repo.Pending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	published := make([]int64, 0, len(pending))
	var publishErr error
	for _, msg := range pending {
		if publishErr = h.publisher.Publish(ctx, msg.Event); publishErr != nil {
			break
		}
		published = append(published, msg.ID)
	}

	if err = repo.MarkPublished(ctx, published); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(published), publishErr
}

// PurgePublishedEventsCommandHandler keeps the outbox table small.
type PurgePublishedEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	now        func() time.Time
}

func NewPurgePublishedEventsCommandHandler(uowFactory OutboxUoWFactory) PurgePublishedEventsCommandHandler {
	return PurgePublishedEventsCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns how many rows were deleted.
func (h *PurgePublishedEventsCommandHandler) Handle(ctx context.Context, cmd PurgePublishedEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.OutboxRepository().PurgePublished(ctx, h.now().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return n, nil
}
