package commands

import (
	"errors"
	"time"

	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var (
	ErrRelayOrderEventsCommandIsNotConstructed = errors.New(
		"RelayOrderEventsCommand must be created via NewRelayOrderEventsCommand constructor",
	)
	ErrPurgePublishedEventsCommandIsNotConstructed = errors.New(
		"PurgePublishedEventsCommand must be created via NewPurgePublishedEventsCommand constructor",
	)
)

// RelayOrderEventsCommand moves up to BatchSize outbox rows to the event bus.
type RelayOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOrderEventsCommand(batchSize int) (RelayOrderEventsCommand, error) {
	if batchSize <= 0 {
		return RelayOrderEventsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}
	return RelayOrderEventsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOrderEventsCommandIsNotConstructed)
}

func (c RelayOrderEventsCommand) BatchSize() int { return c.batchSize }

// PurgePublishedEventsCommand deletes outbox rows published more than
// Retention ago.
type PurgePublishedEventsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgePublishedEventsCommand(retention time.Duration) (PurgePublishedEventsCommand, error) {
	if retention <= 0 {
		return PurgePublishedEventsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}
	return PurgePublishedEventsCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c PurgePublishedEventsCommand) Validate() error {
	return c.guard.Validate(ErrPurgePublishedEventsCommandIsNotConstructed)
}

func (c PurgePublishedEventsCommand) Retention() time.Duration { return c.retention }
