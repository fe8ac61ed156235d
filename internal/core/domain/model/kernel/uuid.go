package kernel

import (
	"fmt"

	"qrave/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object for entities and aggregates.
// It wraps github.com/google/uuid; the zero value is invalid.
//
//	id := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn and hyphen-less forms.
// The nil UUID parses successfully but fails Validate.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// UUIDFrom wraps an already parsed google UUID, as handed over by storage
// drivers and generated API types.
func UUIDFrom(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID for adapters that need it.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
