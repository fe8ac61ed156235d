package order

import (
	"slices"
	"strings"
	"time"
)

// DisplayKey carries the fields the dashboard ordering looks at.
type DisplayKey struct {
	ID        string
	Status    Status
	CreatedAt time.Time
}

// CompareForDisplay orders by status priority ascending, then newest first,
// then by id so equal timestamps still sort deterministically.
func CompareForDisplay(a, b DisplayKey) int {
	if pa, pb := a.Status.Priority(), b.Status.Priority(); pa != pb {
		return pa - pb
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortForDisplay sorts s in place using key to extract the display fields.
// It never depends on the input order.
func SortForDisplay[T any](s []T, key func(T) DisplayKey) {
	slices.SortStableFunc(s, func(a, b T) int {
		return CompareForDisplay(key(a), key(b))
	})
}

// Key returns the display key of an order aggregate.
func (o *Order) Key() DisplayKey {
	return DisplayKey{ID: o.id.String(), Status: o.status, CreatedAt: o.createdAt}
}
