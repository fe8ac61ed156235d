// Package order implements the Order aggregate of the table-ordering domain.
//
// The package includes:
//   - Order: the aggregate root. It captures a snapshot of the ordered menu
//     items (name and unit price at the time of ordering), computes the total
//     once at creation and afterwards changes only through status transitions.
//   - Item: an immutable order line.
//   - Status: the lifecycle state machine. It is the single authority on which
//     transitions are legal.
//   - Event: the domain events an order records while it changes. The unit of
//     work persists them to the outbox in the same transaction as the change.
//   - SortForDisplay: the dashboard ordering contract.
//
// Lifecycle:
//
//	PENDING ──> PREPARING ──> READY ──> COMPLETED
//	   │            │           │
//	   └────────────┴───────────┴────> CANCELLED
//
// COMPLETED and CANCELLED are terminal. Every successful transition bumps the
// order version by one; observers use the version to tell newer information
// from stale information.
package order
