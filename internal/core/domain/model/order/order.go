package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
)

// MaxNoteLength bounds the free-text customer note, in runes.
const MaxNoteLength = 500

// ErrOrderIsNotConstructed is returned for orders that bypassed NewOrder and RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of one table's order.
//
// Invariants:
//   - id and restaurantID are valid, tableNumber is positive
//   - there is at least one item and items never change after creation
//   - total equals the sum of item subtotals at creation and is never recomputed
//   - status changes only through ChangeStatus, which follows the Status graph
//   - version starts at 1 and grows by exactly one per transition
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	tableNumber  int
	items        []Item
	total        kernel.Money
	status       Status
	version      int
	customerNote string
	createdAt    time.Time

	events []Event

	isConstructed bool
}

// NewOrder places a new order for a table.
//
// The order starts PENDING at version 1 and records EventPlaced. Its total
// is the sum of the item subtotals, fixed here and never recomputed.
//
// Parameters:
//   - id, restaurantID: valid UUIDs
//   - tableNumber: positive table number
//   - items: at least one line
//   - note: optional customer note, at most MaxNoteLength runes
//
// Returns:
//   - (*Order, nil) on success
//   - (nil, error) joining every validation failure
//
// Example:
//
//	a, _ := order.NewItem(pizzaID, "Margherita", 2, kernel.MustMoney(1000))
//	b, _ := order.NewItem(colaID, "Cola", 1, kernel.MustMoney(500))
//	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, 7, []order.Item{a, b}, "")
//	// o.Total().Minor() == 2500
func NewOrder(id, restaurantID kernel.UUID, tableNumber int, items []Item, note string) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setTableNumber(tableNumber),
		o.setItems(items),
		o.setNote(note),
	); err != nil {
		return nil, err
	}

	total, err := sumItems(o.items)
	if err != nil {
		return nil, err
	}
	o.total = total

	o.record(EventPlaced)
	return o, nil
}

// State is the persisted shape of an order.
type State struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	TableNumber  int
	Items        []Item
	Total        kernel.Money
	Status       Status
	Version      int
	CustomerNote string
	CreatedAt    time.Time
}

// RestoreOrder rebuilds an order from storage.
//
// The stored total is taken as is and no events are recorded. Every field
// is validated as in NewOrder; in addition the status must be legal and the
// version at least 1.
//
// Returns:
//   - (*Order, nil) on success
//   - (nil, error) joining every validation failure
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		total:         s.Total,
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}

	var versionErr, statusErr error
	if s.Version < 1 {
		versionErr = errs.NewValueIsOutOfRangeError("version", s.Version, 1, "unbounded")
	}
	if statusErr = s.Status.Validate(); statusErr == nil {
		o.status = s.Status
	}
	o.version = s.Version

	if err := errors.Join(
		o.setID(s.ID),
		o.setRestaurantID(s.RestaurantID),
		o.setTableNumber(s.TableNumber),
		o.setItems(s.Items),
		o.setNote(s.CustomerNote),
		statusErr,
		versionErr,
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks that the order was built by NewOrder or RestoreOrder.
//
// Returns:
//   - nil for a constructed order
//   - ErrOrderIsNotConstructed for a nil or zero-value Order
//
// Repositories call it before persisting an aggregate.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual reports whether both orders share an identity. Status and version
// are not compared.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Accessors. Items are returned by copy; the other fields are values.
func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }
func (o *Order) TableNumber() int          { return o.tableNumber }
func (o *Order) Total() kernel.Money       { return o.total }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Version() int              { return o.version }
func (o *Order) CustomerNote() string      { return o.customerNote }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// State returns the persisted shape of the order.
func (o *Order) State() State {
	return State{
		ID:           o.id,
		RestaurantID: o.restaurantID,
		TableNumber:  o.tableNumber,
		Items:        o.Items(),
		Total:        o.total,
		Status:       o.status,
		Version:      o.version,
		CustomerNote: o.customerNote,
		CreatedAt:    o.createdAt,
	}
}

// ChangeStatus applies a transition following the Status graph.
//
// Returns:
//   - nil on success: the version grows by one and EventStatusChanged is recorded
//   - *errs.InvalidTransitionError on an illegal target, leaving the order untouched
//
// Example:
//
//	if err := o.ChangeStatus(order.Preparing); err != nil {
//	    // still PENDING, version unchanged
//	}
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	o.version++
	o.record(EventStatusChanged)
	return nil
}

// Accept moves a pending order into the kitchen.
func (o *Order) Accept() error { return o.ChangeStatus(Preparing) }

// MarkReady signals the dish is at the pass.
func (o *Order) MarkReady() error { return o.ChangeStatus(Ready) }

// Complete closes a served order.
func (o *Order) Complete() error { return o.ChangeStatus(Completed) }

// Cancel abandons an order that is not terminal yet.
func (o *Order) Cancel() error { return o.ChangeStatus(Cancelled) }

// DomainEvents returns the events recorded since construction or the last
// ClearDomainEvents call.
func (o *Order) DomainEvents() []Event {
	return slices.Clone(o.events)
}

// ClearDomainEvents drops recorded events once the unit of work has stored
// them.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(kind EventKind) {
	o.events = append(o.events, Event{
		Kind:         kind,
		OrderID:      o.id,
		RestaurantID: o.restaurantID,
		Status:       o.status,
		Version:      o.version,
		OccurredAt:   time.Now().UTC(),
	})
}

func sumItems(items []Item) (kernel.Money, error) {
	var total kernel.Money
	for _, it := range items {
		sub, err := it.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(sub); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setTableNumber(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table number", fmt.Errorf("%d is not greater than 0", n))
	}
	o.tableNumber = n
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setNote(note string) error {
	note = strings.TrimSpace(note)
	if n := utf8.RuneCountInString(note); n > MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("customer note length", n, 0, MaxNoteLength)
	}
	o.customerNote = note
	return nil
}
