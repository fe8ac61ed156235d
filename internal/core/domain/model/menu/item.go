package menu

import (
	"errors"
	"fmt"
	"strings"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
)

const (
	MaxNameLength        = 120
	MaxDescriptionLength = 1000
	MaxCategoryLength    = 60
)

var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem constructor")

// Details are the staff-editable attributes of a menu item.
type Details struct {
	Name         string
	Description  string
	Price        kernel.Money
	Category     string
	ImageURL     string
	IsVegetarian bool
	IsSpicy      bool
	Available    bool
}

// Item is a dish on a restaurant's menu.
type Item struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	details      Details

	isConstructed bool
}

func NewItem(id, restaurantID kernel.UUID, d Details) (*Item, error) {
	it := &Item{isConstructed: true}
	var ridErr error
	if err := restaurantID.Validate(); err != nil {
		ridErr = errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	if err := errors.Join(id.Validate(), ridErr, it.setDetails(d)); err != nil {
		return nil, err
	}
	it.id, it.restaurantID = id, restaurantID
	return it, nil
}

// RestoreItem rebuilds a stored menu item.
func RestoreItem(id, restaurantID kernel.UUID, d Details) (*Item, error) {
	return NewItem(id, restaurantID, d)
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID           { return i.id }
func (i *Item) RestaurantID() kernel.UUID { return i.restaurantID }
func (i *Item) Details() Details          { return i.details }
func (i *Item) Name() string              { return i.details.Name }
func (i *Item) Price() kernel.Money       { return i.details.Price }
func (i *Item) Category() string          { return i.details.Category }
func (i *Item) IsAvailable() bool         { return i.details.Available }

// Update replaces every editable attribute. On error nothing changes.
func (i *Item) Update(d Details) error {
	return i.setDetails(d)
}

// SetAvailability toggles whether diners can order the item.
func (i *Item) SetAvailability(available bool) {
	i.details.Available = available
}

func (i *Item) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	d.Description = strings.TrimSpace(d.Description)
	d.ImageURL = strings.TrimSpace(d.ImageURL)

	var result []error
	if d.Name == "" {
		result = append(result, errs.NewValueIsRequiredError("name"))
	} else if n := len([]rune(d.Name)); n > MaxNameLength {
		result = append(result, errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength))
	}
	if d.Category == "" {
		result = append(result, errs.NewValueIsRequiredError("category"))
	} else if n := len([]rune(d.Category)); n > MaxCategoryLength {
		result = append(result, errs.NewValueIsOutOfRangeError("category length", n, 1, MaxCategoryLength))
	}
	if n := len([]rune(d.Description)); n > MaxDescriptionLength {
		result = append(result, errs.NewValueIsOutOfRangeError("description length", n, 0, MaxDescriptionLength))
	}
	if !d.Price.IsPositive() {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", d.Price.Minor())))
	}
	if err := errors.Join(result...); err != nil {
		return err
	}
	i.details = d
	return nil
}
