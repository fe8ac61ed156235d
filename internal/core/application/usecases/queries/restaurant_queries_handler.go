package queries

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle returns the restaurant with its menu sorted by category and name,
// or *errs.ObjectNotFoundError.
func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantMenuView, error) {
	if err := query.Validate(); err != nil {
		return RestaurantMenuView{}, err
	}

	var row restaurantRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, slug, name, address, password_hash, created_at
		FROM restaurants
		WHERE slug = ?
	`, query.Slug().String()).Scan(&row).Error
	if err != nil {
		return RestaurantMenuView{}, err
	}
	if row.ID == uuid.Nil {
		return RestaurantMenuView{}, errs.NewObjectNotFoundError("restaurant", query.Slug().String())
	}

	view, err := row.view()
	if err != nil {
		return RestaurantMenuView{}, err
	}

	var items []menuItemRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT id, restaurant_id, name, description, price, category, image_url,
			is_vegetarian, is_spicy, available
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY lower(category), lower(name), id
	`, row.ID).Scan(&items).Error
	if err != nil {
		return RestaurantMenuView{}, err
	}

	result := RestaurantMenuView{RestaurantView: view, Menu: make([]MenuItemView, 0, len(items))}
	for _, it := range items {
		v, convErr := it.view()
		if convErr != nil {
			return RestaurantMenuView{}, convErr
		}
		result.Menu = append(result.Menu, v)
	}
	return result, nil
}

type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

// Handle returns restaurants ordered by name.
func (h ListRestaurantsQueryHandler) Handle(ctx context.Context, query ListRestaurantsQuery) ([]RestaurantSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []restaurantSummaryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.slug,
			r.name,
			r.address,
			r.created_at,
			(SELECT count(*) FROM menu_items m WHERE m.restaurant_id = r.id) AS menu_item_count,
			(SELECT count(*) FROM orders o WHERE o.restaurant_id = r.id) AS order_count
		FROM restaurants r
		ORDER BY r.name, r.slug
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]RestaurantSummary, 0, len(rows))
	for _, row := range rows {
		view, convErr := restaurantRow{
			ID: row.ID, Slug: row.Slug, Name: row.Name, Address: row.Address, CreatedAt: row.CreatedAt,
		}.view()
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, RestaurantSummary{
			RestaurantView: view,
			MenuItemCount:  row.MenuItemCount,
			OrderCount:     row.OrderCount,
		})
	}
	return result, nil
}

// dummyHash is compared against when the slug is unknown, so a miss costs
// the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("qrave-login-placeholder"), bcrypt.DefaultCost)
	return h
})

type LoginQueryHandler struct {
	db *gorm.DB
}

func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle returns the restaurant on success and restaurant.ErrInvalidCredentials
// for an unknown slug or a wrong password alike.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (RestaurantView, error) {
	if err := query.Validate(); err != nil {
		return RestaurantView{}, err
	}

	var row restaurantRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, slug, name, address, password_hash, created_at
		FROM restaurants
		WHERE slug = ?
	`, strings.ToLower(strings.TrimSpace(query.Slug()))).Scan(&row).Error
	if err != nil {
		return RestaurantView{}, err
	}

	if row.ID == uuid.Nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(query.Password()))
		return RestaurantView{}, restaurant.ErrInvalidCredentials
	}

	credential, err := restaurant.CredentialFromHash(row.PasswordHash)
	if err != nil {
		return RestaurantView{}, err
	}
	if !credential.Matches(query.Password()) {
		return RestaurantView{}, restaurant.ErrInvalidCredentials
	}

	return row.view()
}

type restaurantRow struct {
	ID           uuid.UUID
	Slug         string
	Name         string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
}

type restaurantSummaryRow struct {
	ID            uuid.UUID
	Slug          string
	Name          string
	Address       string
	CreatedAt     time.Time
	MenuItemCount int
	OrderCount    int
}

func (r restaurantRow) view() (RestaurantView, error) {
	id, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return RestaurantView{}, err
	}
	return RestaurantView{
		ID:        id,
		Slug:      r.Slug,
		Name:      r.Name,
		Address:   r.Address,
		CreatedAt: r.CreatedAt.UTC(),
	}, nil
}

type menuItemRow struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  string
	Price        int64
	Category     string
	ImageURL     string
	IsVegetarian bool
	IsSpicy      bool
	Available    bool
}

func (r menuItemRow) view() (MenuItemView, error) {
	id, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return MenuItemView{}, err
	}
	restaurantID, err := kernel.UUIDFrom(r.RestaurantID)
	if err != nil {
		return MenuItemView{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return MenuItemView{}, errors.Join(errs.NewValueIsInvalidError("stored price"), err)
	}
	return MenuItemView{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        price,
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		IsVegetarian: r.IsVegetarian,
		IsSpicy:      r.IsSpicy,
		Available:    r.Available,
	}, nil
}
