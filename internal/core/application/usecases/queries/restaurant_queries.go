package queries

import (
	"errors"

	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var (
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
	)
	ErrListRestaurantsQueryIsNotConstructed = errors.New(
		"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
	)
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
)

// GetRestaurantQuery loads a restaurant and its full menu by slug. Orders
// are not included.
type GetRestaurantQuery struct {
	slug restaurant.Slug

	guard guard.ConstructorGuard
}

func NewGetRestaurantQuery(slug string) (GetRestaurantQuery, error) {
	s, err := restaurant.NewSlug(slug)
	if err != nil {
		return GetRestaurantQuery{}, err
	}
	return GetRestaurantQuery{slug: s, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

func (q GetRestaurantQuery) Slug() restaurant.Slug { return q.slug }

// ListRestaurantsQuery lists every restaurant with menu and order counts.
type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// LoginQuery checks a slug and password pair.
type LoginQuery struct {
	slug     string
	password string

	guard guard.ConstructorGuard
}

func NewLoginQuery(slug, password string) (LoginQuery, error) {
	var slugErr, passwordErr error
	if slug == "" {
		slugErr = errs.NewValueIsRequiredError("slug")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(slugErr, passwordErr); err != nil {
		return LoginQuery{}, err
	}
	return LoginQuery{slug: slug, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

func (q LoginQuery) Slug() string     { return q.slug }
func (q LoginQuery) Password() string { return q.password }
