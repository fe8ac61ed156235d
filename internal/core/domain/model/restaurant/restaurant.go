package restaurant

import (
	"errors"
	"strings"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
)

const (
	MaxNameLength    = 120
	MaxAddressLength = 300
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the tenant aggregate.
type Restaurant struct {
	id         kernel.UUID
	slug       Slug
	name       string
	address    string
	credential Credential

	isConstructed bool
}

func NewRestaurant(id kernel.UUID, slug Slug, name, address string, credential Credential) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}
	if err := errors.Join(
		r.setID(id),
		r.setSlug(slug),
		r.setName(name),
		r.setAddress(address),
		r.setCredential(credential),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreRestaurant rebuilds a stored restaurant with the validation of NewRestaurant.
func RestoreRestaurant(id kernel.UUID, slug Slug, name, address string, credential Credential) (*Restaurant, error) {
	return NewRestaurant(id, slug, name, address, credential)
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID        { return r.id }
func (r *Restaurant) Slug() Slug             { return r.slug }
func (r *Restaurant) Name() string           { return r.name }
func (r *Restaurant) Address() string        { return r.address }
func (r *Restaurant) Credential() Credential { return r.credential }

// Authenticate checks password against the stored credential.
func (r *Restaurant) Authenticate(password string) error {
	if !r.credential.Matches(password) {
		return ErrInvalidCredentials
	}
	return nil
}

// Update replaces the display name and address together.
func (r *Restaurant) Update(name, address string) error {
	probe := &Restaurant{}
	if err := errors.Join(probe.setName(name), probe.setAddress(address)); err != nil {
		return err
	}
	r.name, r.address = probe.name, probe.address
	return nil
}

// ChangeCredential swaps the stored password hash.
func (r *Restaurant) ChangeCredential(c Credential) error {
	return r.setCredential(c)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setSlug(s Slug) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.slug = s
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	if n := len([]rune(name)); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("restaurant name length", n, 1, MaxNameLength)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if n := len([]rune(address)); n > MaxAddressLength {
		return errs.NewValueIsOutOfRangeError("address length", n, 0, MaxAddressLength)
	}
	r.address = address
	return nil
}

func (r *Restaurant) setCredential(c Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.credential = c
	return nil
}
