// Package seed loads restaurants and their menus from YAML. It backs the
// seed command and ships the demo restaurant.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demo []byte

type File struct {
	Restaurants []Restaurant `yaml:"restaurants"`
}

type Restaurant struct {
	Slug     string     `yaml:"slug"`
	Name     string     `yaml:"name"`
	Address  string     `yaml:"address"`
	Password string     `yaml:"password"`
	Menu     []MenuItem `yaml:"menu"`
}

// MenuItem prices are minor units. Available defaults to true.
type MenuItem struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Price        int64  `yaml:"price"`
	Category     string `yaml:"category"`
	ImageURL     string `yaml:"imageUrl"`
	IsVegetarian bool   `yaml:"isVegetarian"`
	IsSpicy      bool   `yaml:"isSpicy"`
	Available    *bool  `yaml:"available"`
}

func (m MenuItem) details() (menu.Details, error) {
	price, err := kernel.NewMoney(m.Price)
	if err != nil {
		return menu.Details{}, err
	}
	available := true
	if m.Available != nil {
		available = *m.Available
	}
	return menu.Details{
		Name:         m.Name,
		Description:  m.Description,
		Price:        price,
		Category:     m.Category,
		ImageURL:     m.ImageURL,
		IsVegetarian: m.IsVegetarian,
		IsSpicy:      m.IsSpicy,
		Available:    available,
	}, nil
}

// Parse reads a seed file. Unknown keys are rejected so typos do not
// silently drop data.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// Demo returns the built-in demo restaurant.
func Demo() File {
	f, err := Parse(bytes.NewReader(demo))
	if err != nil {
		panic(err)
	}
	return f
}

type RestaurantCreator interface {
	Handle(ctx context.Context, cmd commands.CreateRestaurantCommand) (*restaurant.Restaurant, error)
}

type MenuItemCreator interface {
	Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.Item, error)
}

// Result counts what an import created or skipped.
type Result struct {
	Restaurants int
	MenuItems   int
	Skipped     []string
}

// Importer creates seed data through the regular command handlers, so every
// domain rule applies.
type Importer struct {
	restaurants RestaurantCreator
	menuItems   MenuItemCreator
	logger      *zap.Logger
}

func NewImporter(restaurants RestaurantCreator, menuItems MenuItemCreator, log *zap.Logger) *Importer {
	return &Importer{restaurants: restaurants, menuItems: menuItems, logger: log.Named("seed")}
}

// Import creates every restaurant with its menu. A restaurant whose slug is
// already taken is skipped together with its menu, which makes re-running
// a seed harmless.
func (i *Importer) Import(ctx context.Context, f File) (Result, error) {
	var res Result
	for _, r := range f.Restaurants {
		cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), r.Slug, r.Name, r.Address, r.Password)
		if err != nil {
			return res, fmt.Errorf("restaurant %q: %w", r.Slug, err)
		}

		created, err := i.restaurants.Handle(ctx, cmd)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			i.logger.Info("Restaurant already exists, skipping", zap.String("slug", r.Slug))
			res.Skipped = append(res.Skipped, r.Slug)
			continue
		}
		if err != nil {
			return res, fmt.Errorf("restaurant %q: %w", r.Slug, err)
		}
		res.Restaurants++

		for _, m := range r.Menu {
			if err = i.createMenuItem(ctx, created.ID(), m); err != nil {
				return res, fmt.Errorf("restaurant %q, menu item %q: %w", r.Slug, m.Name, err)
			}
			res.MenuItems++
		}
		i.logger.Info("Seeded restaurant", zap.String("slug", r.Slug), zap.Int("menu_items", len(r.Menu)))
	}
	return res, nil
}

func (i *Importer) createMenuItem(ctx context.Context, restaurantID kernel.UUID, m MenuItem) error {
	details, err := m.details()
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), restaurantID, details)
	if err != nil {
		return err
	}
	_, err = i.menuItems.Handle(ctx, cmd)
	return err
}
