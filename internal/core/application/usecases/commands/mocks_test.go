package commands_test

import (
	"context"
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expectedVersion int) error {
	return m.Called(ctx, o, expectedVersion).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) DeleteTerminal(ctx context.Context, restaurantID kernel.UUID) (int, error) {
	args := m.Called(ctx, restaurantID)
	return args.Int(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*menu.Item)
	return it, args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuRepository) FindByIDs(
	ctx context.Context,
	restaurantID kernel.UUID,
	ids []kernel.UUID,
) ([]*menu.Item, error) {
	args := m.Called(ctx, restaurantID, ids)
	items, _ := args.Get(0).([]*menu.Item)
	return items, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) GetBySlug(ctx context.Context, slug restaurant.Slug) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, slug)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockOutboxRepository) PurgePublished(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, e order.Event) error {
	return m.Called(ctx, e).Error(0)
}

// MockUoW satisfies every narrow unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

// MockUoWFactory hands out the unit of work type T a handler asks for.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

func newOrder(restaurantID kernel.UUID) *order.Order {
	it, err := order.NewItem(kernel.NewUUID(), "Paneer Tikka", 2, kernel.MustMoney(1000))
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, 5, []order.Item{it}, "")
	if err != nil {
		panic(err)
	}
	o.ClearDomainEvents()
	return o
}
