package queries_test

import (
	"context"
	"testing"
	"time"

	"qrave/internal/adapters/out/postgres/menurepo"
	"qrave/internal/adapters/out/postgres/orderrepo"
	"qrave/internal/adapters/out/postgres/pgtest"
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}
func (nopTracker) RecordEvents(...order.Event)     {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	restaurant *restaurant.Restaurant
	dosa       *menu.Item
	chai       *menu.Item
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())

	var err error
	suite.restaurant, err = pgtest.SeedRestaurant(ctx, suite.pg.DB, "parmar-hotel")
	suite.Require().NoError(err)
	suite.dosa, err = pgtest.SeedMenuItem(ctx, suite.pg.DB, suite.restaurant.ID(), "Masala Dosa", 9000)
	suite.Require().NoError(err)
	suite.chai, err = pgtest.SeedMenuItem(ctx, suite.pg.DB, suite.restaurant.ID(), "Cutting Chai", 1500)
	suite.Require().NoError(err)
}

// storeOrder persists an order with a chosen status and creation time.
func (suite *QueriesIntegrationTestSuite) storeOrder(
	restaurantID kernel.UUID,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	dosa, err := order.NewItem(suite.dosa.ID(), suite.dosa.Name(), 1, suite.dosa.Price())
	suite.Require().NoError(err)
	chai, err := order.NewItem(suite.chai.ID(), suite.chai.Name(), 2, suite.chai.Price())
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(order.State{
		ID:           kernel.NewUUID(),
		RestaurantID: restaurantID,
		TableNumber:  3,
		Items:        []order.Item{dosa, chai},
		Total:        kernel.MustMoney(12000),
		Status:       status,
		Version:      1,
		CustomerNote: "less sugar",
		CreatedAt:    createdAt.UTC().Truncate(time.Microsecond),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB, nopTracker{}).Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	o := suite.storeOrder(suite.restaurant.ID(), order.Ready, time.Now())
	handler := queries.NewGetOrderQueryHandler(suite.pg.DB)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)
	view, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(o.ID()))
	suite.Equal(order.Ready, view.Status)
	suite.Equal(int64(12000), view.Total.Minor())
	suite.Equal("less sugar", view.CustomerNote)
	suite.True(view.CreatedAt.Equal(o.CreatedAt()))
	suite.Require().Len(view.Items, 2)
	suite.Equal("Masala Dosa", view.Items[0].Name)
	suite.Equal("Cutting Chai", view.Items[1].Name)
	suite.Equal(int64(3000), view.Items[1].Subtotal.Minor())
	suite.Require().NotNil(view.Items[1].MenuItemID)
	suite.True(view.Items[1].MenuItemID.IsEqual(suite.chai.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	query, _ := queries.NewGetOrderQuery(kernel.NewUUID())

	_, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_SurvivesMenuItemDeletion() {
	ctx := context.Background()
	o := suite.storeOrder(suite.restaurant.ID(), order.Completed, time.Now())
	suite.Require().NoError(menurepo.NewGormMenuRepository(suite.pg.DB, nopTracker{}).Delete(ctx, suite.chai.ID()))

	query, _ := queries.NewGetOrderQuery(o.ID())
	view, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(view.Items, 2)
	suite.Nil(view.Items[1].MenuItemID)
	suite.Equal("Cutting Chai", view.Items[1].Name)
	suite.Equal(int64(1500), view.Items[1].UnitPrice.Minor())
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_DisplayOrder() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	completed := suite.storeOrder(suite.restaurant.ID(), order.Completed, base.Add(5*time.Minute))
	oldPending := suite.storeOrder(suite.restaurant.ID(), order.Pending, base)
	ready := suite.storeOrder(suite.restaurant.ID(), order.Ready, base.Add(4*time.Minute))
	newPending := suite.storeOrder(suite.restaurant.ID(), order.Pending, base.Add(2*time.Minute))
	cancelled := suite.storeOrder(suite.restaurant.ID(), order.Cancelled, base.Add(6*time.Minute))
	preparing := suite.storeOrder(suite.restaurant.ID(), order.Preparing, base.Add(time.Minute))

	other, err := pgtest.SeedRestaurant(ctx, suite.pg.DB, "other-place")
	suite.Require().NoError(err)
	suite.storeOrder(other.ID(), order.Pending, base)

	query, err := queries.NewListOrdersQuery(suite.restaurant.ID())
	suite.Require().NoError(err)
	views, err := queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	want := []*order.Order{newPending, oldPending, preparing, ready, completed, cancelled}
	suite.Require().Len(views, len(want))
	for i, o := range want {
		suite.True(views[i].ID.IsEqual(o.ID()), "position %d: want %s got %s", i, o.Status(), views[i].Status)
		suite.Len(views[i].Items, 2)
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Empty() {
	query, _ := queries.NewListOrdersQuery(suite.restaurant.ID())

	views, err := queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *QueriesIntegrationTestSuite) TestGetRestaurant_WithMenu() {
	query, err := queries.NewGetRestaurantQuery("Parmar-Hotel")
	suite.Require().NoError(err)

	view, err := queries.NewGetRestaurantQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("parmar-hotel", view.Slug)
	suite.Require().Len(view.Menu, 2)
	suite.Equal("Cutting Chai", view.Menu[0].Name)
	suite.Equal("Masala Dosa", view.Menu[1].Name)
	suite.True(view.Menu[1].Available)
}

func (suite *QueriesIntegrationTestSuite) TestGetRestaurant_NotFound() {
	query, _ := queries.NewGetRestaurantQuery("nowhere")

	_, err := queries.NewGetRestaurantQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListRestaurants_Counts() {
	ctx := context.Background()
	suite.storeOrder(suite.restaurant.ID(), order.Pending, time.Now())
	_, err := pgtest.SeedRestaurant(ctx, suite.pg.DB, "another-one")
	suite.Require().NoError(err)

	summaries, err := queries.NewListRestaurantsQueryHandler(suite.pg.DB).Handle(ctx, queries.NewListRestaurantsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	counts := map[string][2]int{}
	for _, s := range summaries {
		counts[s.Slug] = [2]int{s.MenuItemCount, s.OrderCount}
	}
	suite.Equal([2]int{2, 1}, counts["parmar-hotel"])
	suite.Equal([2]int{0, 0}, counts["another-one"])
}

func (suite *QueriesIntegrationTestSuite) TestLogin() {
	ctx := context.Background()
	handler := queries.NewLoginQueryHandler(suite.pg.DB)

	query, err := queries.NewLoginQuery("parmar-hotel", "password")
	suite.Require().NoError(err)
	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(suite.restaurant.ID()))

	query, _ = queries.NewLoginQuery("parmar-hotel", "guess123")
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, restaurant.ErrInvalidCredentials)

	query, _ = queries.NewLoginQuery("nobody-here", "password")
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, restaurant.ErrInvalidCredentials)
}

func (suite *QueriesIntegrationTestSuite) TestUnconstructedQueries() {
	ctx := context.Background()

	_, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(ctx, queries.GetOrderQuery{})
	suite.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)

	_, err = queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(ctx, queries.ListOrdersQuery{})
	suite.ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)

	_, err = queries.NewLoginQueryHandler(suite.pg.DB).Handle(ctx, queries.LoginQuery{})
	suite.ErrorIs(err, queries.ErrLoginQueryIsNotConstructed)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
