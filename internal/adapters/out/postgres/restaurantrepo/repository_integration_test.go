package restaurantrepo_test

import (
	"context"
	"errors"
	"testing"

	"qrave/internal/adapters/out/postgres/pgtest"
	"qrave/internal/adapters/out/postgres/restaurantrepo"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg   *pgtest.Database
	repo *restaurantrepo.GormRestaurantRepository
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.repo = restaurantrepo.NewGormRestaurantRepository(pg.DB, nopTracker{})
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) newRestaurant(slug string) *restaurant.Restaurant {
	s, err := restaurant.NewSlug(slug)
	suite.Require().NoError(err)
	c, err := restaurant.NewCredentialWithCost("kitchen1", bcrypt.MinCost)
	suite.Require().NoError(err)
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), s, "Parmar Hotel", "MG Road", c)
	suite.Require().NoError(err)
	return r
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAddAndGetBySlug() {
	ctx := context.Background()
	r := suite.newRestaurant("parmar-hotel")
	suite.Require().NoError(suite.repo.Add(ctx, r))

	loaded, err := suite.repo.GetBySlug(ctx, r.Slug())

	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(r.ID()))
	suite.Equal("Parmar Hotel", loaded.Name())
	suite.NoError(loaded.Authenticate("kitchen1"))

	var stored restaurantrepo.RestaurantDTO
	suite.Require().NoError(suite.pg.DB.First(&stored, "id = ?", r.ID().Bytes()).Error)
	suite.NotEqual("kitchen1", stored.PasswordHash)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAdd_DuplicateSlug() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newRestaurant("parmar-hotel")))

	err := suite.repo.Add(ctx, suite.newRestaurant("parmar-hotel"))

	var exists *errs.ObjectAlreadyExistsError
	suite.Require().True(errors.As(err, &exists))
	suite.Equal("parmar-hotel", exists.Value)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	r := suite.newRestaurant("parmar-hotel")
	suite.Require().NoError(suite.repo.Add(ctx, r))
	suite.Require().NoError(r.Update("Parmar Hotel & Bar", "Camp"))

	suite.Require().NoError(suite.repo.Update(ctx, r))

	loaded, err := suite.repo.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal("Parmar Hotel & Bar", loaded.Name())
	suite.Equal("Camp", loaded.Address())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestMissing() {
	ctx := context.Background()
	slug, _ := restaurant.NewSlug("nowhere")

	_, err := suite.repo.GetBySlug(ctx, slug)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repo.Get(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	suite.ErrorIs(suite.repo.Delete(ctx, kernel.NewUUID()), errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repo.Update(ctx, suite.newRestaurant("ghost-place")), errs.ErrObjectNotFound)
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
