package commands_test

import (
	"testing"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restaurantUoW(t *testing.T, repo *MockRestaurantRepository) (*MockUoW, *MockUoWFactory[commands.RestaurantUoW]) {
	t.Helper()
	uow := new(MockUoW)
	uow.On("RestaurantRepository").Return(repo).Maybe()
	factory := new(MockUoWFactory[commands.RestaurantUoW])
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestNewCreateRestaurantCommand(t *testing.T) {
	t.Run("normalizes the slug", func(t *testing.T) {
		cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), " Parmar-Hotel ", "Parmar", "", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "parmar-hotel", cmd.Slug().String())
	})

	t.Run("joins errors", func(t *testing.T) {
		_, err := commands.NewCreateRestaurantCommand(kernel.UUID{}, "a b", "Parmar", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "restaurant id")
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "slug")
	})
}

func TestCreateRestaurantCommandHandler_Handle(t *testing.T) {
	t.Run("stores a hashed credential", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "parmar-hotel", "Parmar Hotel", "MG Road", "secret1")
		require.NoError(t, err)

		repo := new(MockRestaurantRepository)
		uow, factory := restaurantUoW(t, repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*restaurant.Restaurant")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateRestaurantCommandHandler(factory, bcrypt.MinCost)
		r, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Parmar Hotel", r.Name())
		assert.NotEqual(t, "secret1", r.Credential().Hash())
		assert.NoError(t, r.Authenticate("secret1"))
		assert.ErrorIs(t, r.Authenticate("wrong-pass"), restaurant.ErrInvalidCredentials)
		uow.AssertExpectations(t)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "parmar-hotel", "Parmar Hotel", "", "secret1")

		repo := new(MockRestaurantRepository)
		uow, factory := restaurantUoW(t, repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("slug", "parmar-hotel")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCreateRestaurantCommandHandler(factory, bcrypt.MinCost)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("short password never opens a transaction", func(t *testing.T) {
		cmd, _ := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "parmar-hotel", "Parmar Hotel", "", "abc")
		factory := new(MockUoWFactory[commands.RestaurantUoW])

		h := commands.NewCreateRestaurantCommandHandler(factory, bcrypt.MinCost)
		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		factory.AssertNotCalled(t, "Create")
	})
}

func seededRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	slug, err := restaurant.NewSlug("parmar-hotel")
	require.NoError(t, err)
	c, err := restaurant.NewCredentialWithCost("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), slug, "Parmar", "Camp", c)
	require.NoError(t, err)
	return r
}

func TestUpdateRestaurantCommandHandler_Handle(t *testing.T) {
	t.Run("updates name and address", func(t *testing.T) {
		ctx := t.Context()
		r := seededRestaurant(t)
		cmd, err := commands.NewUpdateRestaurantCommand(r.ID(), "Parmar Hotel", "MG Road")
		require.NoError(t, err)

		repo := new(MockRestaurantRepository)
		uow, factory := restaurantUoW(t, repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			repo.On("Update", ctx, r).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewUpdateRestaurantCommandHandler(factory)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Parmar Hotel", updated.Name())
		assert.Equal(t, "MG Road", updated.Address())
		uow.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		ctx := t.Context()
		r := seededRestaurant(t)
		cmd, _ := commands.NewUpdateRestaurantCommand(r.ID(), "  ", "MG Road")

		repo := new(MockRestaurantRepository)
		uow, factory := restaurantUoW(t, repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("Get", ctx, r.ID()).Return(r, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewUpdateRestaurantCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Parmar", r.Name())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteRestaurantCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteRestaurantCommand(id)
	require.NoError(t, err)

	repo := new(MockRestaurantRepository)
	uow, factory := restaurantUoW(t, repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteRestaurantCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}
