package commands_test

import (
	"testing"

	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func menuUoW(t *testing.T, repo *MockMenuRepository) (*MockUoW, *MockUoWFactory[commands.MenuUoW]) {
	t.Helper()
	uow := new(MockUoW)
	uow.On("MenuRepository").Return(repo).Maybe()
	factory := new(MockUoWFactory[commands.MenuUoW])
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func samosa() menu.Details {
	return menu.Details{
		Name:         "Samosa",
		Description:  "Two pieces with chutney",
		Price:        kernel.MustMoney(4000),
		Category:     "Snacks",
		IsVegetarian: true,
		Available:    true,
	}
}

func TestCreateMenuItemCommandHandler_Handle(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		ctx := t.Context()
		restaurantID := kernel.NewUUID()
		cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), restaurantID, samosa())
		require.NoError(t, err)

		repo := new(MockMenuRepository)
		uow, factory := menuUoW(t, repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*menu.Item")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateMenuItemCommandHandler(factory)
		it, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, it.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "Samosa", it.Name())
		assert.True(t, it.Details().IsVegetarian)
		uow.AssertExpectations(t)
	})

	t.Run("invalid details never open a transaction", func(t *testing.T) {
		d := samosa()
		d.Price = kernel.Money{}
		cmd, _ := commands.NewCreateMenuItemCommand(kernel.NewUUID(), kernel.NewUUID(), d)
		factory := new(MockUoWFactory[commands.MenuUoW])

		h := commands.NewCreateMenuItemCommandHandler(factory)
		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		ctx := t.Context()
		restaurantID := kernel.NewUUID()
		cmd, _ := commands.NewCreateMenuItemCommand(kernel.NewUUID(), restaurantID, samosa())

		repo := new(MockMenuRepository)
		uow, factory := menuUoW(t, repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(errs.NewObjectNotFoundError("restaurant", restaurantID)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCreateMenuItemCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUpdateMenuItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	it, err := menu.NewItem(kernel.NewUUID(), kernel.NewUUID(), samosa())
	require.NoError(t, err)
	d := samosa()
	d.Available = false
	d.Price = kernel.MustMoney(4500)
	cmd, err := commands.NewUpdateMenuItemCommand(it.ID(), d)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow, factory := menuUoW(t, repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, it.ID()).Return(it, nil).Once(),
		repo.On("Update", ctx, it).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, updated.IsAvailable())
	assert.Equal(t, int64(4500), updated.Price().Minor())
	uow.AssertExpectations(t)
}

func TestDeleteMenuItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteMenuItemCommand(id)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow, factory := menuUoW(t, repo)
	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("menu item", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeleteMenuItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
