package usecase

import (
	"context"
	"testing"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (CartService, *repository.Repository) {
	t.Helper()
	repo := newTestRepository()
	return NewCartService(repo, testLogger()), repo
}

func seedProduct(t *testing.T, repo *repository.Repository, name string, price float64) *entity.Product {
	t.Helper()
	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  name,
		Price: price,
	}
	require.NoError(t, repo.Product.Create(context.Background(), product))
	return product
}

func TestAddItemCreatesCartOnFirstUse(t *testing.T) {
	service, repo := newCartFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, repo, "keyboard", 49.99)

	result, err := service.AddItem(ctx, userID, &request.AddItemRequest{
		ProductID: product.ID.String(),
		Name:      "keyboard",
		Price:     49.99,
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, userID.String(), result.UserID)
	assert.True(t, result.Active)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].Quantity)
}

// Re-adding the same product replaces the stored quantity, it does not add.
func TestAddItemReplacesQuantity(t *testing.T) {
	service, repo := newCartFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, repo, "keyboard", 49.99)

	_, err := service.AddItem(ctx, userID, &request.AddItemRequest{
		ProductID: product.ID.String(),
		Name:      "keyboard",
		Price:     49.99,
		Quantity:  5,
	})
	require.NoError(t, err)

	result, err := service.AddItem(ctx, userID, &request.AddItemRequest{
		ProductID: product.ID.String(),
		Name:      "keyboard",
		Price:     49.99,
		Quantity:  2,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].Quantity)
}

func TestAddItemSecondProductAppends(t *testing.T) {
	service, repo := newCartFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	keyboard := seedProduct(t, repo, "keyboard", 49.99)
	mouse := seedProduct(t, repo, "mouse", 19.99)

	_, err := service.AddItem(ctx, userID, &request.AddItemRequest{
		ProductID: keyboard.ID.String(),
		Name:      "keyboard",
		Price:     49.99,
		Quantity:  1,
	})
	require.NoError(t, err)

	result, err := service.AddItem(ctx, userID, &request.AddItemRequest{
		ProductID: mouse.ID.String(),
		Name:      "mouse",
		Price:     19.99,
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
}

func TestAddItemUnknownProduct(t *testing.T) {
	service, _ := newCartFixture(t)

	_, err := service.AddItem(context.Background(), uuid.New(), &request.AddItemRequest{
		ProductID: uuid.New().String(),
		Name:      "ghost",
		Price:     1,
		Quantity:  1,
	})
	require.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestAddItemMismatchedSnapshot(t *testing.T) {
	service, repo := newCartFixture(t)
	ctx := context.Background()
	product := seedProduct(t, repo, "keyboard", 49.99)

	_, err := service.AddItem(ctx, uuid.New(), &request.AddItemRequest{
		ProductID: product.ID.String(),
		Name:      "keyboard",
		Price:     0.01,
		Quantity:  1,
	})
	require.ErrorIs(t, err, entity.ErrProductMismatch)

	_, err = service.AddItem(ctx, uuid.New(), &request.AddItemRequest{
		ProductID: product.ID.String(),
		Name:      "not-a-keyboard",
		Price:     49.99,
		Quantity:  1,
	})
	require.ErrorIs(t, err, entity.ErrProductMismatch)
}

func TestGetCartMissing(t *testing.T) {
	service, _ := newCartFixture(t)

	_, err := service.GetCart(context.Background(), uuid.New())
	require.ErrorIs(t, err, entity.ErrCartNotFound)
}

func TestGetAllCarts(t *testing.T) {
	service, repo := newCartFixture(t)
	ctx := context.Background()
	product := seedProduct(t, repo, "keyboard", 49.99)

	for i := 0; i < 3; i++ {
		_, err := service.AddItem(ctx, uuid.New(), &request.AddItemRequest{
			ProductID: product.ID.String(),
			Name:      "keyboard",
			Price:     49.99,
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	result, err := service.GetAllCarts(ctx, &request.ListRequest{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
}

func TestDeleteCart(t *testing.T) {
	service, repo := newCartFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, repo, "keyboard", 49.99)

	cart, err := service.AddItem(ctx, userID, &request.AddItemRequest{
		ProductID: product.ID.String(),
		Name:      "keyboard",
		Price:     49.99,
		Quantity:  1,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCart(ctx, mustParse(t, cart.ID)))

	_, err = service.GetCart(ctx, userID)
	require.ErrorIs(t, err, entity.ErrCartNotFound)

	err = service.DeleteCart(ctx, mustParse(t, cart.ID))
	require.ErrorIs(t, err, entity.ErrCartNotFound)
}
