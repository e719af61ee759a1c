package memory

import (
	"context"
	"testing"
	"time"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, name string) *entity.User {
	t.Helper()
	user, err := entity.NewCustomer(name, name+"@example.com", "C/ Mayor, 1")
	require.NoError(t, err)

	return user
}

func newProduct(t *testing.T, name string) *entity.Product {
	t.Helper()
	product, err := entity.NewGenericProduct(name, decimal.RequireFromString("9.99"), 10)
	require.NoError(t, err)

	return product
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	ana := newCustomer(t, "Ana")
	require.NoError(t, repo.Create(ctx, ana))

	found, err := repo.FindByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana, found)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	ana := newCustomer(t, "Ana")
	luis := newCustomer(t, "Luis")
	marta := newCustomer(t, "Marta")
	for _, user := range []*entity.User{ana, luis, marta} {
		require.NoError(t, repo.Create(ctx, user))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"Ana", "Luis", "Marta"},
		[]string{users[0].Name, users[1].Name, users[2].Name})
}

func TestProductRepository_DeleteSemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	mug := newProduct(t, "Taza")
	require.NoError(t, repo.Create(ctx, mug))

	removed, err := repo.Delete(ctx, mug.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.FindByID(ctx, mug.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	// Unknown ids report false without failing.
	removed, err = repo.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestProductRepository_ListAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	first := newProduct(t, "A")
	second := newProduct(t, "B")
	third := newProduct(t, "C")
	for _, product := range []*entity.Product{first, second, third} {
		require.NoError(t, repo.Create(ctx, product))
	}

	removed, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, removed)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "C", products[1].Name)
}

func TestOrderRepository_ListByCustomerSortedByTime(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	ana := newCustomer(t, "Ana")
	luis := newCustomer(t, "Luis")

	base := time.Now()
	mkOrder := func(customer *entity.User, offset time.Duration) *entity.Order {
		order, err := entity.NewOrder(customer, nil)
		require.NoError(t, err)
		order.CreatedAt = base.Add(offset)

		return order
	}

	late := mkOrder(ana, 2*time.Hour)
	early := mkOrder(ana, -time.Hour)
	other := mkOrder(luis, 0)
	for _, order := range []*entity.Order{late, other, early} {
		require.NoError(t, repo.Append(ctx, order))
	}

	orders, err := repo.ListByCustomer(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, early.ID, orders[0].ID)
	assert.Equal(t, late.ID, orders[1].ID)
}

func TestOrderRepository_StableForEqualTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	ana := newCustomer(t, "Ana")
	when := time.Now()

	var ids []uuid.UUID
	for range 3 {
		order, err := entity.NewOrder(ana, nil)
		require.NoError(t, err)
		order.CreatedAt = when
		require.NoError(t, repo.Append(ctx, order))
		ids = append(ids, order.ID)
	}

	orders, err := repo.ListByCustomer(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, order := range orders {
		assert.Equal(t, ids[i], order.ID)
	}
}
