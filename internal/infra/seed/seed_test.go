package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tienda/internal/infra/persistence/memory"
	"tienda/internal/usecase"
	"tienda/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSeeder(t *testing.T) (*Seeder, usecase.UserUsecase, usecase.CatalogUsecase) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := memory.NewUserRepository()
	productRepo := memory.NewProductRepository()
	orderRepo := memory.NewOrderRepository()

	users := impl.NewUserService(userRepo, logger)
	catalog := impl.NewCatalogService(productRepo, logger)
	orders := impl.NewOrderService(userRepo, productRepo, orderRepo, logger)

	return New(users, catalog, orders, logger), users, catalog
}

func TestSeeder_Run(t *testing.T) {
	seeder, users, catalog := createTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	seededUsers, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, seededUsers, 4)
	assert.Equal(t, "Ana", seededUsers[0].Name)
	assert.True(t, seededUsers[3].IsAdmin())

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)

	// Sample orders already consumed part of the stock.
	stockByName := make(map[string]int, len(products))
	for _, product := range products {
		stockByName[product.Name] = product.Stock
	}
	assert.Equal(t, 8, stockByName["Auriculares"])
	assert.Equal(t, 14, stockByName["Ratón gamer"])
	assert.Equal(t, 49, stockByName["Camiseta"])
	assert.Equal(t, 18, stockByName["Sudadera"])
	assert.Equal(t, 13, stockByName["Pantalón"])
}
