// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddProductInput defines the data required to add a product to the
// catalog. WarrantyMonths is required for electronic products; Size and
// Color are required for apparel.
type AddProductInput struct {
	Kind           string
	Name           string
	Price          decimal.Decimal
	Stock          int
	WarrantyMonths *int
	Size           string
	Color          string
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	// AddProduct creates a product of the requested kind and inserts it
	// into the catalog.
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)

	// GetProduct retrieves a product by id.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns all catalog products in insertion order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// RemoveProduct hard-removes a product by id and reports whether it
	// existed. An unknown id is not an error. Outstanding orders
	// referencing the product are not checked.
	RemoveProduct(ctx context.Context, id uuid.UUID) (bool, error)
}
