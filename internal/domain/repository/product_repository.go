// Package repository defines the interfaces for the store's collections.
package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for the product catalog.
type ProductRepository interface {
	// Create inserts a new product keyed by its id.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns all catalog products in insertion order.
	List(ctx context.Context) ([]*entity.Product, error)

	// Delete removes a product by id. It reports whether a product with
	// that id existed. Removal is hard; there is no soft delete.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
