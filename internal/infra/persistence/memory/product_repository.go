package memory

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"

	"github.com/google/uuid"
)

// productRepository implements repository.ProductRepository with a map
// keyed by product id plus a slice preserving insertion order.
type productRepository struct {
	products map[uuid.UUID]*entity.Product
	order    []uuid.UUID
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository() repository.ProductRepository {
	return &productRepository{
		products: make(map[uuid.UUID]*entity.Product),
	}
}

// Create inserts a new product keyed by its id.
func (repo *productRepository) Create(_ context.Context, product *entity.Product) error {
	if _, exists := repo.products[product.ID]; !exists {
		repo.order = append(repo.order, product.ID)
	}
	repo.products[product.ID] = product

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := repo.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

// List returns all catalog products in insertion order.
func (repo *productRepository) List(_ context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(repo.order))
	for _, id := range repo.order {
		products = append(products, repo.products[id])
	}

	return products, nil
}

// Delete removes a product by id and reports whether it existed.
func (repo *productRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := repo.products[id]; !ok {
		return false, nil
	}

	delete(repo.products, id)
	for i, existing := range repo.order {
		if existing == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return true, nil
}
