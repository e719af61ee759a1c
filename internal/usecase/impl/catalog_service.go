package impl

import (
	"context"
	"log/slog"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(products repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		products: products,
		logger:   logger,
	}
}

// AddProduct dispatches on the requested kind, builds the matching
// product and inserts it into the catalog.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	srv.logger.Info("Adding product", "kind", input.Kind, "name", input.Name)

	kind, ok := entity.ParseProductKind(input.Kind)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("unsupported product kind, use 'generic', 'electronic' or 'apparel'")
	}

	var product *entity.Product
	var err error
	switch kind {
	case entity.KindGeneric:
		product, err = entity.NewGenericProduct(input.Name, input.Price, input.Stock)
	case entity.KindElectronic:
		if input.WarrantyMonths == nil {
			return nil, domainerrors.ErrValidationFailed.
				WithDetails("a warranty in months is required for electronic products")
		}
		product, err = entity.NewElectronicProduct(input.Name, input.Price, input.Stock, *input.WarrantyMonths)
	case entity.KindApparel:
		product, err = entity.NewApparelProduct(input.Name, input.Price, input.Stock, input.Size, input.Color)
	}
	if err != nil {
		srv.logger.Warn("Product rejected", "kind", input.Kind, "name", input.Name, "error", err)

		return nil, err
	}

	if err := srv.products.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to store product")
	}
	srv.logger.Debug("Product added", "productID", product.ID, "kind", product.Kind)

	return product, nil
}

// GetProduct retrieves a product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("product " + id.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// ListProducts returns all catalog products in insertion order.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.products.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// RemoveProduct hard-removes a product and reports whether it existed.
// Orders already referencing the product are left untouched; their lines
// snapshot the data they need.
func (srv *catalogService) RemoveProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := srv.products.Delete(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete product")
	}
	if removed {
		srv.logger.Info("Product removed", "productID", id)
	}

	return removed, nil
}
