package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog-related handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// addProductRequest is the JSON payload for adding a catalog product.
// warranty_months applies to electronic products, size and color to
// apparel; range checks belong to the domain layer.
type addProductRequest struct {
	Kind           string          `json:"kind" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	WarrantyMonths *int            `json:"warranty_months"`
	Size           string          `json:"size"`
	Color          string          `json:"color"`
}

// productView is the presentation shape of a product with the
// kind-specific attributes flattened in.
type productView struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	WarrantyMonths *int            `json:"warranty_months,omitempty"`
	Size           string          `json:"size,omitempty"`
	Color          string          `json:"color,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

func newProductView(product *entity.Product) productView {
	return productView{
		ID:             product.ID.String(),
		Kind:           product.Kind.String(),
		Name:           product.Name,
		Price:          product.Price,
		Stock:          product.Stock,
		WarrantyMonths: product.WarrantyMonths,
		Size:           product.Size,
		Color:          product.Color,
		CreatedAt:      product.CreatedAt.Format(time.RFC3339),
	}
}

// AddProduct handles the request to add a product to the catalog.
func (h *ProductHandler) AddProduct(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		Kind:           req.Kind,
		Name:           req.Name,
		Price:          req.Price,
		Stock:          req.Stock,
		WarrantyMonths: req.WarrantyMonths,
		Size:           req.Size,
		Color:          req.Color,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product), "Product added successfully")
}

// GetProduct handles the request to fetch a single product by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Product id must be a valid UUID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "")
}

// ListProducts handles the request to list the whole catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// RemoveProduct handles the request to hard-remove a product from the
// catalog. Unknown ids answer 404; nothing checks for outstanding orders.
func (h *ProductHandler) RemoveProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Product id must be a valid UUID")
	}

	removed, err := h.uc.RemoveProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if !removed {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	return c.NoContent(http.StatusNoContent)
}
