package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerrors "tienda/internal/domain/errors"
)

// Product is a catalog entry. The Kind tag selects which of the optional
// attributes are meaningful: WarrantyMonths for electronics, Size and
// Color for apparel. Price and stock are never negative, and AdjustStock
// is the only authorized stock mutation path.
type Product struct {
	ID        uuid.UUID       // The unique identifier for the product, generated at creation.
	Kind      ProductKind     // The product category.
	Name      string          // The product's display name.
	Price     decimal.Decimal // Unit price, never negative.
	Stock     int             // Available units, never negative.
	CreatedAt time.Time       // Timestamp of when this product entered the catalog.

	// WarrantyMonths is set only for electronic products.
	WarrantyMonths *int
	// Size and Color are set only for apparel products.
	Size  string
	Color string
}

// NewGenericProduct creates a product with no category-specific attributes.
func NewGenericProduct(name string, price decimal.Decimal, stock int) (*Product, error) {
	base, err := newProduct(KindGeneric, name, price, stock)
	if err != nil {
		return nil, err
	}

	return base, nil
}

// NewElectronicProduct creates an electronic product with a warranty in months.
func NewElectronicProduct(name string, price decimal.Decimal, stock, warrantyMonths int) (*Product, error) {
	base, err := newProduct(KindElectronic, name, price, stock)
	if err != nil {
		return nil, err
	}
	if warrantyMonths < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("warranty must not be negative")
	}
	base.WarrantyMonths = &warrantyMonths

	return base, nil
}

// NewApparelProduct creates an apparel product with size and color.
func NewApparelProduct(name string, price decimal.Decimal, stock int, size, color string) (*Product, error) {
	base, err := newProduct(KindApparel, name, price, stock)
	if err != nil {
		return nil, err
	}

	size = strings.TrimSpace(size)
	color = strings.TrimSpace(color)
	if size == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("size must not be empty")
	}
	if color == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("color must not be empty")
	}
	base.Size = size
	base.Color = color

	return base, nil
}

func newProduct(kind ProductKind, name string, price decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	return &Product{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: time.Now(),
	}, nil
}

// HasStock reports whether at least quantity units are available.
// A negative quantity is rejected as invalid input.
func (p *Product) HasStock(quantity int) (bool, error) {
	if quantity < 0 {
		return false, domainerrors.ErrValidationFailed.WithDetails("requested quantity must not be negative")
	}

	return p.Stock >= quantity, nil
}

// AdjustStock applies delta to the available units. The adjustment is
// rejected, not clamped, if it would drive the stock below zero; on
// failure the stock is left unchanged.
func (p *Product) AdjustStock(delta int) error {
	next := p.Stock + delta
	if next < 0 {
		return domainerrors.ErrInsufficientStock.
			WithDetails(fmt.Sprintf("insufficient stock of %q", p.Name))
	}
	p.Stock = next

	return nil
}
