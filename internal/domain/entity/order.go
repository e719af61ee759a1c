package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerrors "tienda/internal/domain/errors"
)

// OrderLine is one (product, quantity) pair within an order. It snapshots
// the product name and unit price effective at placement time, so later
// catalog changes do not alter the order.
type OrderLine struct {
	ProductID   uuid.UUID       // The catalog id of the ordered product.
	ProductName string          // The product name at placement time.
	UnitPrice   decimal.Decimal // The unit price at placement time.
	Quantity    int             // Ordered units, always positive.
}

// Subtotal returns unit price times quantity for this line.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an immutable record of a customer's purchase. Construction
// validates the customer and the lines but never touches stock; stock
// adjustment is the caller's responsibility and must happen before the
// order is built.
type Order struct {
	ID           uuid.UUID   // The unique identifier for the order, generated at creation.
	CustomerID   uuid.UUID   // The id of the customer who placed the order.
	CustomerName string      // The customer's name at placement time.
	Lines        []OrderLine // Purchase lines in insertion order.
	CreatedAt    time.Time   // Timestamp of when the order was placed.
}

// NewOrder creates an order for the given customer. The user must be a
// customer, and every line must reference a product and carry a positive
// quantity.
func NewOrder(customer *User, lines []OrderLine) (*Order, error) {
	if customer == nil || !customer.IsCustomer() {
		return nil, domainerrors.ErrNotCustomer.WithDetails("orders must be linked to a customer account")
	}

	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("every line must reference a product")
		}
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}
	}

	return &Order{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Lines:        lines,
		CreatedAt:    time.Now(),
	}, nil
}

// Total recomputes the order amount as the sum of unit price times
// quantity over all lines. It has no side effects.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}

	return total
}
