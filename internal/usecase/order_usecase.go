// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested (product, quantity) pair.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	UserID uuid.UUID
	Items  []OrderItemInput
}

// OrderUsecase defines the interface for order placement and retrieval.
type OrderUsecase interface {
	// PlaceOrder validates every item and only then decrements stock and
	// records the order. A multi-line order either fully succeeds or
	// leaves no stock decremented.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrdersByUser returns the user's orders sorted ascending by
	// placement time.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
