// Package repository defines the interfaces for the store's collections.
package repository

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the operations for the append-only order log.
type OrderRepository interface {
	// Append adds an order to the log. Insertion order is placement order.
	Append(ctx context.Context, order *entity.Order) error

	// ListByCustomer returns all orders placed by the given customer,
	// sorted ascending by creation time. The sort is stable, so orders
	// with equal timestamps keep their placement order.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
}
