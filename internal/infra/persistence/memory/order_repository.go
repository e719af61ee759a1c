package memory

import (
	"context"
	"sort"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"

	"github.com/google/uuid"
)

// orderRepository implements repository.OrderRepository as an append-only
// slice. Insertion order is placement order.
type orderRepository struct {
	orders []*entity.Order
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{}
}

// Append adds an order to the log.
func (repo *orderRepository) Append(_ context.Context, order *entity.Order) error {
	repo.orders = append(repo.orders, order)

	return nil
}

// ListByCustomer returns the customer's orders sorted ascending by
// creation time. sort.SliceStable keeps placement order for equal
// timestamps.
func (repo *orderRepository) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range repo.orders {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	return orders, nil
}
