package impl

import (
	"context"
	"fmt"
	"log/slog"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface. It composes the
// three collections to enforce the cross-entity invariants: only
// customers order, and an order only commits when every line has stock.
type orderService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		users:    users,
		products: products,
		orders:   orders,
		logger:   logger,
	}
}

// resolvedLine pairs a validated item with its catalog product so the
// commit phase adjusts exactly what the validation phase checked.
type resolvedLine struct {
	product  *entity.Product
	quantity int
}

// PlaceOrder runs in two phases. The first pass resolves and validates
// every item without touching stock; the second pass decrements stock in
// input order and records the order. Under a single caller this makes a
// multi-line order all-or-nothing. The window between the two phases is
// not atomic across concurrent callers: two simultaneous orders can both
// pass the stock check before either decrements. A concurrent deployment
// needs a mutual-exclusion boundary around both phases per product.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.logger.Info("Placing order", "userID", input.UserID, "items", len(input.Items))

	user, err := srv.users.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.
				WithDetails("user " + input.UserID.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}
	if !user.IsCustomer() {
		srv.logger.Warn("Order rejected, user is not a customer", "userID", user.ID, "role", user.Role)

		return nil, domainerrors.ErrNotCustomer.
			WithDetails("only customers can place orders")
	}

	// Validation pass. No stock is decremented here.
	resolved := make([]resolvedLine, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}

		product, err := srv.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.
					WithDetails("product " + item.ProductID.String() + " not found")
			}

			return nil, errors.Wrap(err, "failed to find product by id")
		}

		available, err := product.HasStock(item.Quantity)
		if err != nil {
			return nil, err
		}
		if !available {
			srv.logger.Warn("Order rejected, insufficient stock",
				"userID", user.ID, "productID", product.ID, "requested", item.Quantity, "stock", product.Stock)

			return nil, domainerrors.ErrInsufficientStock.
				WithDetails(fmt.Sprintf("insufficient stock of %q", product.Name))
		}

		resolved = append(resolved, resolvedLine{product: product, quantity: item.Quantity})
	}

	// Commit pass, in input order. Every line already passed the stock
	// check, so AdjustStock cannot fail under a single caller.
	lines := make([]entity.OrderLine, 0, len(resolved))
	for _, line := range resolved {
		if err := line.product.AdjustStock(-line.quantity); err != nil {
			return nil, err
		}
		lines = append(lines, entity.OrderLine{
			ProductID:   line.product.ID,
			ProductName: line.product.Name,
			UnitPrice:   line.product.Price,
			Quantity:    line.quantity,
		})
	}

	order, err := entity.NewOrder(user, lines)
	if err != nil {
		return nil, err
	}
	if err := srv.orders.Append(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to store order")
	}
	srv.logger.Debug("Order placed", "orderID", order.ID, "userID", user.ID, "total", order.Total())

	return order, nil
}

// ListOrdersByUser returns the user's orders sorted ascending by
// placement time.
func (srv *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orders.ListByCustomer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return orders, nil
}
