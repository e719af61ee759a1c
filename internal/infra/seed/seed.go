// Package seed populates the store with sample data for demonstration mode.
package seed

import (
	"context"
	"log/slog"

	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Seeder loads a small demonstration data set: three customers, one
// administrator, five products across the three kinds, and three orders.
type Seeder struct {
	users   usecase.UserUsecase
	catalog usecase.CatalogUsecase
	orders  usecase.OrderUsecase
	logger  *slog.Logger
}

// New is the constructor for Seeder.
func New(
	users usecase.UserUsecase,
	catalog usecase.CatalogUsecase,
	orders usecase.OrderUsecase,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		users:   users,
		catalog: catalog,
		orders:  orders,
		logger:  logger,
	}
}

// Run inserts the sample data set.
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info("Seeding demonstration data")

	ana, err := s.registerCustomer(ctx, "Ana", "ana@gmail.com", "C/ Real, 123")
	if err != nil {
		return err
	}
	luis, err := s.registerCustomer(ctx, "Luis", "luis@hotmail.com", "C/ Espana, 25")
	if err != nil {
		return err
	}
	marta, err := s.registerCustomer(ctx, "Marta", "marta@icloud.com", "C/ Castilla C, 33")
	if err != nil {
		return err
	}
	if _, err := s.users.RegisterUser(ctx, &usecase.RegisterUserInput{
		Kind: "admin", Name: "ADMIN", Email: "admin@gmail.com",
	}); err != nil {
		return errors.Wrap(err, "failed to seed administrator")
	}

	headphones, err := s.addElectronic(ctx, "Auriculares", "29.90", 10, 24)
	if err != nil {
		return err
	}
	mouse, err := s.addElectronic(ctx, "Ratón gamer", "19.50", 15, 12)
	if err != nil {
		return err
	}
	tshirt, err := s.addApparel(ctx, "Camiseta", "12.00", 50, "M", "Negro")
	if err != nil {
		return err
	}
	hoodie, err := s.addApparel(ctx, "Sudadera", "25.00", 20, "L", "Azul")
	if err != nil {
		return err
	}
	trousers, err := s.addApparel(ctx, "Pantalón", "35.00", 15, "M", "Gris")
	if err != nil {
		return err
	}

	sampleOrders := []usecase.PlaceOrderInput{
		{UserID: ana, Items: []usecase.OrderItemInput{
			{ProductID: headphones, Quantity: 2},
			{ProductID: tshirt, Quantity: 1},
		}},
		{UserID: luis, Items: []usecase.OrderItemInput{
			{ProductID: hoodie, Quantity: 2},
		}},
		{UserID: marta, Items: []usecase.OrderItemInput{
			{ProductID: mouse, Quantity: 1},
			{ProductID: trousers, Quantity: 2},
		}},
	}
	for i := range sampleOrders {
		order, err := s.orders.PlaceOrder(ctx, &sampleOrders[i])
		if err != nil {
			return errors.Wrap(err, "failed to seed order")
		}
		s.logger.Info("Seeded order", "orderID", order.ID, "total", order.Total())
	}

	return nil
}

func (s *Seeder) registerCustomer(ctx context.Context, name, email, address string) (uuid.UUID, error) {
	user, err := s.users.RegisterUser(ctx, &usecase.RegisterUserInput{
		Kind: "customer", Name: name, Email: email, Address: address,
	})
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "failed to seed customer %s", name)
	}

	return user.ID, nil
}

func (s *Seeder) addElectronic(ctx context.Context, name, price string, stock, warrantyMonths int) (uuid.UUID, error) {
	product, err := s.catalog.AddProduct(ctx, &usecase.AddProductInput{
		Kind:           "electronic",
		Name:           name,
		Price:          decimal.RequireFromString(price),
		Stock:          stock,
		WarrantyMonths: &warrantyMonths,
	})
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "failed to seed product %s", name)
	}

	return product.ID, nil
}

func (s *Seeder) addApparel(ctx context.Context, name, price string, stock int, size, color string) (uuid.UUID, error) {
	product, err := s.catalog.AddProduct(ctx, &usecase.AddProductInput{
		Kind:  "apparel",
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
		Size:  size,
		Color: color,
	})
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "failed to seed product %s", name)
	}

	return product.ID, nil
}
