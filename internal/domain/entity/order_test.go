package entity

import (
	"testing"

	domainerrors "tienda/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) *User {
	t.Helper()
	user, err := NewCustomer("Ana", "ana@gmail.com", "C/ Real, 123")
	require.NoError(t, err)

	return user
}

func TestNewOrder_Success(t *testing.T) {
	customer := testCustomer(t)
	lines := []OrderLine{
		{ProductID: uuid.New(), ProductName: "Auriculares", UnitPrice: price(t, "29.90"), Quantity: 2},
		{ProductID: uuid.New(), ProductName: "Camiseta", UnitPrice: price(t, "12.00"), Quantity: 1},
	}

	order, err := NewOrder(customer, lines)

	require.NoError(t, err)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, "Ana", order.CustomerName)
	assert.Len(t, order.Lines, 2)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestNewOrder_AllowsEmptyLines(t *testing.T) {
	order, err := NewOrder(testCustomer(t), nil)

	require.NoError(t, err)
	assert.Empty(t, order.Lines)
	assert.True(t, order.Total().IsZero())
}

func TestNewOrder_RejectsNonCustomer(t *testing.T) {
	admin, err := NewAdministrator("ADMIN", "admin@gmail.com")
	require.NoError(t, err)

	_, err = NewOrder(admin, nil)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_A_CUSTOMER", appErr.ErrorCode())

	_, err = NewOrder(nil, nil)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_A_CUSTOMER", appErr.ErrorCode())
}

func TestNewOrder_RejectsInvalidLines(t *testing.T) {
	customer := testCustomer(t)

	_, err := NewOrder(customer, []OrderLine{
		{ProductID: uuid.New(), UnitPrice: price(t, "1.00"), Quantity: 0},
	})
	assertValidationError(t, err)

	_, err = NewOrder(customer, []OrderLine{
		{ProductID: uuid.New(), UnitPrice: price(t, "1.00"), Quantity: -3},
	})
	assertValidationError(t, err)

	_, err = NewOrder(customer, []OrderLine{
		{ProductID: uuid.Nil, UnitPrice: price(t, "1.00"), Quantity: 1},
	})
	assertValidationError(t, err)
}

func TestOrderTotal(t *testing.T) {
	order, err := NewOrder(testCustomer(t), []OrderLine{
		{ProductID: uuid.New(), ProductName: "Auriculares", UnitPrice: price(t, "29.90"), Quantity: 2},
		{ProductID: uuid.New(), ProductName: "Camiseta", UnitPrice: price(t, "12.00"), Quantity: 1},
	})
	require.NoError(t, err)

	assert.True(t, order.Total().Equal(decimal.RequireFromString("71.80")),
		"total = %s", order.Total())
}

func TestOrderLineSubtotal(t *testing.T) {
	line := OrderLine{UnitPrice: price(t, "19.50"), Quantity: 3}

	assert.True(t, line.Subtotal().Equal(decimal.RequireFromString("58.50")))
}
