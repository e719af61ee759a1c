// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput defines the data required to register a new user.
// Kind selects the account role and accepts the synonyms understood by
// entity.ParseRole. Address is required when the kind resolves to customer.
type RegisterUserInput struct {
	Kind    string
	Name    string
	Email   string
	Address string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a customer or administrator account depending
	// on the requested kind and inserts it into the user collection.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers returns all registered users in insertion order.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
