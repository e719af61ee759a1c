// Package repository defines the interfaces for the store's collections.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for the user collection.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create inserts a new user keyed by its id.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// List returns all registered users in insertion order.
	List(ctx context.Context) ([]*entity.User, error)
}
