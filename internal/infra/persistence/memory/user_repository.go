// Package memory contains the concrete implementation of the store's
// collections as process-local maps. The store assumes a single logical
// caller at a time, so the collections carry no locking; see the order
// service for the consequences of that assumption.
package memory

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository with a map keyed by
// user id plus a slice preserving insertion order.
type userRepository struct {
	users map[uuid.UUID]*entity.User
	order []uuid.UUID
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]*entity.User),
	}
}

// Create inserts a new user keyed by its id.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	if _, exists := repo.users[user.ID]; !exists {
		repo.order = append(repo.order, user.ID)
	}
	repo.users[user.ID] = user

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

// List returns all registered users in insertion order.
func (repo *userRepository) List(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(repo.order))
	for _, id := range repo.order {
		users = append(users, repo.users[id])
	}

	return users, nil
}
