// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// RegisterUser dispatches on the requested kind, builds the matching
// entity and inserts it into the user collection.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.logger.Info("Registering user", "kind", input.Kind, "email", input.Email)

	role, ok := entity.ParseRole(input.Kind)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("unsupported user kind, use 'customer' or 'admin'")
	}

	var user *entity.User
	var err error
	switch role {
	case entity.RoleCustomer:
		if strings.TrimSpace(input.Address) == "" {
			return nil, domainerrors.ErrValidationFailed.
				WithDetails("an address is required to register a customer")
		}
		user, err = entity.NewCustomer(input.Name, input.Email, input.Address)
	case entity.RoleAdministrator:
		user, err = entity.NewAdministrator(input.Name, input.Email)
	}
	if err != nil {
		srv.logger.Warn("User registration rejected", "kind", input.Kind, "error", err)

		return nil, err
	}

	if err := srv.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store user")
	}
	srv.logger.Debug("User registered", "userID", user.ID, "role", user.Role)

	return user, nil
}

// GetUser retrieves a user by id.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("user " + id.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// ListUsers returns all registered users in insertion order.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
