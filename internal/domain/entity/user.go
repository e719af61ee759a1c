// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrors "tienda/internal/domain/errors"
)

// User is the core identity entity of the store. A user is either a
// customer, who carries a shipping address, or an administrator, who
// does not. The role is fixed at registration time and the entity is
// immutable afterwards.
type User struct {
	ID        uuid.UUID // The unique identifier for the user, generated at creation.
	Name      string    // The user's display name.
	Email     string    // The user's contact email.
	Role      Role      // The account role, customer or administrator.
	Address   string    // The shipping address. Empty for administrators.
	CreatedAt time.Time // Timestamp of when this user account was created.
}

// NewCustomer creates a customer account. Name, email and address must be
// non-empty after trimming.
func NewCustomer(name, email, address string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	address = strings.TrimSpace(address)

	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email must not be empty")
	}
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address must not be empty")
	}

	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      RoleCustomer,
		Address:   address,
		CreatedAt: time.Now(),
	}, nil
}

// NewAdministrator creates an administrator account. Name and email must
// be non-empty after trimming.
func NewAdministrator(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email must not be empty")
	}

	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      RoleAdministrator,
		CreatedAt: time.Now(),
	}, nil
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrator
}

// IsCustomer reports whether the user is allowed to place orders.
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}
