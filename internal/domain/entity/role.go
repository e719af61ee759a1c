// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of account a user holds in the store.
type Role string

const (
	// RoleCustomer indicates a regular customer with a shipping address.
	RoleCustomer Role = "customer"
	// RoleAdministrator indicates a store administrator.
	RoleAdministrator Role = "administrator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdministrator:
		return true
	default:
		return false
	}
}

// ParseRole resolves a user-supplied kind string to a Role.
// Matching is case-insensitive and ignores surrounding whitespace.
// Accepted synonyms: "cliente" for customer, "admin" and "administrador"
// for administrator.
func ParseRole(kind string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "customer", "cliente":
		return RoleCustomer, true
	case "admin", "administrador", "administrator":
		return RoleAdministrator, true
	default:
		return "", false
	}
}
