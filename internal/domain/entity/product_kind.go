// Package entity contains the core business objects of the project.
package entity

import "strings"

// ProductKind represents the closed set of product categories in the catalog.
type ProductKind string

const (
	// KindGeneric indicates a product with no category-specific attributes.
	KindGeneric ProductKind = "generic"
	// KindElectronic indicates an electronic product carrying a warranty.
	KindElectronic ProductKind = "electronic"
	// KindApparel indicates a clothing product with size and color.
	KindApparel ProductKind = "apparel"
)

// String returns the string representation of the ProductKind.
func (k ProductKind) String() string {
	return string(k)
}

// IsValid checks if the ProductKind is a valid value.
func (k ProductKind) IsValid() bool {
	switch k {
	case KindGeneric, KindElectronic, KindApparel:
		return true
	default:
		return false
	}
}

// ParseProductKind resolves a user-supplied kind string to a ProductKind.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseProductKind(kind string) (ProductKind, bool) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "generic", "generico":
		return KindGeneric, true
	case "electronic", "electronico":
		return KindElectronic, true
	case "apparel", "ropa":
		return KindApparel, true
	default:
		return "", false
	}
}
