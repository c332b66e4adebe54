package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents the marketplace role a user acts under.
// Admin is an implicit superuser: authorization rules evaluate it first
// and allow every action.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Buyer places catalog orders and creates custom order requests.
	Buyer

	// Seller fulfills orders and accepts, declines or completes custom orders.
	Seller

	// Admin is allowed every action regardless of ownership.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Buyer:       "Buyer",
		Seller:      "Seller",
		Admin:       "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Buyer:  "Buyer",
		Seller: "Seller",
		Admin:  "Admin",
	}
}

// RoleFromString parses a role name ("Buyer", "Seller", "Admin").
// Returns an error for any other value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are: Buyer, Seller, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements the fmt.Stringer interface; safe to call on invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
