package user

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method or restored via RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents a marketplace identity. It carries the role the user acts
// under, a suspension flag, and the derived reputation: a nullable average
// rating with one-decimal precision plus the number of reviews it was
// computed from.
//
// User follows these invariants:
//   - Must have a valid unique identifier and a non-empty email
//   - Role must be Buyer, Seller or Admin
//   - Rating is nil exactly when ReviewCount is zero
//   - Rating, when set, lies in [1.0, 5.0] with one-decimal precision
//
// Profile mutation is an upstream concern; inside the core the only state
// change is the rating recomputation applied after review creation/deletion.
type User struct {
	id          kernel.UUID
	email       string
	role        Role
	suspended   bool
	rating      *float64
	reviewCount int

	isConstructed bool
}

// NewUser creates a new User instance with validation. New users start
// active, with no reviews and no rating.
func NewUser(id kernel.UUID, email string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence, including the derived
// reputation fields. Returns an error if the stored state violates an
// invariant.
func RestoreUser(
	id kernel.UUID,
	email string,
	role Role,
	suspended bool,
	rating *float64,
	reviewCount int,
) (*User, error) {
	u, err := NewUser(id, email, role)
	if err != nil {
		return nil, err
	}

	if (rating == nil) != (reviewCount == 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rating",
			fmt.Errorf("rating and review count of user %s are inconsistent", id),
		)
	}

	u.suspended = suspended
	u.rating = rating
	u.reviewCount = reviewCount
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's notification address.
func (u *User) Email() string {
	return u.email
}

// Role returns the marketplace role the user acts under.
func (u *User) Role() Role {
	return u.role
}

// IsSuspended reports whether the account is suspended.
func (u *User) IsSuspended() bool {
	return u.suspended
}

// Rating returns the aggregate rating, or nil when the user has no reviews.
func (u *User) Rating() *float64 {
	return u.rating
}

// ReviewCount returns the number of reviews the rating was computed from.
func (u *User) ReviewCount() int {
	return u.reviewCount
}

// ApplyRating replaces the derived reputation after a recomputation.
// A zero count clears the rating to nil; otherwise the rating must be
// in [1.0, 5.0]. The rating is stored with one-decimal precision.
func (u *User) ApplyRating(rating *float64, reviewCount int) error {
	if reviewCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"reviewCount",
			fmt.Errorf("%d is negative", reviewCount),
		)
	}
	if (rating == nil) != (reviewCount == 0) {
		return errs.NewValueIsInvalidError("rating and review count are inconsistent")
	}
	if rating != nil && (*rating < 1.0 || *rating > 5.0) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, 1.0, 5.0)
	}

	if rating == nil {
		u.rating = nil
	} else {
		rounded := math.Floor(*rating*10+0.5) / 10
		u.rating = &rounded
	}
	u.reviewCount = reviewCount
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
