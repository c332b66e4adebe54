package queries

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PartyFilter narrows a listing to the side of the transaction the actor is
// on. The zero value AnyParty matches rows where the actor is either party
// (or every row, for admins).
type PartyFilter int

const (
	// AnyParty matches rows where the actor is buyer or seller.
	AnyParty PartyFilter = iota

	// AsBuyer matches rows where the actor is the buyer.
	AsBuyer

	// AsSeller matches rows where the actor is the seller.
	AsSeller
)

// PartyFilterFromString parses a party filter from its transport
// representation. An empty string means AnyParty.
func PartyFilterFromString(s string) (PartyFilter, error) {
	switch s {
	case "":
		return AnyParty, nil
	case "buyer":
		return AsBuyer, nil
	case "seller":
		return AsSeller, nil
	default:
		return AnyParty, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid party filter", s),
		)
	}
}

// Validate checks if the PartyFilter value is valid.
func (f PartyFilter) Validate() error {
	if f != AnyParty && f != AsBuyer && f != AsSeller {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid party filter", f),
		)
	}
	return nil
}

// String returns the transport representation of the filter.
func (f PartyFilter) String() string {
	switch f {
	case AsBuyer:
		return "buyer"
	case AsSeller:
		return "seller"
	default:
		return "any"
	}
}
