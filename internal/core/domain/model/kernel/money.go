package kernel

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// currencyCodeLength is the length of an ISO 4217 alphabetic currency code.
const currencyCodeLength = 3

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money values must be created through the NewMoney constructor to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is a value object representing a monetary amount in a specific currency.
// Amounts are kept with two-decimal precision; the zero value is invalid and
// Money must be constructed through NewMoney.
//
// Money is immutable. An order stores a Money snapshot taken at creation time,
// so later changes to the source listing or custom order never affect it.
//
// Example usage:
//
//	price, err := kernel.NewMoney(49.99, "USD")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price.String()) // "49.99 USD"
type Money struct {
	amount   float64
	currency string
	guard    ConstructorGuard
}

// NewMoney creates a Money value with validation.
// The amount must be strictly positive; the currency must be a three-letter
// upper-case code. The amount is rounded half-up to two decimal places.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not greater than 0", amount),
		)
	}
	if !isCurrencyCode(currency) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a three-letter upper-case currency code", currency),
		)
	}

	return Money{
		amount:   math.Floor(amount*100+0.5) / 100,
		currency: currency,
		guard:    NewConstructorGuard(),
	}, nil
}

// Amount returns the monetary amount with two-decimal precision.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String returns the amount and currency in "12.34 USD" form.
func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.amount, m.currency)
}

// Validate checks that the Money value was constructed through NewMoney.
// Returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func isCurrencyCode(currency string) bool {
	if len(currency) != currencyCodeLength {
		return false
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
