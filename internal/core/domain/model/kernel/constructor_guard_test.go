package kernel_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()

		assert.NoError(t, guard.Validate(errors.New("not constructed")))
		assert.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		expected := errors.New("price must be created via its constructor")

		err := guard.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		err := guard.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_names_the_constructor_rule", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", kernel.ErrDefaultConstructorGuard.Error())
	})
}

// The guard is embedded in kernel value objects; Money is the canonical
// consumer. A zero-value Money carries a zero-value guard and must surface
// its own sentinel, while a constructed one validates cleanly.
func TestConstructorGuard_GuardsMoney(t *testing.T) {
	t.Run("constructed_money_passes", func(t *testing.T) {
		price, err := kernel.NewMoney(250, "USD")

		require.NoError(t, err)
		assert.NoError(t, price.Validate())
	})

	t.Run("zero_value_money_fails_with_sentinel", func(t *testing.T) {
		var price kernel.Money

		err := price.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("guard_copies_stay_valid", func(t *testing.T) {
		price, err := kernel.NewMoney(99.99, "EUR")
		require.NoError(t, err)

		snapshot := price

		assert.NoError(t, price.Validate())
		assert.NoError(t, snapshot.Validate())
	})
}
