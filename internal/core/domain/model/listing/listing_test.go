package listing_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	id := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	price, err := kernel.NewMoney(19.99, "USD")
	require.NoError(t, err)

	t.Run("should create an available listing", func(t *testing.T) {
		l, err := listing.NewListing(id, sellerID, "Ceramic mug", price, true)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(id))
		assert.True(t, l.SellerID().IsEqual(sellerID))
		assert.Equal(t, "Ceramic mug", l.Title())
		assert.True(t, l.Price().IsEqual(price))
		assert.True(t, l.IsAvailable())
	})

	t.Run("should create an unavailable listing", func(t *testing.T) {
		l, err := listing.NewListing(id, sellerID, "Ceramic mug", price, false)

		require.NoError(t, err)
		assert.False(t, l.IsAvailable())
	})

	t.Run("should require a title", func(t *testing.T) {
		l, err := listing.NewListing(id, sellerID, "", price, true)

		require.Error(t, err)
		assert.Nil(t, l)
	})

	t.Run("should reject a zero-value price", func(t *testing.T) {
		l, err := listing.NewListing(id, sellerID, "Ceramic mug", kernel.Money{}, true)

		require.Error(t, err)
		assert.Nil(t, l)
	})

	t.Run("nil listing should fail validation", func(t *testing.T) {
		var l *listing.Listing
		assert.Equal(t, listing.ErrListingIsNotConstructed, l.Validate())
	})
}
