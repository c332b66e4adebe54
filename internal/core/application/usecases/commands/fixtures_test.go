package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 {
	return &f
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func money(t *testing.T, amount float64, currency string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount, currency)
	require.NoError(t, err)
	return m
}

func buyerActor(id kernel.UUID) services.Actor {
	return services.Actor{ID: id, Role: user.Buyer}
}

func sellerActor(id kernel.UUID) services.Actor {
	return services.Actor{ID: id, Role: user.Seller}
}

func customOrderIn(
	t *testing.T,
	buyerID kernel.UUID,
	sellerID *kernel.UUID,
	status customorder.Status,
) *customorder.CustomOrder {
	t.Helper()
	co, err := customorder.RestoreCustomOrder(
		kernel.NewUUID(), buyerID, sellerID,
		"Hand-carved chess set", "Walnut and maple, tournament size",
		money(t, 150, "USD"), customorder.AsSoonAsPossible, nil,
		status, time.Now().UTC(), nil, nil, nil,
	)
	require.NoError(t, err)
	return co
}

func orderIn(t *testing.T, buyerID, sellerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	productID := kernel.NewUUID()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyerID, sellerID, &productID, nil,
		money(t, 49.99, "USD"), "12 Main St", "", status, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func availableListing(t *testing.T, sellerID kernel.UUID) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(kernel.NewUUID(), sellerID, "Ceramic mug", money(t, 19.99, "USD"), true)
	require.NoError(t, err)
	return l
}

func unavailableListing(t *testing.T, sellerID kernel.UUID) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(kernel.NewUUID(), sellerID, "Ceramic mug", money(t, 19.99, "USD"), false)
	require.NoError(t, err)
	return l
}

func sellerUser(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "seller@example.com", user.Seller)
	require.NoError(t, err)
	return u
}

func buyerUser(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "buyer@example.com", user.Buyer)
	require.NoError(t, err)
	return u
}

func reviewFor(t *testing.T, orderID, reviewerID, revieweeID kernel.UUID, overall int) *review.Review {
	t.Helper()
	ratings, err := review.NewRatings(overall, overall, overall)
	require.NoError(t, err)
	r, err := review.NewReview(
		kernel.NewUUID(), orderID, reviewerID, revieweeID, ratings, "", time.Now().UTC(),
	)
	require.NoError(t, err)
	return r
}
