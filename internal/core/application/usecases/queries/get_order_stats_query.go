package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves the transaction dashboard numbers for a user:
// order counts by perspective and status, seller revenue, plus custom order
// and review totals. Non-admins may only request their own stats.
type GetOrderStatsQuery struct { //nolint:recvcheck //using for validation
	actor  services.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for a user's transaction stats.
func NewGetOrderStatsQuery(
	actor services.Actor,
	userID kernel.UUID,
) (GetOrderStatsQuery, error) {
	q := GetOrderStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(actor),
		q.setUserID(userID),
	); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Actor returns the identity requesting the stats.
func (q GetOrderStatsQuery) Actor() services.Actor {
	return q.actor
}

// UserID returns the user the stats are about.
func (q GetOrderStatsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetOrderStatsQuery) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

func (q *GetOrderStatsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}

// GetOrderStatsQueryResponse carries the dashboard numbers for one user.
//
// Pending counts orders still moving toward completion (Pending, Accepted,
// Paid, Shipped). Revenue is the sum of price amounts over completed orders
// where the user is the seller.
type GetOrderStatsQueryResponse struct {
	Total           int
	AsBuyer         int
	AsSeller        int
	Pending         int
	Completed       int
	Revenue         float64
	CustomOrders    int
	ReviewsReceived int
}
