package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes a user's dashboard numbers with direct
// SQL aggregation.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for transaction stats.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the stats query. A non-admin asking about another user is
// denied; the numbers reveal a user's full transaction history.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	if !query.Actor().IsAdmin() && !query.Actor().ID.IsEqual(query.UserID()) {
		return GetOrderStatsQueryResponse{}, errs.NewForbiddenError(
			"view order stats",
			"actor may only view their own stats",
		)
	}

	userID := query.UserID().Bytes()
	var resp GetOrderStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE buyer_id = ?),
			COUNT(*) FILTER (WHERE seller_id = ?),
			COUNT(*) FILTER (WHERE status IN (?, ?, ?, ?)),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(price_amount) FILTER (WHERE seller_id = ? AND status = ?), 0)
		FROM orders
		WHERE buyer_id = ? OR seller_id = ?
	`,
		userID,
		userID,
		int(order.Pending), int(order.Accepted), int(order.Paid), int(order.Shipped),
		int(order.Completed),
		userID, int(order.Completed),
		userID, userID,
	).Row()

	err := row.Scan(
		&resp.Total,
		&resp.AsBuyer,
		&resp.AsSeller,
		&resp.Pending,
		&resp.Completed,
		&resp.Revenue,
	)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM custom_orders WHERE buyer_id = ? OR seller_id = ?
	`, userID, userID).Row()
	if err = row.Scan(&resp.CustomOrders); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM reviews WHERE reviewee_id = ?
	`, userID).Row()
	if err = row.Scan(&resp.ReviewsReceived); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
