package queries

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler pages through orders with direct SQL.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest first and
// scoped so a non-admin never sees an order they are not a party to.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := orderPredicates(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM orders" + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pageSQL := fmt.Sprintf(`
		SELECT
			id,
			buyer_id,
			seller_id,
			product_id,
			custom_order_id,
			price_amount,
			price_currency,
			delivery_address,
			tracking_number,
			status,
			created_at
		FROM orders%s
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, where)
	args = append(args, query.Page().Limit(), query.Page().Offset())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]OrderReadModel, 0, query.Page().Limit())

	for rows.Next() {
		var item OrderReadModel
		var id, buyerID, sellerID uuid.UUID
		var productID, customOrderID uuid.NullUUID
		var priceAmount float64
		var priceCurrency string
		var status int

		err = rows.Scan(
			&id,
			&buyerID,
			&sellerID,
			&productID,
			&customOrderID,
			&priceAmount,
			&priceCurrency,
			&item.DeliveryAddress,
			&item.TrackingNumber,
			&status,
			&item.CreatedAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		item.BuyerID, err = kernel.UUIDFromBytes(buyerID[:])
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		item.SellerID, err = kernel.UUIDFromBytes(sellerID[:])
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		item.ProductID, err = nullableUUID(productID)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		item.CustomOrderID, err = nullableUUID(customOrderID)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		item.Price, err = kernel.NewMoney(priceAmount, priceCurrency)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		item.Status = order.Status(status)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Items: items,
		Meta:  NewPageMeta(query.Page(), total),
	}, nil
}

// orderPredicates builds the WHERE clause for the actor's visibility scope
// plus the optional filters. Admins with no party filter see every row.
func orderPredicates(query ListOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 3)
	actorID := query.Actor().ID.Bytes()

	switch query.Party() {
	case AsBuyer:
		conditions = append(conditions, "buyer_id = ?")
		args = append(args, actorID)
	case AsSeller:
		conditions = append(conditions, "seller_id = ?")
		args = append(args, actorID)
	default:
		if !query.Actor().IsAdmin() {
			conditions = append(conditions, "(buyer_id = ? OR seller_id = ?)")
			args = append(args, actorID, actorID)
		}
	}

	if query.Status() != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*query.Status()))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func nullableUUID(nu uuid.NullUUID) (*kernel.UUID, error) {
	if !nu.Valid {
		return nil, nil //nolint:nilnil //absent value is not an error
	}
	id, err := kernel.UUIDFromBytes(nu.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
