package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCustomOrdersQueryHandler pages through custom orders with direct SQL.
type ListCustomOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomOrdersQueryHandler creates a handler for custom order listings.
// Requires a GORM database connection for query execution.
func NewListCustomOrdersQueryHandler(db *gorm.DB) ListCustomOrdersQueryHandler {
	return ListCustomOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest first and
// scoped so a non-admin never sees a request they are not a party to.
func (h ListCustomOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomOrdersQuery,
) (ListCustomOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomOrdersQueryResponse{}, err
	}

	where, args := customOrderPredicates(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM custom_orders" + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return ListCustomOrdersQueryResponse{}, err
	}

	pageSQL := fmt.Sprintf(`
		SELECT
			id,
			buyer_id,
			seller_id,
			title,
			description,
			max_price_amount,
			max_price_currency,
			delivery_type,
			deadline,
			status,
			created_at,
			accepted_at,
			declined_at,
			completed_at
		FROM custom_orders%s
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, where)
	args = append(args, query.Page().Limit(), query.Page().Offset())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, args...).Rows()
	if err != nil {
		return ListCustomOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]CustomOrderReadModel, 0, query.Page().Limit())

	for rows.Next() {
		var item CustomOrderReadModel
		var id, buyerID uuid.UUID
		var sellerID uuid.NullUUID
		var priceAmount float64
		var priceCurrency string
		var deliveryType, status int
		var deadline, acceptedAt, declinedAt, completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&buyerID,
			&sellerID,
			&item.Title,
			&item.Description,
			&priceAmount,
			&priceCurrency,
			&deliveryType,
			&deadline,
			&status,
			&item.CreatedAt,
			&acceptedAt,
			&declinedAt,
			&completedAt,
		)
		if err != nil {
			return ListCustomOrdersQueryResponse{}, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ListCustomOrdersQueryResponse{}, err
		}
		item.BuyerID, err = kernel.UUIDFromBytes(buyerID[:])
		if err != nil {
			return ListCustomOrdersQueryResponse{}, err
		}
		if sellerID.Valid {
			sID, sErr := kernel.UUIDFromBytes(sellerID.UUID[:])
			if sErr != nil {
				return ListCustomOrdersQueryResponse{}, sErr
			}
			item.SellerID = &sID
		}

		item.MaxPrice, err = kernel.NewMoney(priceAmount, priceCurrency)
		if err != nil {
			return ListCustomOrdersQueryResponse{}, err
		}

		item.DeliveryType = customorder.DeliveryType(deliveryType)
		item.Status = customorder.Status(status)
		item.Deadline = nullableTime(deadline)
		item.AcceptedAt = nullableTime(acceptedAt)
		item.DeclinedAt = nullableTime(declinedAt)
		item.CompletedAt = nullableTime(completedAt)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ListCustomOrdersQueryResponse{}, err
	}

	return ListCustomOrdersQueryResponse{
		Items: items,
		Meta:  NewPageMeta(query.Page(), total),
	}, nil
}

// customOrderPredicates builds the WHERE clause for the actor's visibility
// scope plus the optional filters. Admins with no party filter see every row.
func customOrderPredicates(query ListCustomOrdersQuery) (string, []any) {
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

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
