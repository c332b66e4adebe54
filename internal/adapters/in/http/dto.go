package http

import (
	"fmt"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CreateCustomOrderRequest is the body for POST /api/v1/custom-orders.
type CreateCustomOrderRequest struct {
	SellerID         *string    `json:"sellerId,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	MaxPrice         float64    `json:"maxPrice"`
	Currency         string     `json:"currency"`
	DeliveryType     string     `json:"deliveryType"`
	DeliveryDeadline *time.Time `json:"deliveryDeadline,omitempty"`
}

// TransitionCustomOrderRequest is the body for POST /api/v1/custom-orders/:id/status.
type TransitionCustomOrderRequest struct {
	Status string `json:"status"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	ProductID       *string `json:"productId,omitempty"`
	CustomOrderID   *string `json:"customOrderId,omitempty"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Currency        string  `json:"currency,omitempty"`
}

// UpdateOrderStatusRequest is the body for POST /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

// CreateReviewRequest is the body for POST /api/v1/reviews.
type CreateReviewRequest struct {
	OrderID       string `json:"orderId"`
	RevieweeID    string `json:"revieweeId"`
	Overall       int    `json:"overall"`
	Communication int    `json:"communication"`
	Quality       int    `json:"quality"`
	Comment       string `json:"comment,omitempty"`
}

// CreatedResponse acknowledges a creation with the new resource identifier.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MoneyResponse is the transport form of a monetary amount.
type MoneyResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CustomOrderResponse is the transport form of a custom order.
type CustomOrderResponse struct {
	ID               string        `json:"id"`
	BuyerID          string        `json:"buyerId"`
	SellerID         *string       `json:"sellerId,omitempty"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	MaxPrice         MoneyResponse `json:"maxPrice"`
	DeliveryType     string        `json:"deliveryType"`
	DeliveryDeadline *time.Time    `json:"deliveryDeadline,omitempty"`
	Status           string        `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	AcceptedAt       *time.Time    `json:"acceptedAt,omitempty"`
	DeclinedAt       *time.Time    `json:"declinedAt,omitempty"`
	CompletedAt      *time.Time    `json:"completedAt,omitempty"`
}

// OrderResponse is the transport form of an order.
type OrderResponse struct {
	ID              string        `json:"id"`
	BuyerID         string        `json:"buyerId"`
	SellerID        string        `json:"sellerId"`
	ProductID       *string       `json:"productId,omitempty"`
	CustomOrderID   *string       `json:"customOrderId,omitempty"`
	Price           MoneyResponse `json:"price"`
	DeliveryAddress string        `json:"deliveryAddress"`
	TrackingNumber  string        `json:"trackingNumber,omitempty"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// PageMetaResponse is the pagination envelope shared by the listing endpoints.
type PageMetaResponse struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// CustomOrderPageResponse is the body for GET /api/v1/custom-orders.
type CustomOrderPageResponse struct {
	Items []CustomOrderResponse `json:"items"`
	PageMetaResponse
}

// OrderPageResponse is the body for GET /api/v1/orders.
type OrderPageResponse struct {
	Items []OrderResponse `json:"items"`
	PageMetaResponse
}

// StatsResponse is the body for GET /api/v1/users/:id/stats.
type StatsResponse struct {
	Total           int     `json:"total"`
	AsBuyer         int     `json:"asBuyer"`
	AsSeller        int     `json:"asSeller"`
	Pending         int     `json:"pending"`
	Completed       int     `json:"completed"`
	Revenue         float64 `json:"revenue"`
	CustomOrders    int     `json:"customOrders"`
	ReviewsReceived int     `json:"reviewsReceived"`
}

func deliveryTypeFromString(s string) (customorder.DeliveryType, error) {
	switch s {
	case "AsSoonAsPossible":
		return customorder.AsSoonAsPossible, nil
	case "ByDeadline":
		return customorder.ByDeadline, nil
	default:
		return customorder.UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
			"deliveryType",
			fmt.Errorf("%q is not a valid delivery type", s),
		)
	}
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func customOrderToResponse(item queries.CustomOrderReadModel) CustomOrderResponse {
	return CustomOrderResponse{
		ID:          item.ID.String(),
		BuyerID:     item.BuyerID.String(),
		SellerID:    optionalUUIDString(item.SellerID),
		Title:       item.Title,
		Description: item.Description,
		MaxPrice: MoneyResponse{
			Amount:   item.MaxPrice.Amount(),
			Currency: item.MaxPrice.Currency(),
		},
		DeliveryType:     item.DeliveryType.String(),
		DeliveryDeadline: item.Deadline,
		Status:           item.Status.String(),
		CreatedAt:        item.CreatedAt,
		AcceptedAt:       item.AcceptedAt,
		DeclinedAt:       item.DeclinedAt,
		CompletedAt:      item.CompletedAt,
	}
}

func orderToResponse(item queries.OrderReadModel) OrderResponse {
	return OrderResponse{
		ID:            item.ID.String(),
		BuyerID:       item.BuyerID.String(),
		SellerID:      item.SellerID.String(),
		ProductID:     optionalUUIDString(item.ProductID),
		CustomOrderID: optionalUUIDString(item.CustomOrderID),
		Price: MoneyResponse{
			Amount:   item.Price.Amount(),
			Currency: item.Price.Currency(),
		},
		DeliveryAddress: item.DeliveryAddress,
		TrackingNumber:  item.TrackingNumber,
		Status:          item.Status.String(),
		CreatedAt:       item.CreatedAt,
	}
}

func pageMetaToResponse(meta queries.PageMeta) PageMetaResponse {
	return PageMetaResponse{
		Total:      meta.Total,
		TotalPages: meta.TotalPages,
		HasNext:    meta.HasNext,
		HasPrev:    meta.HasPrev,
	}
}
