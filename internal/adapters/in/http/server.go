// Package http exposes the marketplace operations over a JSON HTTP API.
// It coordinates between HTTP handlers and application use cases: requests
// are parsed into commands and queries, and core errors are mapped onto
// HTTP statuses. Authentication happens in ActorMiddleware; authorization
// stays in the core.
package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP endpoints over the command and query handlers.
type Server struct {
	// Command handlers
	createCustomOrderHandler     commands.CreateCustomOrderCommandHandler
	transitionCustomOrderHandler commands.TransitionCustomOrderCommandHandler
	deleteCustomOrderHandler     commands.DeleteCustomOrderCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	updateOrderStatusHandler     commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	createReviewHandler          commands.CreateReviewCommandHandler
	deleteReviewHandler          commands.DeleteReviewCommandHandler

	// Query handlers
	listCustomOrdersHandler queries.ListCustomOrdersQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderStatsHandler    queries.GetOrderStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomOrderHandler commands.CreateCustomOrderCommandHandler,
	transitionCustomOrderHandler commands.TransitionCustomOrderCommandHandler,
	deleteCustomOrderHandler commands.DeleteCustomOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createReviewHandler commands.CreateReviewCommandHandler,
	deleteReviewHandler commands.DeleteReviewCommandHandler,
	listCustomOrdersHandler queries.ListCustomOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		createCustomOrderHandler:     createCustomOrderHandler,
		transitionCustomOrderHandler: transitionCustomOrderHandler,
		deleteCustomOrderHandler:     deleteCustomOrderHandler,
		createOrderHandler:           createOrderHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		cancelOrderHandler:           cancelOrderHandler,
		createReviewHandler:          createReviewHandler,
		deleteReviewHandler:          deleteReviewHandler,
		listCustomOrdersHandler:      listCustomOrdersHandler,
		listOrdersHandler:            listOrdersHandler,
		getOrderStatsHandler:         getOrderStatsHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1, all behind the actor
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	api := e.Group("/api/v1", ActorMiddleware(jwtSecret))

	api.POST("/custom-orders", s.CreateCustomOrder)
	api.GET("/custom-orders", s.ListCustomOrders)
	api.POST("/custom-orders/:id/status", s.TransitionCustomOrder)
	api.DELETE("/custom-orders/:id", s.DeleteCustomOrder)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/users/:id/stats", s.GetOrderStats)

	api.POST("/reviews", s.CreateReview)
	api.DELETE("/reviews/:id", s.DeleteReview)
}

// CreateCustomOrder handles POST /api/v1/custom-orders.
func (s *Server) CreateCustomOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	var req CreateCustomOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var sellerID *kernel.UUID
	if req.SellerID != nil {
		id, err := kernel.UUIDFromString(*req.SellerID)
		if err != nil {
			return respondError(ctx, err)
		}
		sellerID = &id
	}

	deliveryType, err := deliveryTypeFromString(req.DeliveryType)
	if err != nil {
		return respondError(ctx, err)
	}

	maxPrice, err := kernel.NewMoney(req.MaxPrice, req.Currency)
	if err != nil {
		return respondError(ctx, err)
	}

	customOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomOrderCommand(
		customOrderID,
		actor.ID,
		sellerID,
		req.Title,
		req.Description,
		maxPrice,
		deliveryType,
		req.DeliveryDeadline,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCustomOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customOrderID.String()})
}

// ListCustomOrders handles GET /api/v1/custom-orders.
func (s *Server) ListCustomOrders(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	party, err := queries.PartyFilterFromString(ctx.QueryParam("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	var status *customorder.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := customorder.StatusFromString(raw)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		status = &parsed
	}

	page, err := parsePage(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListCustomOrdersQuery(actor, party, status, page)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.listCustomOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]CustomOrderResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = customOrderToResponse(item)
	}

	return ctx.JSON(http.StatusOK, CustomOrderPageResponse{
		Items:            items,
		PageMetaResponse: pageMetaToResponse(resp.Meta),
	})
}

// TransitionCustomOrder handles POST /api/v1/custom-orders/:id/status.
func (s *Server) TransitionCustomOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	customOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req TransitionCustomOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := customorder.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionCustomOrderCommand(actor, customOrderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionCustomOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomOrder handles DELETE /api/v1/custom-orders/:id.
func (s *Server) DeleteCustomOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	customOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomOrderCommand(actor, customOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteCustomOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var productID, customOrderID *kernel.UUID
	if req.ProductID != nil {
		id, err := kernel.UUIDFromString(*req.ProductID)
		if err != nil {
			return respondError(ctx, err)
		}
		productID = &id
	}
	if req.CustomOrderID != nil {
		id, err := kernel.UUIDFromString(*req.CustomOrderID)
		if err != nil {
			return respondError(ctx, err)
		}
		customOrderID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor,
		productID,
		customOrderID,
		req.DeliveryAddress,
		req.Currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	party, err := queries.PartyFilterFromString(ctx.QueryParam("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		status = &parsed
	}

	page, err := parsePage(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(actor, party, status, page)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = orderToResponse(item)
	}

	return ctx.JSON(http.StatusOK, OrderPageResponse{
		Items:            items,
		PageMetaResponse: pageMetaToResponse(resp.Meta),
	})
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, target, req.TrackingNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStats handles GET /api/v1/users/:id/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderStatsQuery(actor, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		Total:           resp.Total,
		AsBuyer:         resp.AsBuyer,
		AsSeller:        resp.AsSeller,
		Pending:         resp.Pending,
		Completed:       resp.Completed,
		Revenue:         resp.Revenue,
		CustomOrders:    resp.CustomOrders,
		ReviewsReceived: resp.ReviewsReceived,
	})
}

// CreateReview handles POST /api/v1/reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	var req CreateReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}
	revieweeID, err := kernel.UUIDFromString(req.RevieweeID)
	if err != nil {
		return respondError(ctx, err)
	}

	ratings, err := review.NewRatings(req.Overall, req.Communication, req.Quality)
	if err != nil {
		return respondError(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(reviewID, actor, orderID, revieweeID, ratings, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reviewID.String()})
}

// DeleteReview handles DELETE /api/v1/reviews/:id.
func (s *Server) DeleteReview(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	reviewID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteReviewCommand(actor, reviewID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parsePage(ctx echo.Context) (queries.Page, error) {
	number, err := parseIntParam(ctx.QueryParam("page"), "page")
	if err != nil {
		return queries.Page{}, err
	}
	limit, err := parseIntParam(ctx.QueryParam("limit"), "limit")
	if err != nil {
		return queries.Page{}, err
	}
	return queries.NewPage(number, limit)
}

func parseIntParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
