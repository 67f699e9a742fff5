package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/onetech-shop/onetech-backend/internal/auth"
	"github.com/onetech-shop/onetech-backend/internal/metrics"
	"github.com/onetech-shop/onetech-backend/internal/notify"
	"github.com/onetech-shop/onetech-backend/internal/store"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

const notifyTimeout = 10 * time.Second

// OrderHandler handles order placement and tracking.
type OrderHandler struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s store.Store, n notify.Notifier, log *slog.Logger) *OrderHandler {
	return &OrderHandler{store: s, notifier: n, log: log}
}

type createOrderRequest struct {
	Address string `json:"address" example:"Москва, ул. Ленина 1"`
	Phone   string `json:"phone" example:"+7 900 000-00-00"`
}

// Create handles POST /api/v1/orders. The order is built from the user's
// current cart, which is cleared on success.
//
// @Summary Place an order
// @Description Creates an order from the cart contents and clears the cart.
// @Tags orders
// @Accept json
// @Produce json
// @Param body body createOrderRequest true "Delivery details"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.Address == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "address is required"})
	}

	ctx := c.Request().Context()

	cart, err := h.store.GetCart(ctx, claims.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "loading cart: " + err.Error(),
		})
	}
	if len(cart) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cart is empty"})
	}

	order := &domain.Order{
		UserID:  claims.UserID,
		Status:  domain.OrderStatusNew,
		Address: req.Address,
		Phone:   req.Phone,
		Items:   make([]domain.OrderItem, 0, len(cart)),
	}
	for i := range cart {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   cart[i].ProductID,
			ProductName: cart[i].ProductName,
			Price:       cart[i].ProductPrice,
			Quantity:    cart[i].Quantity,
		})
	}
	order.Total = order.ComputeTotal()

	if err := h.store.CreateOrder(ctx, order); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating order: " + err.Error(),
		})
	}

	metrics.OrdersCreatedTotal.Inc()

	// The order exists at this point, so a failed cart clear is logged
	// rather than surfaced.
	if err := h.store.ClearCart(ctx, claims.UserID); err != nil {
		h.log.Error("clearing cart after order failed",
			"order_id", order.ID, "user_id", claims.UserID, "error", err)
	}

	h.notifyAsync(ctx, func(ctx context.Context) error {
		return h.notifier.NotifyOrderCreated(ctx, orderPayload(order, claims.Email))
	})

	return c.JSON(http.StatusCreated, order)
}

// List handles GET /api/v1/orders.
//
// @Summary List own orders
// @Description Returns the authenticated user's orders, newest first.
// @Tags orders
// @Produce json
// @Param limit query int false "Maximum orders to return"
// @Success 200 {array} domain.Order
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	orders, err := h.store.ListOrdersByUser(c.Request().Context(), claims.UserID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing orders: " + err.Error(),
		})
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/v1/orders/:id. Users can only read their own
// orders; admins can read any.
//
// @Summary Get an order by ID
// @Description Returns a single order. Non-admins only see their own orders.
// @Tags orders
// @Produce json
// @Param id path string true "Order UUID"
// @Success 200 {object} domain.Order
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	order, err := h.store.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
	}

	// Not-found rather than forbidden, to avoid leaking order IDs.
	if order.UserID != claims.UserID && !claims.IsAdmin {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
	}

	return c.JSON(http.StatusOK, order)
}

// ListAll handles GET /api/v1/admin/orders (admin only).
//
// @Summary List all orders
// @Description Returns all orders, optionally filtered by status.
// @Tags orders
// @Produce json
// @Param status query string false "Order status" Enums(new, processing, shipped, delivered, cancelled)
// @Param limit query int false "Maximum orders to return"
// @Success 200 {array} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	var status *domain.OrderStatus
	if v := c.QueryParam("status"); v != "" {
		s := domain.OrderStatus(v)
		if !domain.ValidOrderStatus(s) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid status: " + v,
			})
		}
		status = &s
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	orders, err := h.store.ListOrders(c.Request().Context(), status, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing orders: " + err.Error(),
		})
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	return c.JSON(http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status" example:"shipped"`
}

// UpdateStatus handles PUT /api/v1/admin/orders/:id/status (admin only).
//
// @Summary Update order status
// @Description Moves an order to a new status and notifies the customer.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order UUID"
// @Param body body updateStatusRequest true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if !domain.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid status: " + string(req.Status),
		})
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	order, err := h.store.GetOrder(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
	}

	previous := order.Status
	if err := h.store.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating order status: " + err.Error(),
		})
	}
	order.Status = req.Status

	if previous != req.Status {
		h.notifyAsync(ctx, func(ctx context.Context) error {
			return h.notifier.NotifyStatusChanged(ctx, orderPayload(order, ""), previous)
		})
	}

	return c.JSON(http.StatusOK, order)
}

// notifyAsync delivers a notification without blocking the response. The
// request context's values are kept but its cancellation is not.
func (h *OrderHandler) notifyAsync(ctx context.Context, send func(context.Context) error) {
	detached := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(detached, notifyTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			h.log.Error("order notification failed", "error", err)
		}
	}()
}

func orderPayload(o *domain.Order, email string) notify.OrderPayload {
	return notify.OrderPayload{
		OrderID:   o.ID,
		UserEmail: email,
		Total:     o.Total,
		Status:    o.Status,
		Items:     o.Items,
		Address:   o.Address,
		CreatedAt: o.CreatedAt,
	}
}

// RegisterOrderRoutes registers order endpoints on the Echo instance.
func RegisterOrderRoutes(e *echo.Echo, h *OrderHandler, authMW, adminMW echo.MiddlewareFunc) {
	e.POST("/api/v1/orders", h.Create, authMW)
	e.GET("/api/v1/orders", h.List, authMW)
	e.GET("/api/v1/orders/:id", h.Get, authMW)

	e.GET("/api/v1/admin/orders", h.ListAll, authMW, adminMW)
	e.PUT("/api/v1/admin/orders/:id/status", h.UpdateStatus, authMW, adminMW)
}
