package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/onetech-shop/onetech-backend/internal/auth"
	"github.com/onetech-shop/onetech-backend/internal/store"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// CartHandler handles the authenticated user's shopping cart.
type CartHandler struct {
	store store.Store
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s store.Store) *CartHandler {
	return &CartHandler{store: s}
}

// userID extracts the authenticated user from the request context.
func userID(c echo.Context) (string, bool) {
	claims, ok := auth.ClaimsFrom(c.Request().Context())
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// Get handles GET /api/v1/cart.
//
// @Summary Get the cart
// @Description Returns the authenticated user's cart items and total.
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	items, err := h.store.GetCart(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "loading cart: " + err.Error(),
		})
	}

	if items == nil {
		items = []domain.CartItem{}
	}

	var total float64
	for i := range items {
		total += items[i].Subtotal()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" example:"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"`
	Quantity  int    `json:"quantity" example:"1"`
}

// AddItem handles POST /api/v1/cart/items. Re-adding a product already in
// the cart increments its quantity.
//
// @Summary Add a cart item
// @Description Adds a product to the cart or increments its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body addCartItemRequest true "Product and quantity"
// @Success 201 {object} domain.CartItem
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "product_id is required"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity must be positive"})
	}

	item, err := h.store.AddCartItem(c.Request().Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "adding cart item: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, item)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" example:"2"`
}

// UpdateItem handles PUT /api/v1/cart/items/:id.
//
// @Summary Update cart item quantity
// @Description Sets the quantity of one cart item.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item UUID"
// @Param body body updateQuantityRequest true "New quantity"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity must be positive"})
	}

	err := h.store.UpdateCartQuantity(c.Request().Context(), uid, c.Param("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "cart item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating cart item: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveItem handles DELETE /api/v1/cart/items/:id.
//
// @Summary Remove a cart item
// @Description Removes one item from the cart.
// @Tags cart
// @Param id path string true "Cart item UUID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	err := h.store.RemoveCartItem(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "cart item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "removing cart item: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/cart.
//
// @Summary Clear the cart
// @Description Removes every item from the cart.
// @Tags cart
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	if err := h.store.ClearCart(c.Request().Context(), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "clearing cart: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterCartRoutes registers cart endpoints on the Echo instance. All
// routes require authentication.
func RegisterCartRoutes(e *echo.Echo, h *CartHandler, authMW echo.MiddlewareFunc) {
	e.GET("/api/v1/cart", h.Get, authMW)
	e.DELETE("/api/v1/cart", h.Clear, authMW)
	e.POST("/api/v1/cart/items", h.AddItem, authMW)
	e.PUT("/api/v1/cart/items/:id", h.UpdateItem, authMW)
	e.DELETE("/api/v1/cart/items/:id", h.RemoveItem, authMW)
}
