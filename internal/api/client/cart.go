package client

import (
	"context"
	"fmt"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// CartResponse wraps the cart contents and computed total.
type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// GetCart returns the authenticated user's cart.
func (c *Client) GetCart(ctx context.Context) (*CartResponse, error) {
	var resp CartResponse
	if err := c.get(ctx, "/api/v1/cart", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddCartItem adds a product to the cart or increments its quantity.
func (c *Client) AddCartItem(
	ctx context.Context,
	productID string,
	quantity int,
) (*domain.CartItem, error) {
	body := map[string]any{"product_id": productID}
	if quantity > 0 {
		body["quantity"] = quantity
	}

	var item domain.CartItem
	if err := c.post(ctx, "/api/v1/cart/items", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartQuantity sets the quantity of one cart item.
func (c *Client) UpdateCartQuantity(ctx context.Context, itemID string, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.put(ctx, fmt.Sprintf("/api/v1/cart/items/%s", itemID), body, nil)
}

// RemoveCartItem removes one item from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/cart/items/%s", itemID), nil)
}

// ClearCart removes every item from the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.del(ctx, "/api/v1/cart", nil)
}
