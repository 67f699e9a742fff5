package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// CreateOrder places an order from the current cart contents.
func (c *Client) CreateOrder(ctx context.Context, address, phone string) (*domain.Order, error) {
	body := map[string]string{
		"address": address,
		"phone":   phone,
	}

	var o domain.Order
	if err := c.post(ctx, "/api/v1/orders", body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns the authenticated user's orders.
func (c *Client) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	path := "/api/v1/orders"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var orders []domain.Order
	if err := c.get(ctx, path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/v1/orders/%s", id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListAllOrders returns all orders, optionally filtered by status
// (admin token required).
func (c *Client) ListAllOrders(
	ctx context.Context,
	status string,
	limit int,
) ([]domain.Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/admin/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var orders []domain.Order
	if err := c.get(ctx, path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new status (admin token required).
func (c *Client) UpdateOrderStatus(
	ctx context.Context,
	id string,
	status domain.OrderStatus,
) (*domain.Order, error) {
	body := map[string]string{"status": string(status)}

	var o domain.Order
	if err := c.put(ctx, fmt.Sprintf("/api/v1/admin/orders/%s/status", id), body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
