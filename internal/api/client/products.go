package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// ProductsResponse wraps a paginated products response.
type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// ListProductsParams defines query parameters for product queries.
type ListProductsParams struct {
	Category     string
	Manufacturer string
	MinPrice     float64
	MaxPrice     float64
	InStock      bool
	NameLike     string
	Limit        int
	Offset       int
	OrderBy      string
}

// ListProducts returns products matching the given parameters.
func (c *Client) ListProducts(
	ctx context.Context,
	params *ListProductsParams,
) (*ProductsResponse, error) {
	q := url.Values{}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Manufacturer != "" {
		q.Set("manufacturer", params.Manufacturer)
	}
	if params.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.InStock {
		q.Set("in_stock", "true")
	}
	if params.NameLike != "" {
		q.Set("q", params.NameLike)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ProductsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%s", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a product (admin token required).
func (c *Client) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var created domain.Product
	if err := c.post(ctx, "/api/v1/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct updates a product (admin token required).
func (c *Client) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var updated domain.Product
	if err := c.put(ctx, fmt.Sprintf("/api/v1/products/%s", p.ID), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct deletes a product (admin token required).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/products/%s", id), nil)
}
