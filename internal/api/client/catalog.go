package client

import (
	"context"
	"net/url"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// SearchResponse wraps a catalog search response.
type SearchResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Summary  []string         `json:"summary"`
}

// SearchCatalog evaluates filter constraints against one category.
func (c *Client) SearchCatalog(
	ctx context.Context,
	category string,
	spec *domain.FilterSpec,
) (*SearchResponse, error) {
	var resp SearchResponse
	path := "/api/v1/catalog/" + url.PathEscape(category) + "/search"
	if err := c.post(ctx, path, spec, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListFilters returns the facet configuration for a category.
func (c *Client) ListFilters(ctx context.Context, category string) ([]domain.FilterOption, error) {
	var resp struct {
		Filters []domain.FilterOption `json:"filters"`
	}
	path := "/api/v1/catalog/" + url.PathEscape(category) + "/filters"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Filters, nil
}

// ListCategories returns all known catalog categories.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.get(ctx, "/api/v1/catalog/categories", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// ListManufacturers returns the distinct manufacturers in a category.
func (c *Client) ListManufacturers(ctx context.Context, category string) ([]string, error) {
	var resp struct {
		Manufacturers []string `json:"manufacturers"`
	}
	path := "/api/v1/catalog/" + url.PathEscape(category) + "/manufacturers"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Manufacturers, nil
}
