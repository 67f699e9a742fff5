package client

import (
	"context"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// TokenResponse wraps a token issue response.
type TokenResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login returns a token for an existing user.
func (c *Client) Login(ctx context.Context, email string) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.post(ctx, "/api/v1/auth/login", map[string]string{"email": email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterUser creates a user account and returns its token.
func (c *Client) RegisterUser(ctx context.Context, email, name string) (*TokenResponse, error) {
	body := map[string]string{"email": email}
	if name != "" {
		body["name"] = name
	}

	var resp TokenResponse
	if err := c.post(ctx, "/api/v1/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
