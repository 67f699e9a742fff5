package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/onetech-shop/onetech-backend/internal/auth"
	"github.com/onetech-shop/onetech-backend/internal/store"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// AuthHandler issues tokens for registered users. Identity comes from the
// mobile client's verified email, so there is no password flow here.
type AuthHandler struct {
	store  store.Store
	tokens *auth.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s store.Store, m *auth.Manager) *AuthHandler {
	return &AuthHandler{store: s, tokens: m}
}

// RegisterInput is the request body for user registration.
type RegisterInput struct {
	Body struct {
		Email string `json:"email" format:"email" doc:"User email" example:"user@example.com"`
		Name  string `json:"name,omitempty" doc:"Display name" example:"Иван"`
	}
}

// LoginInput is the request body for login.
type LoginInput struct {
	Body struct {
		Email string `json:"email" format:"email" doc:"User email" example:"user@example.com"`
	}
}

// TokenOutput carries a signed token and the associated user.
type TokenOutput struct {
	Body struct {
		Token string      `json:"token" doc:"Signed bearer token"`
		User  domain.User `json:"user"`
	}
}

// Register creates a user and returns a token for it.
func (h *AuthHandler) Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error) {
	if existing, err := h.store.GetUserByEmail(ctx, input.Body.Email); err == nil && existing != nil {
		return nil, huma.Error409Conflict("user already exists")
	}

	u := &domain.User{
		Email: input.Body.Email,
		Name:  input.Body.Name,
	}
	if err := h.store.CreateUser(ctx, u); err != nil {
		return nil, huma.Error500InternalServerError("creating user: " + err.Error())
	}

	return h.tokenFor(u)
}

// Login returns a token for an existing user.
func (h *AuthHandler) Login(ctx context.Context, input *LoginInput) (*TokenOutput, error) {
	u, err := h.store.GetUserByEmail(ctx, input.Body.Email)
	if err != nil {
		return nil, huma.Error401Unauthorized("unknown user")
	}

	return h.tokenFor(u)
}

func (h *AuthHandler) tokenFor(u *domain.User) (*TokenOutput, error) {
	token, err := h.tokens.Issue(u)
	if err != nil {
		return nil, huma.Error500InternalServerError("issuing token: " + err.Error())
	}

	out := &TokenOutput{}
	out.Body.Token = token
	out.Body.User = *u
	return out, nil
}

// RegisterAuthRoutes registers authentication endpoints with the Huma API.
func RegisterAuthRoutes(api huma.API, h *AuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "register-user",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/register",
		Summary:     "Register a user",
		Description: "Creates a user account and returns a bearer token.",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Register)

	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "Log in",
		Description: "Returns a bearer token for an existing user.",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.Login)
}
