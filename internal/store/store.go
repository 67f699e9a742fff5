// Package store defines the datastore abstraction for the onetech backend.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// ProductQuery defines optional filters for product queries.
type ProductQuery struct {
	Category     *string
	Manufacturer *string
	MinPrice     *float64
	MaxPrice     *float64
	InStock      *bool
	NameLike     *string
	Limit        int // default 50
	Offset       int
	OrderBy      string // "price_asc", "price_desc", "name_asc", "created_at"
}

// Store defines all data access operations for the onetech backend.
type Store interface {
	// Products
	CreateProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, opts *ProductQuery) ([]domain.Product, int, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListManufacturers(ctx context.Context, category string) ([]string, error)

	// Cart
	GetCart(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	UpdateCartQuantity(ctx context.Context, userID, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error

	// Orders
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string, limit int) ([]domain.Order, error)
	ListOrders(ctx context.Context, status *domain.OrderStatus, limit int) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error

	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
