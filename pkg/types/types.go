// Package domain defines the core business types for the onetech storefront.
package domain

import (
	"time"
)

// SortMode selects the ordering applied to catalog results.
type SortMode string

// Sort mode constants.
const (
	SortDefault   SortMode = "default" // newest first
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortNameAsc   SortMode = "name_asc"
)

// Product represents a catalog item as stored.
type Product struct {
	ID string `json:"id" db:"id"`

	// Basics
	Name         string   `json:"name"                   db:"name"`
	Price        float64  `json:"price"                  db:"price"`
	Description  string   `json:"description,omitempty"  db:"description"`
	Category     string   `json:"category"               db:"category"`
	Images       []string `json:"images,omitempty"       db:"images"`
	Manufacturer string   `json:"manufacturer,omitempty" db:"manufacturer"`
	Model        string   `json:"model,omitempty"        db:"model"`
	Series       string   `json:"series,omitempty"       db:"series"`
	Stock        int      `json:"stock"                  db:"stock"`
	InStock      bool     `json:"in_stock"               db:"in_stock"`

	// Category-specific attributes, free-form human-readable values
	// ("8 GB", "3.5 GHz", "LGA 1700").
	Specs map[string]string `json:"specs,omitempty" db:"specs"`

	// Metadata
	CreatedAt time.Time `json:"created_at"           db:"created_at"`
	CreatedBy string    `json:"created_by,omitempty" db:"created_by"`
	UpdatedAt time.Time `json:"updated_at"           db:"updated_at"`
}

// Spec returns the attribute value for key, or "" when the product
// does not carry it.
func (p *Product) Spec(key string) string {
	return p.Specs[key]
}

// FilterSpec is the query a user has configured in the filter UI.
// Zero-valued optional fields mean "no constraint".
type FilterSpec struct {
	SortMode     SortMode            `json:"sort_mode,omitempty"`
	MinPrice     *float64            `json:"min_price,omitempty"`
	MaxPrice     *float64            `json:"max_price,omitempty"`
	Manufacturer *string             `json:"manufacturer,omitempty"`
	Facets       map[string][]string `json:"facets,omitempty"`
}

// IsZero reports whether the spec carries no constraints and default ordering.
func (s *FilterSpec) IsZero() bool {
	return (s.SortMode == "" || s.SortMode == SortDefault) &&
		s.MinPrice == nil && s.MaxPrice == nil &&
		s.Manufacturer == nil && len(s.Facets) == 0
}

// FilterOption describes one filterable attribute offered for a category.
type FilterOption struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Values      []string `json:"values"`
}

// CartItem is a product reference in a user's cart.
type CartItem struct {
	ID           string    `json:"id"                      db:"id"`
	UserID       string    `json:"user_id"                 db:"user_id"`
	ProductID    string    `json:"product_id"              db:"product_id"`
	ProductName  string    `json:"product_name"            db:"product_name"`
	ProductPrice float64   `json:"product_price"           db:"product_price"`
	ProductImage string    `json:"product_image,omitempty" db:"product_image"`
	Category     string    `json:"category"                db:"category"`
	Quantity     int       `json:"quantity"                db:"quantity"`
	AddedAt      time.Time `json:"added_at"                db:"added_at"`
}

// Subtotal returns the line total for this cart item.
func (c *CartItem) Subtotal() float64 {
	return c.ProductPrice * float64(c.Quantity)
}

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

// Order status constants.
const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a priced product line inside an order.
type OrderItem struct {
	ProductID   string  `json:"product_id"   db:"product_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Price       float64 `json:"price"        db:"price"`
	Quantity    int     `json:"quantity"     db:"quantity"`
}

// Order represents a placed order.
type Order struct {
	ID        string      `json:"id"                 db:"id"`
	UserID    string      `json:"user_id"            db:"user_id"`
	Items     []OrderItem `json:"items"              db:"items"`
	Total     float64     `json:"total"              db:"total"`
	Status    OrderStatus `json:"status"             db:"status"`
	Address   string      `json:"address,omitempty"  db:"address"`
	Phone     string      `json:"phone,omitempty"    db:"phone"`
	CreatedAt time.Time   `json:"created_at"         db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"         db:"updated_at"`
}

// ComputeTotal recalculates the order total from its items.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for i := range o.Items {
		total += o.Items[i].Price * float64(o.Items[i].Quantity)
	}
	return total
}

// User is a storefront account. Identity flows (registration, password
// login) live outside this service; only the minimum needed by cart and
// order operations is stored.
type User struct {
	ID        string    `json:"id"             db:"id"`
	Email     string    `json:"email"          db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	IsAdmin   bool      `json:"is_admin"       db:"is_admin"`
	CreatedAt time.Time `json:"created_at"     db:"created_at"`
}
