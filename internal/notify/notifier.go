// Package notify defines the notification interface and implementations
// for order event delivery.
package notify

import (
	"context"
	"time"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// OrderPayload contains the data needed to announce an order event.
type OrderPayload struct {
	OrderID   string
	UserEmail string
	Total     float64
	Status    domain.OrderStatus
	Items     []domain.OrderItem
	Address   string
	CreatedAt time.Time
}

// Notifier defines the interface for sending order notifications.
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, order OrderPayload) error
	NotifyStatusChanged(ctx context.Context, order OrderPayload, previous domain.OrderStatus) error
}
