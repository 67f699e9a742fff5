package notify

import (
	"context"
	"log/slog"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when no webhook endpoint is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyOrderCreated logs and discards an order.created event.
func (n *NoOpNotifier) NotifyOrderCreated(_ context.Context, order OrderPayload) error {
	n.log.Debug("notification discarded (no webhook configured)",
		"event", "order.created",
		"order_id", order.OrderID,
		"total", order.Total,
	)
	return nil
}

// NotifyStatusChanged logs and discards an order.status_changed event.
func (n *NoOpNotifier) NotifyStatusChanged(
	_ context.Context,
	order OrderPayload,
	previous domain.OrderStatus,
) error {
	n.log.Debug("notification discarded (no webhook configured)",
		"event", "order.status_changed",
		"order_id", order.OrderID,
		"from", previous,
		"to", order.Status,
	)
	return nil
}
