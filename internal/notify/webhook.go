package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/onetech-shop/onetech-backend/internal/metrics"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// WebhookNotifier implements Notifier by POSTing JSON events to a
// configured endpoint. Sends are rate limited so a burst of orders
// cannot flood the receiving system.
type WebhookNotifier struct {
	url     string
	headers map[string]string
	client  *http.Client
	limiter *rate.Limiter
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// WithHeaders sets extra headers sent with every event.
func WithHeaders(h map[string]string) WebhookOption {
	return func(w *WebhookNotifier) {
		w.headers = h
	}
}

// WithRateLimit overrides the default send rate.
func WithRateLimit(perSecond float64, burst int) WebhookOption {
	return func(w *WebhookNotifier) {
		w.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(url string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		url:     url,
		client:  http.DefaultClient,
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// webhookEvent is the JSON structure posted to the endpoint.
type webhookEvent struct {
	Event          string             `json:"event"`
	OrderID        string             `json:"order_id"`
	UserEmail      string             `json:"user_email,omitempty"`
	Total          float64            `json:"total"`
	Status         domain.OrderStatus `json:"status"`
	PreviousStatus domain.OrderStatus `json:"previous_status,omitempty"`
	Items          []domain.OrderItem `json:"items,omitempty"`
	Address        string             `json:"address,omitempty"`
	CreatedAt      string             `json:"created_at,omitempty"`
}

// NotifyOrderCreated posts an order.created event.
func (w *WebhookNotifier) NotifyOrderCreated(ctx context.Context, order OrderPayload) error {
	return w.post(ctx, webhookEvent{
		Event:     "order.created",
		OrderID:   order.OrderID,
		UserEmail: order.UserEmail,
		Total:     order.Total,
		Status:    order.Status,
		Items:     order.Items,
		Address:   order.Address,
		CreatedAt: order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// NotifyStatusChanged posts an order.status_changed event.
func (w *WebhookNotifier) NotifyStatusChanged(
	ctx context.Context,
	order OrderPayload,
	previous domain.OrderStatus,
) error {
	return w.post(ctx, webhookEvent{
		Event:          "order.status_changed",
		OrderID:        order.OrderID,
		UserEmail:      order.UserEmail,
		Total:          order.Total,
		Status:         order.Status,
		PreviousStatus: previous,
	})
}

func (w *WebhookNotifier) post(ctx context.Context, event webhookEvent) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.NotificationFailuresTotal.Inc()
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
