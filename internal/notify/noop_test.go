package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func TestNoOpNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := NewNoOpNotifier(log)

	require.NoError(t, n.NotifyOrderCreated(context.Background(), testOrder()))
	require.NoError(t, n.NotifyStatusChanged(
		context.Background(), testOrder(), domain.OrderStatusNew))

	out := buf.String()
	assert.Contains(t, out, "notification discarded")
	assert.Contains(t, out, "order.created")
	assert.Contains(t, out, "order.status_changed")
	assert.Contains(t, out, "ord-1")
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*WebhookNotifier)(nil)
)
