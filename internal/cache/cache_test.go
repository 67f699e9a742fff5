package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func TestKeyFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "catalog:процессоры", keyFor("Процессоры"))
	assert.Equal(t, "catalog:процессоры", keyFor("процессоры"))
	assert.Equal(t, "catalog:видеокарты", keyFor("Видеокарты"))
}

func TestNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewNoop()

	require.NoError(t, c.SetCategory(ctx, "Процессоры", []domain.Product{{ID: "a"}}))

	items, ok, err := c.GetCategory(ctx, "Процессоры")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, items)

	require.NoError(t, c.InvalidateCategory(ctx, "Процессоры"))
	require.NoError(t, c.Close())
}
