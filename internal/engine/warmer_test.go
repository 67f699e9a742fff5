package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/onetech-shop/onetech-backend/internal/store/mocks"
	"github.com/onetech-shop/onetech-backend/pkg/catalog"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCache records SetCategory calls and can simulate failures.
type fakeCache struct {
	mu     sync.Mutex
	stored map[string][]domain.Product
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: make(map[string][]domain.Product)}
}

func (f *fakeCache) GetCategory(_ context.Context, category string) ([]domain.Product, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	products, ok := f.stored[category]
	return products, ok, nil
}

func (f *fakeCache) SetCategory(_ context.Context, category string, products []domain.Product) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[category] = products
	return nil
}

func (f *fakeCache) InvalidateCategory(_ context.Context, category string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, category)
	return nil
}

func (f *fakeCache) Close() error { return nil }

func TestWarmCategory(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	fc := newFakeCache()

	products := []domain.Product{
		{ID: "p1", Name: "AMD Ryzen 5 5600", Category: "Процессоры"},
		{ID: "p2", Name: "Intel Core i5-12400F", Category: "Процессоры"},
	}
	ms.EXPECT().
		ListProductsByCategory(mock.Anything, "Процессоры").
		Return(products, nil).Once()

	w := NewWarmer(ms, fc, WithLogger(quietLogger()))
	require.NoError(t, w.WarmCategory(context.Background(), "Процессоры"))

	got, ok, err := fc.GetCategory(context.Background(), "Процессоры")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got, 2)
}

func TestWarmCategory_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsByCategory(mock.Anything, "Процессоры").
		Return(nil, errors.New("connection refused")).Once()

	w := NewWarmer(ms, newFakeCache(), WithLogger(quietLogger()))
	err := w.WarmCategory(context.Background(), "Процессоры")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading category")
}

func TestWarmCategory_CacheError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsByCategory(mock.Anything, "Процессоры").
		Return([]domain.Product{{ID: "p1"}}, nil).Once()

	fc := newFakeCache()
	fc.setErr = errors.New("redis down")

	w := NewWarmer(ms, fc, WithLogger(quietLogger()))
	err := w.WarmCategory(context.Background(), "Процессоры")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caching category")
}

func TestWarmAll(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	fc := newFakeCache()

	ms.EXPECT().
		ListProductsByCategory(mock.Anything, mock.AnythingOfType("string")).
		Return([]domain.Product{{ID: "p1"}}, nil)

	w := NewWarmer(ms, fc, WithLogger(quietLogger()))
	require.NoError(t, w.WarmAll(context.Background()))

	assert.Len(t, fc.stored, len(catalog.Categories()))
}

func TestWarmAll_PartialFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	fc := newFakeCache()

	// One category fails, the rest still get warmed.
	ms.EXPECT().
		ListProductsByCategory(mock.Anything, "Процессоры").
		Return(nil, errors.New("bad category")).Once()
	ms.EXPECT().
		ListProductsByCategory(mock.Anything, mock.AnythingOfType("string")).
		Return([]domain.Product{{ID: "p1"}}, nil)

	w := NewWarmer(ms, fc, WithLogger(quietLogger()))
	err := w.WarmAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad category")
	assert.Len(t, fc.stored, len(catalog.Categories())-1)
}

func TestWarmAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	w := NewWarmer(ms, newFakeCache(), WithLogger(quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.WarmAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
