package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onetech-shop/onetech-backend/internal/api/handlers"
	"github.com/onetech-shop/onetech-backend/internal/cache"
	storeMocks "github.com/onetech-shop/onetech-backend/internal/store/mocks"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memCache is a map-backed Cache for handler tests.
type memCache struct {
	entries map[string][]domain.Product
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]domain.Product)}
}

func (m *memCache) GetCategory(_ context.Context, category string) ([]domain.Product, bool, error) {
	p, ok := m.entries[category]
	return p, ok, nil
}

func (m *memCache) SetCategory(_ context.Context, category string, items []domain.Product) error {
	m.entries[category] = items
	return nil
}

func (m *memCache) InvalidateCategory(_ context.Context, category string) error {
	delete(m.entries, category)
	return nil
}

func (*memCache) Close() error { return nil }

func cpuProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "p1", Name: "AMD Ryzen 5 5600", Price: 15490,
			Category: "Процессоры", Manufacturer: "AMD",
			Specs: map[string]string{"cores": "6 ядер", "socket": "AM4"},
		},
		{
			ID: "p2", Name: "Intel Core i9-13900K", Price: 56990,
			Category: "Процессоры", Manufacturer: "Intel",
			Specs: map[string]string{"cores": "24 ядра", "socket": "LGA 1700"},
		},
		{
			ID: "p3", Name: "Intel Core i3-12100", Price: 9990,
			Category: "Процессоры", Manufacturer: "Intel",
			Specs: map[string]string{"cores": "4 ядра", "socket": "LGA 1700"},
		},
	}
}

func TestCatalogHandler_SearchCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "price sort with min price",
			body: map[string]any{
				"sort_mode": "price_asc",
				"min_price": 10000,
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProductsByCategory(mock.Anything, "Процессоры").
					Return(cpuProducts(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":2`, `"Цена от: 10000 ₽"`},
		},
		{
			name: "facet filter at-least cores",
			body: map[string]any{
				"facets": map[string][]string{"cores": {"8"}},
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProductsByCategory(mock.Anything, "Процессоры").
					Return(cpuProducts(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":1`, `"p2"`},
		},
		{
			name: "manufacturer exact match",
			body: map[string]any{"manufacturer": "Intel"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProductsByCategory(mock.Anything, "Процессоры").
					Return(cpuProducts(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":2`, `"Производитель: Intel"`},
		},
		{
			name: "no matches returns empty array",
			body: map[string]any{"min_price": 1000000},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProductsByCategory(mock.Anything, "Процессоры").
					Return(cpuProducts(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"products":[]`, `"total":0`},
		},
		{
			name: "store error returns 500",
			body: map[string]any{},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProductsByCategory(mock.Anything, "Процессоры").
					Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`loading category`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			h := handlers.NewCatalogHandler(ms, cache.NewNoop(), quietLogger())

			_, api := humatest.New(t)
			handlers.RegisterCatalogRoutes(api, h)

			resp := api.Post("/api/v1/catalog/Процессоры/search", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestCatalogHandler_SearchCatalog_CacheHit(t *testing.T) {
	t.Parallel()

	// Pre-warmed cache: the store must not be touched.
	mc := newMemCache()
	require.NoError(t, mc.SetCategory(context.Background(), "Процессоры", cpuProducts()))

	ms := storeMocks.NewMockStore(t)
	h := handlers.NewCatalogHandler(ms, mc, quietLogger())

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Post("/api/v1/catalog/Процессоры/search", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":3`)
}

func TestCatalogHandler_SearchCatalog_PopulatesCache(t *testing.T) {
	t.Parallel()

	mc := newMemCache()
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListProductsByCategory(mock.Anything, "Процессоры").
		Return(cpuProducts(), nil).Once()

	h := handlers.NewCatalogHandler(ms, mc, quietLogger())

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	// Two searches: the second is served from cache (store mock is Once).
	resp := api.Post("/api/v1/catalog/Процессоры/search", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/api/v1/catalog/Процессоры/search", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":3`)
}

func TestCatalogHandler_ListFilters(t *testing.T) {
	t.Parallel()

	h := handlers.NewCatalogHandler(
		storeMocks.NewMockStore(t), cache.NewNoop(), quietLogger())

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Get("/api/v1/catalog/Процессоры/filters")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"cores"`)
	assert.Contains(t, resp.Body.String(), `"Количество ядер"`)

	resp = api.Get("/api/v1/catalog/Чайники/filters")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "unknown category")
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	t.Parallel()

	h := handlers.NewCatalogHandler(
		storeMocks.NewMockStore(t), cache.NewNoop(), quietLogger())

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Get("/api/v1/catalog/categories")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Процессоры")
	assert.Contains(t, resp.Body.String(), "Видеокарты")
}

func TestCatalogHandler_ListManufacturers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns sorted manufacturers",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListManufacturers(mock.Anything, "Процессоры").
					Return([]string{"AMD", "Intel"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `["AMD","Intel"]`,
		},
		{
			name: "empty category returns empty array",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListManufacturers(mock.Anything, "Процессоры").
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"manufacturers":[]`,
		},
		{
			name: "store error returns 500",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListManufacturers(mock.Anything, "Процессоры").
					Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing manufacturers`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			h := handlers.NewCatalogHandler(ms, cache.NewNoop(), quietLogger())

			_, api := humatest.New(t)
			handlers.RegisterCatalogRoutes(api, h)

			resp := api.Get("/api/v1/catalog/Процессоры/manufacturers")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
