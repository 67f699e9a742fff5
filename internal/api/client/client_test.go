package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_SearchCatalog(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/catalog/%D0%9F%D1%80%D0%BE%D1%86%D0%B5%D1%81%D1%81%D0%BE%D1%80%D1%8B/search", r.URL.EscapedPath())

		var spec domain.FilterSpec
		require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, domain.SortPriceAsc, spec.SortMode)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Products: []domain.Product{{ID: "p1", Name: "AMD Ryzen 5 5600"}},
			Total:    1,
			Summary:  []string{"Сортировка: Цена по возрастанию"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.SearchCatalog(context.Background(), "Процессоры", &domain.FilterSpec{
		SortMode: domain.SortPriceAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Products, 1)
	assert.Contains(t, resp.Summary[0], "Цена по возрастанию")
}

func TestClient_ListProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "Процессоры", r.URL.Query().Get("category"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("in_stock"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ProductsResponse{
			Products: []domain.Product{{ID: "p1"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListProducts(context.Background(), &ListProductsParams{
		Category: "Процессоры",
		InStock:  true,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Products, 1)
}

func TestClient_CreateProduct(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		var p domain.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "p-created"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("admin-token"))
	created, err := c.CreateProduct(context.Background(), &domain.Product{
		Name:     "RTX 4070",
		Category: "Видеокарты",
		Price:    52990,
	})
	require.NoError(t, err)
	assert.Equal(t, "p-created", created.ID)
}

func TestClient_CartFlow(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/cart/items":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(domain.CartItem{ID: "c1", ProductID: "p1", Quantity: 2})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/cart":
			_ = json.NewEncoder(w).Encode(CartResponse{
				Items: []domain.CartItem{{ID: "c1", ProductPrice: 100, Quantity: 2}},
				Total: 200,
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/cart/items/c1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("user-token"))
	ctx := context.Background()

	item, err := c.AddCartItem(ctx, "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, "c1", item.ID)

	cart, err := c.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cart.Total)

	require.NoError(t, c.RemoveCartItem(ctx, "c1"))
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/admin/orders/ord-1/status", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.Order{ID: "ord-1", Status: domain.OrderStatusShipped})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("admin-token"))
	o, err := c.UpdateOrderStatus(context.Background(), "ord-1", domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, o.Status)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
