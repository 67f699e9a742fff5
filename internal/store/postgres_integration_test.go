//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/onetech-shop/onetech-backend/internal/store"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("onetech_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, 0)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testProduct() *domain.Product {
	return &domain.Product{
		Name:         "AMD Ryzen 7 7800X3D",
		Price:        38990,
		Description:  "8-ядерный процессор для игровых сборок",
		Category:     "Процессоры",
		Images:       []string{"https://cdn.onetech.example/ryzen7800x3d.jpg"},
		Manufacturer: "AMD",
		Model:        "7800X3D",
		Series:       "Ryzen 7",
		Stock:        12,
		InStock:      true,
		Specs: map[string]string{
			"socket":    "AM5",
			"cores":     "8",
			"threads":   "16",
			"frequency": "4.2 GHz",
		},
	}
}

func testUser(t *testing.T, s *store.PostgresStore, email string) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, Name: "Test User"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_ProductCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	// Create.
	p := testProduct()
	require.NoError(t, s.CreateProduct(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	// Get.
	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "AMD Ryzen 7 7800X3D", got.Name)
	assert.Equal(t, "AM5", got.Spec("socket"))
	assert.Equal(t, []string{"https://cdn.onetech.example/ryzen7800x3d.jpg"}, got.Images)

	// Update.
	got.Price = 35990
	got.Stock = 5
	require.NoError(t, s.UpdateProduct(ctx, got))

	updated, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 35990, updated.Price, 0.01)
	assert.Equal(t, 5, updated.Stock)

	// Delete.
	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	_, err = s.GetProduct(ctx, p.ID)
	assert.Error(t, err)

	// Deleting again reports not found.
	assert.Error(t, s.DeleteProduct(ctx, p.ID))
}

func TestPostgresStore_ListProducts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for i := range 5 {
		p := testProduct()
		p.Name = "CPU " + string(rune('a'+i))
		p.Price = float64(10000 + i*5000)
		require.NoError(t, s.CreateProduct(ctx, p))
	}

	t.Run("no filters", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, products, 5)
	})

	t.Run("price bounds", func(t *testing.T) {
		q := &store.ProductQuery{
			MinPrice: ptrOf(15000.0),
			MaxPrice: ptrOf(25000.0),
		}
		products, total, err := s.ListProducts(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, products, 3)
	})

	t.Run("pagination total count is correct", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, products, 1)
	})

	t.Run("category match ignores case", func(t *testing.T) {
		products, err := s.ListProductsByCategory(ctx, "процессоры")
		require.NoError(t, err)
		assert.Len(t, products, 5)
	})
}

func TestPostgresStore_ListManufacturers(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, mfr := range []string{"Intel", "AMD", "Intel", ""} {
		p := testProduct()
		p.Manufacturer = mfr
		require.NoError(t, s.CreateProduct(ctx, p))
	}

	names, err := s.ListManufacturers(ctx, "Процессоры")
	require.NoError(t, err)
	assert.Equal(t, []string{"AMD", "Intel"}, names)
}

func TestPostgresStore_CartLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := testUser(t, s, "cart@example.com")
	p := testProduct()
	require.NoError(t, s.CreateProduct(ctx, p))

	// Add.
	item, err := s.AddCartItem(ctx, u.ID, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, p.Name, item.ProductName)

	// Adding the same product increments quantity instead of duplicating.
	item, err = s.AddCartItem(ctx, u.ID, p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	cart, err := s.GetCart(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.InDelta(t, p.Price*3, cart[0].Subtotal(), 0.01)

	// Update quantity.
	require.NoError(t, s.UpdateCartQuantity(ctx, u.ID, item.ID, 1))
	cart, err = s.GetCart(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)

	// Another user cannot touch the item.
	other := testUser(t, s, "other@example.com")
	assert.Error(t, s.UpdateCartQuantity(ctx, other.ID, item.ID, 5))
	assert.Error(t, s.RemoveCartItem(ctx, other.ID, item.ID))

	// Remove and clear.
	require.NoError(t, s.RemoveCartItem(ctx, u.ID, item.ID))
	cart, err = s.GetCart(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	_, err = s.AddCartItem(ctx, u.ID, p.ID, 2)
	require.NoError(t, err)
	require.NoError(t, s.ClearCart(ctx, u.ID))
	cart, err = s.GetCart(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestPostgresStore_OrderLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := testUser(t, s, "orders@example.com")

	o := &domain.Order{
		UserID: u.ID,
		Items: []domain.OrderItem{
			{ProductID: "p1", ProductName: "GPU", Price: 64990, Quantity: 1},
			{ProductID: "p2", ProductName: "CPU", Price: 38990, Quantity: 2},
		},
		Status:  domain.OrderStatusNew,
		Address: "Москва, ул. Примерная, 1",
		Phone:   "+7 900 000-00-00",
	}
	o.Total = o.ComputeTotal()
	require.NoError(t, s.CreateOrder(ctx, o))
	assert.NotEmpty(t, o.ID)

	got, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.InDelta(t, 64990+2*38990, got.Total, 0.01)
	assert.Equal(t, domain.OrderStatusNew, got.Status)

	// List by user.
	orders, err := s.ListOrdersByUser(ctx, u.ID, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	// Status transition.
	require.NoError(t, s.UpdateOrderStatus(ctx, o.ID, domain.OrderStatusProcessing))
	got, err = s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, got.Status)

	// List filtered by status.
	status := domain.OrderStatusProcessing
	orders, err = s.ListOrders(ctx, &status, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	status = domain.OrderStatusShipped
	orders, err = s.ListOrders(ctx, &status, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Unknown order reports not found.
	assert.Error(t, s.UpdateOrderStatus(ctx, "00000000-0000-0000-0000-000000000000", domain.OrderStatusShipped))
}

func TestPostgresStore_Users(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := &domain.User{Email: "admin@onetech.example", Name: "Admin", IsAdmin: true}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.NotEmpty(t, u.ID)

	got, err := s.GetUserByEmail(ctx, "admin@onetech.example")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, got.IsAdmin)

	byID, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Admin", byID.Name)

	// Duplicate email rejected.
	assert.Error(t, s.CreateUser(ctx, &domain.User{Email: "admin@onetech.example"}))
}

func ptrOf[T any](v T) *T { return &v }
