package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// poolSize <= 0 selects the default pool size.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateProduct inserts a new product and fills in its generated fields.
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	specsJSON, err := json.Marshal(p.Specs)
	if err != nil {
		return fmt.Errorf("marshaling specs: %w", err)
	}

	args := pgx.NamedArgs{
		"name":         p.Name,
		"price":        p.Price,
		"description":  p.Description,
		"category":     p.Category,
		"images":       p.Images,
		"manufacturer": p.Manufacturer,
		"model":        p.Model,
		"series":       p.Series,
		"stock":        p.Stock,
		"in_stock":     p.InStock,
		"specs":        specsJSON,
		"created_by":   p.CreatedBy,
	}

	return s.pool.QueryRow(ctx, queryCreateProduct, args).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetProduct retrieves a product by its ID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct replaces all mutable fields of an existing product.
func (s *PostgresStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	specsJSON, err := json.Marshal(p.Specs)
	if err != nil {
		return fmt.Errorf("marshaling specs: %w", err)
	}

	args := pgx.NamedArgs{
		"id":           p.ID,
		"name":         p.Name,
		"price":        p.Price,
		"description":  p.Description,
		"category":     p.Category,
		"images":       p.Images,
		"manufacturer": p.Manufacturer,
		"model":        p.Model,
		"series":       p.Series,
		"stock":        p.Stock,
		"in_stock":     p.InStock,
		"specs":        specsJSON,
	}

	return s.pool.QueryRow(ctx, queryUpdateProduct, args).Scan(&p.UpdatedAt)
}

// DeleteProduct removes a product by its ID.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteProduct, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListProducts queries products with optional filters, returning results and total count.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	opts *ProductQuery,
) ([]domain.Product, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListProductsByCategory returns every product in a category, newest first.
// The category match is case-insensitive. Used by the catalog search path
// and the cache warmer.
func (s *PostgresStore) ListProductsByCategory(
	ctx context.Context,
	category string,
) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, queryListProductsByCategory, category)
	if err != nil {
		return nil, fmt.Errorf("querying products by category: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ListManufacturers returns the distinct non-empty manufacturers in a
// category, sorted ascending.
func (s *PostgresStore) ListManufacturers(
	ctx context.Context,
	category string,
) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListManufacturers, category)
	if err != nil {
		return nil, fmt.Errorf("querying manufacturers: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning manufacturer: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// GetCart returns the user's cart items joined with current product data.
func (s *PostgresStore) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	rows, err := s.pool.Query(ctx, queryGetCart, userID)
	if err != nil {
		return nil, fmt.Errorf("querying cart: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := scanCartItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scanning cart item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// AddCartItem adds a product to the user's cart. If the product is already
// present, its quantity is incremented instead of creating a second row.
func (s *PostgresStore) AddCartItem(
	ctx context.Context,
	userID, productID string,
	quantity int,
) (*domain.CartItem, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryAddCartItem, userID, productID, quantity).Scan(&id); err != nil {
		return nil, fmt.Errorf("adding cart item: %w", err)
	}

	item := &domain.CartItem{}
	if err := scanCartItem(s.pool.QueryRow(ctx, queryGetCartItem, id), item); err != nil {
		return nil, fmt.Errorf("reading cart item: %w", err)
	}
	return item, nil
}

// UpdateCartQuantity sets the quantity of a cart item owned by the user.
func (s *PostgresStore) UpdateCartQuantity(
	ctx context.Context,
	userID, itemID string,
	quantity int,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateCartQuantity, userID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("updating cart quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RemoveCartItem deletes a cart item owned by the user.
func (s *PostgresStore) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	tag, err := s.pool.Exec(ctx, queryRemoveCartItem, userID, itemID)
	if err != nil {
		return fmt.Errorf("removing cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ClearCart removes every cart item for the user.
func (s *PostgresStore) ClearCart(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, queryClearCart, userID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}

// CreateOrder inserts a new order and fills in its generated fields.
func (s *PostgresStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshaling order items: %w", err)
	}

	args := pgx.NamedArgs{
		"user_id": o.UserID,
		"items":   itemsJSON,
		"total":   o.Total,
		"status":  string(o.Status),
		"address": o.Address,
		"phone":   o.Phone,
	}

	return s.pool.QueryRow(ctx, queryCreateOrder, args).Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt,
	)
}

// GetOrder retrieves an order by its ID.
func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o := &domain.Order{}
	var itemsJSON []byte

	err := s.pool.QueryRow(ctx, queryGetOrder, id).Scan(
		&o.ID, &o.UserID, &itemsJSON, &o.Total, &o.Status,
		&o.Address, &o.Phone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshaling order items: %w", err)
	}

	return o, nil
}

// ListOrdersByUser returns the user's orders, newest first.
func (s *PostgresStore) ListOrdersByUser(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.queryOrders(ctx, queryListOrdersByUser, userID, limit)
}

// ListOrders returns all orders, optionally filtered by status, newest first.
func (s *PostgresStore) ListOrders(
	ctx context.Context,
	status *domain.OrderStatus,
	limit int,
) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if status == nil {
		return s.queryOrders(ctx, queryListOrdersAll, limit)
	}
	return s.queryOrders(ctx, queryListOrdersByStatus, string(*status), limit)
}

// UpdateOrderStatus transitions an order to a new status.
func (s *PostgresStore) UpdateOrderStatus(
	ctx context.Context,
	id string,
	status domain.OrderStatus,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateOrderStatus, id, string(status))
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CreateUser inserts a new user account.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	return s.pool.QueryRow(ctx, queryCreateUser, u.Email, u.Name, u.IsAdmin).Scan(
		&u.ID, &u.CreatedAt,
	)
}

// GetUser retrieves a user by ID.
func (s *PostgresStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, queryGetUser, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.IsAdmin, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, queryGetUserByEmail, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.IsAdmin, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// queryOrders is a helper for order list queries.
func (s *PostgresStore) queryOrders(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var itemsJSON []byte

		if err := rows.Scan(
			&o.ID, &o.UserID, &itemsJSON, &o.Total, &o.Status,
			&o.Address, &o.Phone, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshaling order items: %w", err)
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanProduct scans a full product row.
func scanProduct(row scannable, p *domain.Product) error {
	var specsJSON []byte

	if err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.Category,
		&p.Images, &p.Manufacturer, &p.Model, &p.Series,
		&p.Stock, &p.InStock, &specsJSON, &p.CreatedAt, &p.CreatedBy, &p.UpdatedAt,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(specsJSON, &p.Specs); err != nil {
		return fmt.Errorf("unmarshaling product specs: %w", err)
	}

	return nil
}

// scanCartItem scans a joined cart row.
func scanCartItem(row scannable, item *domain.CartItem) error {
	return row.Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.ProductName, &item.ProductPrice,
		&item.ProductImage, &item.Category, &item.Quantity, &item.AddedAt,
	)
}

// collectProducts scans all rows from a product query into a slice.
func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
