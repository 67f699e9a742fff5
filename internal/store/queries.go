package store

// SQL query constants organized by entity.
// All SQL lives here as constants referenced by PostgresStore methods.

// Product queries.
const (
	queryCreateProduct = `
		INSERT INTO products (
			name, price, description, category, images,
			manufacturer, model, series, stock, in_stock,
			specs, created_by, created_at, updated_at
		) VALUES (
			@name, @price, @description, @category, @images,
			@manufacturer, @model, @series, @stock, @in_stock,
			@specs, @created_by, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT id, name, price, COALESCE(description, ''), category,
			COALESCE(images, '{}'), COALESCE(manufacturer, ''), COALESCE(model, ''), COALESCE(series, ''),
			stock, in_stock, COALESCE(specs, '{}'), created_at, COALESCE(created_by, ''), updated_at
		FROM products
		WHERE id = $1`

	queryUpdateProduct = `
		UPDATE products SET
			name = @name,
			price = @price,
			description = @description,
			category = @category,
			images = @images,
			manufacturer = @manufacturer,
			model = @model,
			series = @series,
			stock = @stock,
			in_stock = @in_stock,
			specs = @specs,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteProduct = `DELETE FROM products WHERE id = $1`

	queryListProductsByCategory = `
		SELECT id, name, price, COALESCE(description, ''), category,
			COALESCE(images, '{}'), COALESCE(manufacturer, ''), COALESCE(model, ''), COALESCE(series, ''),
			stock, in_stock, COALESCE(specs, '{}'), created_at, COALESCE(created_by, ''), updated_at
		FROM products
		WHERE lower(category) = lower($1)
		ORDER BY created_at DESC`

	queryListManufacturers = `
		SELECT DISTINCT manufacturer
		FROM products
		WHERE lower(category) = lower($1) AND manufacturer <> ''
		ORDER BY manufacturer`
)

// Cart queries. Cart rows are joined against products at read time so the
// storefront always shows current names and prices.
const (
	queryAddCartItem = `
		INSERT INTO cart_items (user_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, product_id) DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id`

	queryGetCartItem = `
		SELECT c.id, c.user_id, c.product_id, p.name, p.price,
			COALESCE(p.images[1], ''), p.category, c.quantity, c.added_at
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.id = $1`

	queryGetCart = `
		SELECT c.id, c.user_id, c.product_id, p.name, p.price,
			COALESCE(p.images[1], ''), p.category, c.quantity, c.added_at
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.added_at`

	queryUpdateCartQuantity = `
		UPDATE cart_items SET quantity = $3
		WHERE user_id = $1 AND id = $2`

	queryRemoveCartItem = `DELETE FROM cart_items WHERE user_id = $1 AND id = $2`

	queryClearCart = `DELETE FROM cart_items WHERE user_id = $1`
)

// Order queries.
const (
	queryCreateOrder = `
		INSERT INTO orders (user_id, items, total, status, address, phone, created_at, updated_at)
		VALUES (@user_id, @items, @total, @status, @address, @phone, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetOrder = `
		SELECT id, user_id, items, total, status,
			COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at
		FROM orders
		WHERE id = $1`

	queryListOrdersByUser = `
		SELECT id, user_id, items, total, status,
			COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryListOrdersAll = `
		SELECT id, user_id, items, total, status,
			COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1`

	queryListOrdersByStatus = `
		SELECT id, user_id, items, total, status,
			COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at
		FROM orders
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryUpdateOrderStatus = `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1`
)

// User queries.
const (
	queryCreateUser = `
		INSERT INTO users (email, name, is_admin, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`

	queryGetUser = `
		SELECT id, email, COALESCE(name, ''), is_admin, created_at
		FROM users
		WHERE id = $1`

	queryGetUserByEmail = `
		SELECT id, email, COALESCE(name, ''), is_admin, created_at
		FROM users
		WHERE email = $1`
)
