package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/onetech-shop/onetech-backend/internal/auth"
	"github.com/onetech-shop/onetech-backend/internal/cache"
	"github.com/onetech-shop/onetech-backend/internal/store"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// ProductHandler handles product CRUD operations. Write operations are
// admin-only and invalidate the category cache.
type ProductHandler struct {
	store store.Store
	cache cache.Cache
	log   *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(s store.Store, c cache.Cache, log *slog.Logger) *ProductHandler {
	return &ProductHandler{store: s, cache: c, log: log}
}

// List handles GET /api/v1/products.
//
// @Summary List products
// @Description Returns products matching optional query filters, with pagination.
// @Tags products
// @Produce json
// @Param category query string false "Category name"
// @Param manufacturer query string false "Manufacturer"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param in_stock query string false "Only in-stock products" Enums(true, false)
// @Param q query string false "Name substring"
// @Param limit query int false "Page size"
// @Param offset query int false "Pagination offset"
// @Param order_by query string false "Sort order" Enums(price_asc, price_desc, name_asc, created_at)
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	q, err := parseProductQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	products, total, err := h.store.ListProducts(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing products: " + err.Error(),
		})
	}

	if products == nil {
		products = []domain.Product{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"products": products,
		"total":    total,
		"limit":    q.Limit,
		"offset":   q.Offset,
	})
}

func parseProductQuery(c echo.Context) (*store.ProductQuery, error) {
	q := &store.ProductQuery{OrderBy: c.QueryParam("order_by")}

	setString := func(param string, dst **string) {
		if v := c.QueryParam(param); v != "" {
			*dst = &v
		}
	}
	setString("category", &q.Category)
	setString("manufacturer", &q.Manufacturer)
	setString("q", &q.NameLike)

	setFloat := func(param string, dst **float64) error {
		v := c.QueryParam(param)
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("invalid " + param)
		}
		*dst = &f
		return nil
	}
	if err := setFloat("min_price", &q.MinPrice); err != nil {
		return nil, err
	}
	if err := setFloat("max_price", &q.MaxPrice); err != nil {
		return nil, err
	}

	if v := c.QueryParam("in_stock"); v != "" {
		inStock := v == "true"
		q.InStock = &inStock
	}

	setInt := func(param string, dst *int) error {
		v := c.QueryParam(param)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return errors.New("invalid " + param)
		}
		*dst = n
		return nil
	}
	if err := setInt("limit", &q.Limit); err != nil {
		return nil, err
	}
	if err := setInt("offset", &q.Offset); err != nil {
		return nil, err
	}

	return q, nil
}

// Get handles GET /api/v1/products/:id.
//
// @Summary Get a product by ID
// @Description Returns a single product by its UUID.
// @Tags products
// @Produce json
// @Param id path string true "Product UUID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id := c.Param("id")

	p, err := h.store.GetProduct(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/v1/products (admin only).
//
// @Summary Create a product
// @Description Creates a new product and invalidates its category cache.
// @Tags products
// @Accept json
// @Produce json
// @Param product body domain.Product true "Product to create"
// @Success 201 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if p.Name == "" || p.Category == "" || p.Price <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name, category, and a positive price are required",
		})
	}

	if claims, ok := auth.ClaimsFrom(c.Request().Context()); ok {
		p.CreatedBy = claims.UserID
	}

	if err := h.store.CreateProduct(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating product: " + err.Error(),
		})
	}

	h.invalidate(c, p.Category)

	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/v1/products/:id (admin only).
//
// @Summary Update a product
// @Description Updates an existing product and invalidates its category cache.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product UUID"
// @Param product body domain.Product true "Updated product"
// @Success 200 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	p.ID = id
	if err := h.store.UpdateProduct(c.Request().Context(), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating product: " + err.Error(),
		})
	}

	h.invalidate(c, p.Category)

	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/v1/products/:id (admin only).
//
// @Summary Delete a product
// @Description Deletes a product and invalidates its category cache.
// @Tags products
// @Param id path string true "Product UUID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	// Look up the category first so the cache entry can be invalidated.
	p, err := h.store.GetProduct(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	if err := h.store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting product: " + err.Error(),
		})
	}

	h.invalidate(c, p.Category)

	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) invalidate(c echo.Context, category string) {
	if err := h.cache.InvalidateCategory(c.Request().Context(), category); err != nil {
		h.log.Warn("cache invalidation failed", "category", category, "error", err)
	}
}

// RegisterProductRoutes registers product endpoints on the Echo instance.
// Read endpoints are public; write endpoints require an admin token.
func RegisterProductRoutes(e *echo.Echo, h *ProductHandler, authMW, adminMW echo.MiddlewareFunc) {
	e.GET("/api/v1/products", h.List)
	e.GET("/api/v1/products/:id", h.Get)

	e.POST("/api/v1/products", h.Create, authMW, adminMW)
	e.PUT("/api/v1/products/:id", h.Update, authMW, adminMW)
	e.DELETE("/api/v1/products/:id", h.Delete, authMW, adminMW)
}
