package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/onetech-shop/onetech-backend/internal/cache"
	"github.com/onetech-shop/onetech-backend/internal/metrics"
	"github.com/onetech-shop/onetech-backend/internal/store"
	"github.com/onetech-shop/onetech-backend/pkg/catalog"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// CatalogHandler handles category browsing, filtering, and search.
type CatalogHandler struct {
	store store.Store
	cache cache.Cache
	log   *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s store.Store, c cache.Cache, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{store: s, cache: c, log: log}
}

// --- Input/Output types ---

// SearchCatalogInput is the filter request for one category.
type SearchCatalogInput struct {
	Category string `path:"category" doc:"Category name" example:"Процессоры"`
	Body     domain.FilterSpec
}

// SearchCatalogOutput is the filtered product list plus a human-readable
// summary of the active constraints.
type SearchCatalogOutput struct {
	Body struct {
		Products []domain.Product `json:"products" doc:"Matching products in requested order"`
		Total    int              `json:"total" doc:"Number of matching products"`
		Summary  []string         `json:"summary,omitempty" doc:"Active filter description lines"`
	}
}

// ListFiltersInput selects the category whose filter options to return.
type ListFiltersInput struct {
	Category string `path:"category" doc:"Category name" example:"Видеокарты"`
}

// ListFiltersOutput is the facet configuration for a category.
type ListFiltersOutput struct {
	Body struct {
		Category string                `json:"category"`
		Filters  []domain.FilterOption `json:"filters"`
	}
}

// ListCategoriesOutput lists all known catalog categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []string `json:"categories"`
	}
}

// ListManufacturersInput selects the category whose manufacturers to return.
type ListManufacturersInput struct {
	Category string `path:"category" doc:"Category name" example:"Материнские платы"`
}

// ListManufacturersOutput is the sorted list of distinct manufacturers.
type ListManufacturersOutput struct {
	Body struct {
		Manufacturers []string `json:"manufacturers"`
	}
}

// --- Handlers ---

// SearchCatalog evaluates a filter request against one category and returns
// matching products in the requested order.
func (h *CatalogHandler) SearchCatalog(
	ctx context.Context,
	input *SearchCatalogInput,
) (*SearchCatalogOutput, error) {
	start := time.Now()

	products, err := h.loadCategory(ctx, input.Category)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading category: " + err.Error())
	}

	matched := catalog.Evaluate(products, input.Body)

	metrics.SearchDuration.
		WithLabelValues(input.Category).
		Observe(time.Since(start).Seconds())
	metrics.SearchResultsReturned.Observe(float64(len(matched)))

	if matched == nil {
		matched = []domain.Product{}
	}

	out := &SearchCatalogOutput{}
	out.Body.Products = matched
	out.Body.Total = len(matched)
	out.Body.Summary = catalog.Summary(input.Body, catalog.Options(input.Category))
	return out, nil
}

// loadCategory returns all products in a category, preferring the cache.
// A cache read error degrades to a store read, and a failed cache write
// is logged but never fails the request.
func (h *CatalogHandler) loadCategory(
	ctx context.Context,
	category string,
) ([]domain.Product, error) {
	products, hit, err := h.cache.GetCategory(ctx, category)
	if err != nil {
		h.log.Warn("cache read failed, falling back to store",
			"category", category, "error", err)
	} else if hit {
		return products, nil
	}

	products, err = h.store.ListProductsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	if err := h.cache.SetCategory(ctx, category, products); err != nil {
		h.log.Warn("cache write failed", "category", category, "error", err)
	}

	return products, nil
}

// ListFilters returns the facet configuration for a category.
func (h *CatalogHandler) ListFilters(
	_ context.Context,
	input *ListFiltersInput,
) (*ListFiltersOutput, error) {
	options := catalog.Options(input.Category)
	if options == nil {
		return nil, huma.Error404NotFound("unknown category: " + input.Category)
	}

	out := &ListFiltersOutput{}
	out.Body.Category = input.Category
	out.Body.Filters = options
	return out, nil
}

// ListCategories returns all known catalog categories.
func (*CatalogHandler) ListCategories(
	_ context.Context,
	_ *struct{},
) (*ListCategoriesOutput, error) {
	out := &ListCategoriesOutput{}
	out.Body.Categories = catalog.Categories()
	return out, nil
}

// ListManufacturers returns the distinct manufacturers present in a category.
func (h *CatalogHandler) ListManufacturers(
	ctx context.Context,
	input *ListManufacturersInput,
) (*ListManufacturersOutput, error) {
	manufacturers, err := h.store.ListManufacturers(ctx, input.Category)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing manufacturers: " + err.Error())
	}

	if manufacturers == nil {
		manufacturers = []string{}
	}

	out := &ListManufacturersOutput{}
	out.Body.Manufacturers = manufacturers
	return out, nil
}

// RegisterCatalogRoutes registers catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-catalog",
		Method:      http.MethodPost,
		Path:        "/api/v1/catalog/{category}/search",
		Summary:     "Search a category",
		Description: "Evaluates filter constraints against one category and returns matching products in the requested order.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.SearchCatalog)

	huma.Register(api, huma.Operation{
		OperationID: "list-filters",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/{category}/filters",
		Summary:     "List filter options for a category",
		Description: "Returns the facet keys, display names, and selectable values for one category.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListFilters)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/categories",
		Summary:     "List categories",
		Description: "Returns all known catalog categories.",
		Tags:        []string{"catalog"},
	}, h.ListCategories)

	huma.Register(api, huma.Operation{
		OperationID: "list-manufacturers",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/{category}/manufacturers",
		Summary:     "List manufacturers in a category",
		Description: "Returns the distinct manufacturers present in one category, sorted alphabetically.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListManufacturers)
}
