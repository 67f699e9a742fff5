// Package main implements a mock storefront API server for local development.
// It serves catalog responses from a JSON product fixture so the CLI and
// frontend can be exercised without PostgreSQL or Redis.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/onetech-shop/onetech-backend/pkg/catalog"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to products fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	products, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(products))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock storefront server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(products)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return products, nil
}

func newMux(products []domain.Product) *http.ServeMux {
	byCategory := make(map[string][]domain.Product)
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/catalog/categories", categoriesHandler())
	mux.HandleFunc("POST /api/v1/catalog/{category}/search", searchHandler(byCategory))
	mux.HandleFunc("GET /api/v1/catalog/{category}/filters", filtersHandler())
	mux.HandleFunc("GET /api/v1/catalog/{category}/manufacturers", manufacturersHandler(byCategory))
	mux.HandleFunc("GET /api/v1/products", productsHandler(products))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func categoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"categories": catalog.Categories(),
		})
	}
}

func searchHandler(byCategory map[string][]domain.Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")

		var spec domain.FilterSpec
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid filter body"})
			return
		}

		matched := catalog.Evaluate(byCategory[category], spec)
		if matched == nil {
			matched = []domain.Product{}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"products": matched,
			"total":    len(matched),
			"summary":  catalog.Summary(spec, catalog.Options(category)),
		})
	}
}

func filtersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")

		options := catalog.Options(category)
		if options == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "unknown category: " + category,
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"filters": options})
	}
}

func manufacturersHandler(byCategory map[string][]domain.Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")

		seen := make(map[string]bool)
		manufacturers := []string{}
		for _, p := range byCategory[category] {
			if p.Manufacturer == "" || seen[p.Manufacturer] {
				continue
			}
			seen[p.Manufacturer] = true
			manufacturers = append(manufacturers, p.Manufacturer)
		}
		sort.Strings(manufacturers)

		writeJSON(w, http.StatusOK, map[string]any{"manufacturers": manufacturers})
	}
}

func productsHandler(products []domain.Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")

		limit := 50
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
			limit = v
		}

		matched := []domain.Product{}
		for _, p := range products {
			if category == "" || p.Category == category {
				matched = append(matched, p)
			}
		}

		total := len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"products": matched,
			"total":    total,
		})
	}
}
