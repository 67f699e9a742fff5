// Package engine runs background maintenance tasks for the catalog,
// currently cache warming on a schedule.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/onetech-shop/onetech-backend/internal/cache"
	"github.com/onetech-shop/onetech-backend/internal/metrics"
	"github.com/onetech-shop/onetech-backend/internal/store"
	"github.com/onetech-shop/onetech-backend/pkg/catalog"
)

// Warmer preloads the category cache from the product store so that
// catalog searches hit warm data after startup and after invalidations.
type Warmer struct {
	store store.Store
	cache cache.Cache
	log   *slog.Logger
}

// NewWarmer creates a new Warmer with injected dependencies.
func NewWarmer(s store.Store, c cache.Cache, opts ...WarmerOption) *Warmer {
	w := &Warmer{
		store: s,
		cache: c,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WarmerOption configures the Warmer.
type WarmerOption func(*Warmer)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) WarmerOption {
	return func(w *Warmer) {
		w.log = l
	}
}

// WarmAll loads every known category into the cache. Failures on
// individual categories are collected so one bad category does not stop
// the rest of the cycle.
func (w *Warmer) WarmAll(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.CacheWarmDuration.Observe(time.Since(start).Seconds())
	}()

	var errs []error
	var warmed int

	for _, category := range catalog.Categories() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := w.WarmCategory(ctx, category); err != nil {
			w.log.Error("cache warm failed", "category", category, "error", err)
			errs = append(errs, err)
			continue
		}
		warmed++
	}

	w.log.Info("cache warm cycle complete",
		"warmed", warmed,
		"failed", len(errs),
		"duration", time.Since(start),
	)

	return errors.Join(errs...)
}

// WarmCategory loads one category from the store into the cache.
func (w *Warmer) WarmCategory(ctx context.Context, category string) error {
	products, err := w.store.ListProductsByCategory(ctx, category)
	if err != nil {
		return fmt.Errorf("loading category %q: %w", category, err)
	}

	if err := w.cache.SetCategory(ctx, category, products); err != nil {
		return fmt.Errorf("caching category %q: %w", category, err)
	}

	w.log.Debug("category warmed", "category", category, "products", len(products))
	return nil
}
