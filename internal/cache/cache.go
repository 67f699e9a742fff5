// Package cache provides the per-category product cache backing catalog
// search. Search traffic reads whole categories at once, so entries are
// keyed by category name and hold the full product slice.
package cache

import (
	"context"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// Cache abstracts the catalog product cache.
type Cache interface {
	// GetCategory returns the cached products for a category. A miss is
	// (nil, false, nil); errors are reserved for backend failures.
	GetCategory(ctx context.Context, category string) ([]domain.Product, bool, error)

	// SetCategory stores the full product slice for a category.
	SetCategory(ctx context.Context, category string, items []domain.Product) error

	// InvalidateCategory drops the cached entry for a category.
	InvalidateCategory(ctx context.Context, category string) error

	Close() error
}

// Noop is a Cache that stores nothing. Used when caching is disabled.
type Noop struct{}

// NewNoop creates a no-op cache.
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) GetCategory(context.Context, string) ([]domain.Product, bool, error) {
	return nil, false, nil
}

func (*Noop) SetCategory(context.Context, string, []domain.Product) error { return nil }

func (*Noop) InvalidateCategory(context.Context, string) error { return nil }

func (*Noop) Close() error { return nil }
