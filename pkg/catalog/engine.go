// Package catalog implements the in-memory filtering, sorting and faceted
// search evaluation used by the storefront catalog. All functions are pure:
// the caller's slices are never mutated and identical inputs always produce
// identical output, including tie-break order.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// Evaluate applies a filter spec to the full set of products in a category
// and returns the filtered, ordered view. Constraints apply in a fixed
// order: price lower bound, price upper bound, manufacturer (exact,
// case-sensitive), then facets. Within one facet key the selected values
// combine with OR; across keys with AND. Absent constraints are no-ops.
func Evaluate(items []domain.Product, spec domain.FilterSpec) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for i := range items {
		if matchesSpec(&items[i], &spec) {
			out = append(out, items[i])
		}
	}
	sortProducts(out, spec.SortMode)
	return out
}

func matchesSpec(p *domain.Product, spec *domain.FilterSpec) bool {
	if spec.MinPrice != nil && p.Price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && p.Price > *spec.MaxPrice {
		return false
	}
	if spec.Manufacturer != nil && p.Manufacturer != *spec.Manufacturer {
		return false
	}
	for key, selected := range spec.Facets {
		if len(selected) == 0 {
			continue
		}
		if !matchesAnyValue(p.Spec(key), key, selected) {
			return false
		}
	}
	return true
}

func matchesAnyValue(itemValue, key string, selected []string) bool {
	for _, v := range selected {
		if MatchesFacet(key, itemValue, v) {
			return true
		}
	}
	return false
}

// sortProducts orders items in place. All sorts are stable so equal keys
// preserve relative input order.
func sortProducts(items []domain.Product, mode domain.SortMode) {
	switch mode {
	case domain.SortPriceAsc:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case domain.SortNameAsc:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	default:
		// Newest first.
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}
