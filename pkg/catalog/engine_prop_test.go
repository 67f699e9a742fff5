package catalog

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func genProducts(t *rapid.T) []domain.Product {
	n := rapid.IntRange(0, 40).Draw(t, "n")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	items := make([]domain.Product, 0, n)
	for range n {
		items = append(items, domain.Product{
			ID:           rapid.StringMatching(`[a-z]{4,8}`).Draw(t, "id"),
			Name:         rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "name"),
			Price:        float64(rapid.IntRange(0, 200000).Draw(t, "price")),
			Manufacturer: rapid.SampledFrom([]string{"", "AMD", "Intel", "NVIDIA"}).Draw(t, "mfr"),
			Specs: map[string]string{
				"cores": rapid.SampledFrom([]string{"", "2", "8", "16", "64"}).Draw(t, "cores"),
			},
			CreatedAt: base.Add(time.Duration(rapid.IntRange(0, 10000).Draw(t, "age")) * time.Minute),
		})
	}
	return items
}

func TestEvaluate_UnconstrainedSpecPreservesLength(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		items := genProducts(t)
		got := Evaluate(items, domain.FilterSpec{})
		if len(got) != len(items) {
			t.Fatalf("unconstrained evaluate dropped items: %d -> %d", len(items), len(got))
		}
	})
}

func TestEvaluate_DeterministicProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		items := genProducts(t)
		spec := domain.FilterSpec{
			SortMode: rapid.SampledFrom([]domain.SortMode{
				domain.SortDefault, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortNameAsc,
			}).Draw(t, "mode"),
			Facets: map[string][]string{
				"cores": {rapid.SampledFrom([]string{"2", "8", "16"}).Draw(t, "sel")},
			},
		}

		first := Evaluate(items, spec)
		second := Evaluate(items, spec)

		if len(first) != len(second) {
			t.Fatalf("non-deterministic length: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				t.Fatalf("non-deterministic order at %d: %s vs %s", i, first[i].ID, second[i].ID)
			}
		}
	})
}

func TestEvaluate_StricterMinPriceNeverGrowsResult(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		items := genProducts(t)
		lo := float64(rapid.IntRange(0, 100000).Draw(t, "lo"))
		hi := lo + float64(rapid.IntRange(0, 100000).Draw(t, "delta"))

		loose := Evaluate(items, domain.FilterSpec{MinPrice: &lo})
		strict := Evaluate(items, domain.FilterSpec{MinPrice: &hi})

		if len(strict) > len(loose) {
			t.Fatalf("stricter min price grew result: %d > %d", len(strict), len(loose))
		}
	})
}
