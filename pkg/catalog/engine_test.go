package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func product(id, name string, price float64, created time.Time) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Category:  "Процессоры",
		CreatedAt: created,
	}
}

func TestEvaluate_NoConstraintsDefaultOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []domain.Product{
		product("a", "Old", 100, base),
		product("b", "New", 200, base.Add(2*time.Hour)),
		product("c", "Mid", 300, base.Add(time.Hour)),
	}

	got := Evaluate(items, domain.FilterSpec{})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	// Input untouched.
	assert.Equal(t, "a", items[0].ID)
}

func TestEvaluate_EqualTimestampsPreserveInputOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []domain.Product{
		product("a", "A", 100, base),
		product("b", "B", 200, base),
		product("c", "C", 300, base),
	}

	got := Evaluate(items, domain.FilterSpec{SortMode: domain.SortDefault})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestEvaluate_PriceBounds(t *testing.T) {
	t.Parallel()

	now := time.Now()
	items := []domain.Product{
		product("cheap", "Cheap", 50, now),
		product("mid", "Mid", 500, now),
		product("dear", "Dear", 5000, now),
	}

	tests := []struct {
		name string
		spec domain.FilterSpec
		want []string
	}{
		{
			name: "min only",
			spec: domain.FilterSpec{MinPrice: ptr(100.0)},
			want: []string{"mid", "dear"},
		},
		{
			name: "max only",
			spec: domain.FilterSpec{MaxPrice: ptr(500.0)},
			want: []string{"cheap", "mid"},
		},
		{
			name: "inclusive bounds",
			spec: domain.FilterSpec{MinPrice: ptr(500.0), MaxPrice: ptr(500.0)},
			want: []string{"mid"},
		},
		{
			name: "empty window",
			spec: domain.FilterSpec{MinPrice: ptr(600.0), MaxPrice: ptr(400.0)},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(items, tt.spec)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestEvaluate_ManufacturerExactMatch(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a := product("a", "A", 100, now)
	a.Manufacturer = "AMD"
	b := product("b", "B", 100, now)
	b.Manufacturer = "amd"
	c := product("c", "C", 100, now)

	got := Evaluate([]domain.Product{a, b, c}, domain.FilterSpec{Manufacturer: ptr("AMD")})

	// Case-sensitive: "amd" and empty manufacturers are excluded.
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestEvaluate_FacetOrWithinKeyAndAcrossKeys(t *testing.T) {
	t.Parallel()

	now := time.Now()
	mk := func(id, socket, cores string) domain.Product {
		p := product(id, id, 100, now)
		p.Specs = map[string]string{"socket": socket, "cores": cores}
		return p
	}
	items := []domain.Product{
		mk("a", "AM4", "16"),      // socket matches, cores pass
		mk("b", "AM5", "16"),      // socket matches (second value), cores pass
		mk("c", "LGA 1700", "16"), // socket fails
		mk("d", "AM4", "4"),       // cores fail
	}

	got := Evaluate(items, domain.FilterSpec{
		Facets: map[string][]string{
			"socket": {"AM4", "AM5"},
			"cores":  {"8"},
		},
	})

	assert.ElementsMatch(t, []string{"a", "b"}, ids(got))
}

func TestEvaluate_MissingSpecKeyFailsFacet(t *testing.T) {
	t.Parallel()

	now := time.Now()
	noSpecs := product("bare", "Bare", 100, now)
	withSpec := product("full", "Full", 100, now)
	withSpec.Specs = map[string]string{"memoryType": "GDDR6"}

	got := Evaluate(
		[]domain.Product{noSpecs, withSpec},
		domain.FilterSpec{Facets: map[string][]string{"memoryType": {"GDDR6"}}},
	)
	assert.Equal(t, []string{"full"}, ids(got))

	// An empty selected value matches even an absent spec key.
	got = Evaluate(
		[]domain.Product{noSpecs},
		domain.FilterSpec{Facets: map[string][]string{"memoryType": {""}}},
	)
	assert.Equal(t, []string{"bare"}, ids(got))
}

func TestEvaluate_EmptySelectionIsNoConstraint(t *testing.T) {
	t.Parallel()

	now := time.Now()
	items := []domain.Product{product("a", "A", 100, now)}

	got := Evaluate(items, domain.FilterSpec{
		Facets: map[string][]string{"socket": {}},
	})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestEvaluate_SortModes(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Product{
		product("z", "zeta", 500, base),
		product("a", "Alpha", 100, base.Add(time.Hour)),
		product("b", "beta", 300, base.Add(2*time.Hour)),
	}

	tests := []struct {
		name string
		mode domain.SortMode
		want []string
	}{
		{name: "price ascending", mode: domain.SortPriceAsc, want: []string{"a", "b", "z"}},
		{name: "price descending", mode: domain.SortPriceDesc, want: []string{"z", "b", "a"}},
		{name: "name ascending case-insensitive", mode: domain.SortNameAsc, want: []string{"a", "b", "z"}},
		{name: "default newest first", mode: domain.SortDefault, want: []string{"b", "a", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(items, domain.FilterSpec{SortMode: tt.mode})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestEvaluate_PriceTiesPreserveInputOrder(t *testing.T) {
	t.Parallel()

	now := time.Now()
	items := []domain.Product{
		product("first", "X", 100, now),
		product("second", "Y", 100, now),
		product("third", "Z", 50, now),
	}

	got := Evaluate(items, domain.FilterSpec{SortMode: domain.SortPriceAsc})
	assert.Equal(t, []string{"third", "first", "second"}, ids(got))
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	items := make([]domain.Product, 0, 20)
	for i := range 20 {
		p := product(string(rune('a'+i)), "P", float64(i%5)*100, base.Add(time.Duration(i%3)*time.Minute))
		p.Specs = map[string]string{"cores": "8"}
		items = append(items, p)
	}
	spec := domain.FilterSpec{
		SortMode: domain.SortPriceAsc,
		Facets:   map[string][]string{"cores": {"4"}},
	}

	first := Evaluate(items, spec)
	second := Evaluate(items, spec)
	assert.Equal(t, first, second)
}

func ids(items []domain.Product) []string {
	out := make([]string, 0, len(items))
	for i := range items {
		out = append(out, items[i].ID)
	}
	return out
}
