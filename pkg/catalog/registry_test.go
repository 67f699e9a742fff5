package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_KnownCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category  string
		wantCount int
		firstKey  string
	}{
		{category: "Видеокарты", wantCount: 6, firstKey: "memory"},
		{category: "Процессоры", wantCount: 7, firstKey: "socket"},
		{category: "Память", wantCount: 5, firstKey: "memoryFormat"},
		{category: "Материнские платы", wantCount: 6, firstKey: "motherboardSocket"},
		{category: "Накопители", wantCount: 5, firstKey: "storageType"},
		{category: "Блоки питания", wantCount: 4, firstKey: "power"},
		{category: "Корпуса", wantCount: 4, firstKey: "caseFormat"},
		{category: "Охлаждение", wantCount: 4, firstKey: "coolingType"},
		{category: "Готовые ПК", wantCount: 9, firstKey: "processor"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			t.Parallel()

			opts := Options(tt.category)
			require.Len(t, opts, tt.wantCount)
			assert.Equal(t, tt.firstKey, opts[0].Key)

			for _, opt := range opts {
				assert.NotEmpty(t, opt.Key)
				assert.NotEmpty(t, opt.DisplayName)
				assert.NotEmpty(t, opt.Values)
			}
		})
	}
}

func TestOptions_CaseInsensitiveLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Options("Видеокарты"), Options("видеокарты"))
	assert.Equal(t, Options("ГОТОВЫЕ ПК"), Options("готовые пк"))
}

func TestOptions_UnknownCategory(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Options("Мониторы"))
	assert.Empty(t, Options(""))
}

func TestCategories(t *testing.T) {
	t.Parallel()

	names := Categories()
	assert.Len(t, names, 9)
	assert.Contains(t, names, "процессоры")
	// Sorted, therefore stable across calls.
	assert.Equal(t, names, Categories())
}

// Every key handled by a numeric match rule must exist in some category's
// option set; the dispatch table and registry drift apart otherwise.
func TestMatchRuleKeysExistInRegistry(t *testing.T) {
	t.Parallel()

	registryKeys := map[string]bool{}
	for _, category := range Categories() {
		for _, opt := range Options(category) {
			registryKeys[opt.Key] = true
		}
	}

	for key := range matchRules {
		assert.True(t, registryKeys[key], "match rule key %q missing from registry", key)
	}
}
