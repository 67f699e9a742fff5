package catalog

import (
	"fmt"
	"strings"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

// sortDescriptions maps a sort mode to its display line.
var sortDescriptions = map[domain.SortMode]string{
	domain.SortDefault:   "Сортировка: Новые сначала",
	domain.SortPriceAsc:  "Сортировка: Цена по возрастанию",
	domain.SortPriceDesc: "Сортировка: Цена по убыванию",
	domain.SortNameAsc:   "Сортировка: Название А-Я",
}

// Summary renders an applied filter spec as human-readable lines, one per
// active constraint: sort mode, price bounds, manufacturer, then each
// active facet in registry display order. A facet with more than three
// selected values is collapsed to a count.
func Summary(spec domain.FilterSpec, options []domain.FilterOption) []string {
	var lines []string

	desc, ok := sortDescriptions[spec.SortMode]
	if !ok {
		desc = sortDescriptions[domain.SortDefault]
	}
	lines = append(lines, desc)

	if spec.MinPrice != nil {
		lines = append(lines, fmt.Sprintf("Цена от: %d ₽", int(*spec.MinPrice)))
	}
	if spec.MaxPrice != nil {
		lines = append(lines, fmt.Sprintf("Цена до: %d ₽", int(*spec.MaxPrice)))
	}
	if spec.Manufacturer != nil {
		lines = append(lines, "Производитель: "+*spec.Manufacturer)
	}

	for _, opt := range options {
		selected := spec.Facets[opt.Key]
		if len(selected) == 0 {
			continue
		}
		switch {
		case len(selected) == 1:
			lines = append(lines, opt.DisplayName+": "+selected[0])
		case len(selected) <= 3:
			lines = append(lines, opt.DisplayName+": "+strings.Join(selected, ", "))
		default:
			lines = append(lines, fmt.Sprintf("%s: %d выбрано", opt.DisplayName, len(selected)))
		}
	}

	return lines
}
