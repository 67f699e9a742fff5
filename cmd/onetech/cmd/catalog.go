package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func catalogCmd() *cobra.Command {
	catalogRoot := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and filter the catalog",
		Long: "Browse catalog categories, inspect their filter configuration,\n" +
			"and run faceted searches against one category.",
	}

	catalogRoot.AddCommand(
		catalogCategoriesCmd(),
		catalogFiltersCmd(),
		catalogManufacturersCmd(),
		catalogSearchCmd(),
	)

	return catalogRoot
}

func catalogCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			categories, err := c.ListCategories(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(categories)
			}

			for _, category := range categories {
				fmt.Println(category)
			}
			return nil
		},
	}
}

func catalogFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "filters <category>",
		Short:   "Show the filterable attributes of a category",
		Example: `  onetech catalog filters "Процессоры"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			filters, err := c.ListFilters(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(filters)
			}

			return printFiltersTable(filters)
		},
	}
}

func catalogManufacturersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "manufacturers <category>",
		Short:   "List the manufacturers present in a category",
		Example: `  onetech catalog manufacturers "Видеокарты"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			manufacturers, err := c.ListManufacturers(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(manufacturers)
			}

			for _, m := range manufacturers {
				fmt.Println(m)
			}
			return nil
		},
	}
}

func catalogSearchCmd() *cobra.Command {
	var (
		sortMode     string
		minPrice     float64
		maxPrice     float64
		manufacturer string
		facets       []string
	)

	cmd := &cobra.Command{
		Use:   "search <category>",
		Short: "Search one category with filters",
		Long: "Run a faceted search against one catalog category. Facet values\n" +
			"are given as key=value pairs; repeat --facet or comma-separate\n" +
			"values to select more than one.",
		Example: `  # Cheapest CPUs first
  onetech catalog search "Процессоры" --sort price_asc

  # 6 or 8 core CPUs from AMD under 30000
  onetech catalog search "Процессоры" --manufacturer AMD --max-price 30000 --facet cores=6,8

  # DDR5 memory, 32 GB modules
  onetech catalog search "Оперативная память" --facet type=DDR5 --facet capacity="32 ГБ"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			spec := &domain.FilterSpec{}
			if sortMode != "" {
				spec.SortMode = domain.SortMode(sortMode)
			}
			if minPrice > 0 {
				spec.MinPrice = &minPrice
			}
			if maxPrice > 0 {
				spec.MaxPrice = &maxPrice
			}
			if manufacturer != "" {
				spec.Manufacturer = &manufacturer
			}

			parsed, err := parseFacets(facets)
			if err != nil {
				return err
			}
			spec.Facets = parsed

			c := newClient()
			resp, err := c.SearchCatalog(context.Background(), args[0], spec)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			for _, line := range resp.Summary {
				fmt.Println(line)
			}
			if len(resp.Summary) > 0 {
				fmt.Println()
			}

			if len(resp.Products) == 0 {
				fmt.Println("No products matched.")
				return nil
			}

			fmt.Printf("Found %d products\n\n", resp.Total)
			return printProductsTable(resp.Products)
		},
	}
	cmd.Flags().
		StringVar(&sortMode, "sort", "", "sort mode (default, price_asc, price_desc, name_asc)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price filter")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price filter")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "manufacturer filter")
	cmd.Flags().
		StringArrayVar(&facets, "facet", nil, "facet filter as key=value (repeatable)")

	return cmd
}

func parseFacets(pairs []string) (map[string][]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	facets := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		key, values, ok := strings.Cut(pair, "=")
		if !ok || key == "" || values == "" {
			return nil, fmt.Errorf("invalid facet %q, expected key=value", pair)
		}
		for _, v := range strings.Split(values, ",") {
			if v = strings.TrimSpace(v); v != "" {
				facets[key] = append(facets[key], v)
			}
		}
	}
	return facets, nil
}
