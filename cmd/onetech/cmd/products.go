package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/onetech-shop/onetech-backend/internal/api/client"
	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Query and manage products",
		Long: "Query products across categories. Creating, updating, and\n" +
			"deleting products requires an admin token.",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
		productsCreateCmd(),
		productsUpdateCmd(),
		productsDeleteCmd(),
	)

	return productsRoot
}

func productsListCmd() *cobra.Command {
	var (
		category     string
		manufacturer string
		minPrice     float64
		maxPrice     float64
		inStock      bool
		nameLike     string
		limit        int
		offset       int
		orderBy      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with optional filters",
		Example: `  # List all products
  onetech products list

  # In-stock video cards under 60000, cheapest first
  onetech products list --category "Видеокарты" --max-price 60000 --in-stock --order-by price

  # Search by name with pagination
  onetech products list --name ryzen --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListProducts(context.Background(), &apiclient.ListProductsParams{
				Category:     category,
				Manufacturer: manufacturer,
				MinPrice:     minPrice,
				MaxPrice:     maxPrice,
				InStock:      inStock,
				NameLike:     nameLike,
				Limit:        limit,
				Offset:       offset,
				OrderBy:      orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Products) == 0 {
				fmt.Println("No products found.")
				return nil
			}

			fmt.Printf("Showing %d of %d products\n\n", len(resp.Products), resp.Total)
			return printProductsTable(resp.Products)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category filter")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "manufacturer filter")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price filter")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price filter")
	cmd.Flags().BoolVar(&inStock, "in-stock", false, "only in-stock products")
	cmd.Flags().StringVar(&nameLike, "name", "", "name substring filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (price, name, created_at)")

	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show product details",
		Example: `  onetech products get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(p)
			}

			return printProductDetail(p)
		},
	}
}

func productsCreateCmd() *cobra.Command {
	var (
		name         string
		category     string
		price        float64
		manufacturer string
		model        string
		series       string
		description  string
		stock        int
		specs        []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product (admin)",
		Example: `  onetech products create --name "AMD Ryzen 5 7600" --category "Процессоры" \
    --price 18990 --manufacturer AMD --stock 12 \
    --spec cores=6 --spec "base_clock=3.8 ГГц" --spec socket=AM5`,
		RunE: func(_ *cobra.Command, _ []string) error {
			parsed, err := parseSpecs(specs)
			if err != nil {
				return err
			}

			c := newClient()
			created, err := c.CreateProduct(context.Background(), &domain.Product{
				Name:         name,
				Category:     category,
				Price:        price,
				Manufacturer: manufacturer,
				Model:        model,
				Series:       series,
				Description:  description,
				Stock:        stock,
				InStock:      stock > 0,
				Specs:        parsed,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(created)
			}

			fmt.Println("Created product", created.ID)
			return printProductDetail(created)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&category, "category", "", "catalog category")
	cmd.Flags().Float64Var(&price, "price", 0, "price in rubles")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "manufacturer")
	cmd.Flags().StringVar(&model, "model", "", "model")
	cmd.Flags().StringVar(&series, "series", "", "series")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().IntVar(&stock, "stock", 0, "units in stock")
	cmd.Flags().
		StringArrayVar(&specs, "spec", nil, "attribute as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func productsUpdateCmd() *cobra.Command {
	var (
		name  string
		price float64
		stock int
	)

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Update a product (admin)",
		Example: `  onetech products update abc123 --price 17490 --stock 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx := context.Background()

			p, err := c.GetProduct(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("price") {
				p.Price = price
			}
			if cmd.Flags().Changed("stock") {
				p.Stock = stock
				p.InStock = stock > 0
			}

			updated, err := c.UpdateProduct(ctx, p)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(updated)
			}

			return printProductDetail(updated)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new product name")
	cmd.Flags().Float64Var(&price, "price", 0, "new price in rubles")
	cmd.Flags().IntVar(&stock, "stock", 0, "new stock count")

	return cmd
}

func productsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a product (admin)",
		Example: `  onetech products delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteProduct(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Deleted product", args[0])
			return nil
		},
	}
}

func parseSpecs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	specs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid spec %q, expected key=value", pair)
		}
		specs[key] = value
	}
	return specs, nil
}
