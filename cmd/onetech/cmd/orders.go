package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Place and track orders",
		Long: "Place an order from the current cart and track its status.\n" +
			"Listing all orders and changing statuses requires an admin token.",
	}

	ordersRoot.AddCommand(
		ordersCreateCmd(),
		ordersListCmd(),
		ordersGetCmd(),
		ordersSetStatusCmd(),
	)

	return ordersRoot
}

func ordersCreateCmd() *cobra.Command {
	var (
		address string
		phone   string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Place an order from the cart",
		Example: `  onetech orders create --address "Москва, ул. Ленина 1" --phone "+79990001122"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			o, err := c.CreateOrder(context.Background(), address, phone)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(o)
			}

			fmt.Println("Order placed:", o.ID)
			return printOrderDetail(o)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func ordersListCmd() *cobra.Command {
	var (
		all    bool
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Example: `  # Your own orders
  onetech orders list

  # All shipped orders (admin)
  onetech orders list --all --status shipped`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			ctx := context.Background()

			var (
				orders []domain.Order
				err    error
			)
			if all {
				orders, err = c.ListAllOrders(ctx, status, limit)
			} else {
				orders, err = c.ListOrders(ctx, limit)
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(orders)
			}

			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}

			return printOrdersTable(orders)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every user's orders (admin)")
	cmd.Flags().
		StringVar(&status, "status", "", "status filter with --all (new, processing, shipped, delivered, cancelled)")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")

	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show order details",
		Example: `  onetech orders get ord123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			o, err := c.GetOrder(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(o)
			}

			return printOrderDetail(o)
		},
	}
}

func ordersSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set-status <id> <status>",
		Short:   "Move an order to a new status (admin)",
		Example: `  onetech orders set-status ord123 shipped`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			o, err := c.UpdateOrderStatus(
				context.Background(), args[0], domain.OrderStatus(args[1]))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(o)
			}

			fmt.Printf("Order %s is now %s\n", o.ID, o.Status)
			return nil
		},
	}
}
