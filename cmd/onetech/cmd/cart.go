package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func cartCmd() *cobra.Command {
	cartRoot := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart",
		Long:  "Inspect and modify the cart of the authenticated user.",
	}

	cartRoot.AddCommand(
		cartShowCmd(),
		cartAddCmd(),
		cartUpdateCmd(),
		cartRemoveCmd(),
		cartClearCmd(),
	)

	return cartRoot
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show cart contents",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			cart, err := c.GetCart(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cart)
			}

			if len(cart.Items) == 0 {
				fmt.Println("Cart is empty.")
				return nil
			}

			return printCartTable(cart.Items, cart.Total)
		},
	}
}

func cartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Example: `  onetech cart add abc123
  onetech cart add abc123 --quantity 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			item, err := c.AddCartItem(context.Background(), args[0], quantity)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(item)
			}

			fmt.Printf("Added %s x%d\n", item.ProductName, item.Quantity)
			return nil
		},
	}
	cmd.Flags().IntVar(&quantity, "quantity", 1, "units to add")

	return cmd
}

func cartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "update <item-id> <quantity>",
		Short:   "Set the quantity of a cart item",
		Example: `  onetech cart update item42 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			c := newClient()
			if err := c.UpdateCartQuantity(context.Background(), args[0], quantity); err != nil {
				return err
			}

			fmt.Println("Updated.")
			return nil
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <item-id>",
		Short:   "Remove an item from the cart",
		Example: `  onetech cart remove item42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.RemoveCartItem(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Removed.")
			return nil
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from the cart",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.ClearCart(context.Background()); err != nil {
				return err
			}

			fmt.Println("Cart cleared.")
			return nil
		},
	}
}
