package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	authRoot := &cobra.Command{
		Use:   "auth",
		Short: "Obtain API tokens",
		Long: "Register an account or log in to obtain a bearer token.\n" +
			"Pass the token via --token or the ONETECH_TOKEN environment variable.",
	}

	authRoot.AddCommand(
		authRegisterCmd(),
		authLoginCmd(),
	)

	return authRoot
}

func authRegisterCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "register <email>",
		Short:   "Create an account and print its token",
		Example: `  onetech auth register ivan@example.com --name "Иван Петров"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.RegisterUser(context.Background(), args[0], name)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Println("Registered", resp.User.Email)
			fmt.Println(resp.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")

	return cmd
}

func authLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "login <email>",
		Short:   "Print a fresh token for an existing account",
		Example: `  export ONETECH_TOKEN=$(onetech auth login ivan@example.com)`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.Login(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Println(resp.Token)
			return nil
		},
	}
}
