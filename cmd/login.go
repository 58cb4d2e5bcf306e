package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and print the issued session token",
	Long: `Authenticate against the Secure Home API with the configured email and
password and print the issued session token.

Store the token under api.token in the config file to skip the login round
trip on later invocations. Tokens stay valid until the vendor expires them.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if _, err := client.Login(ctx); err != nil {
		return err
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("\nToken: %s\n", client.Token())
	fmt.Println("\nAdd this to your config file to reuse the session:")
	fmt.Println("  api:")
	fmt.Printf("    token: %s\n", client.Token())

	return nil
}
