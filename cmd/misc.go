package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// companiesCmd represents the companies command
var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List the security companies known to the service",
	RunE:  runCompanies,
}

// subscriptionsCmd represents the subscriptions command
var subscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Show the notification subscriptions for the account",
	RunE:  runSubscriptions,
}

// appVersionCmd represents the app-version command
var appVersionCmd = &cobra.Command{
	Use:   "app-version",
	Short: "Check the vendor's supported app version",
	Long: `Ask the vendor which app version the service expects. Useful to spot
protocol changes when requests start failing.`,
	RunE: runAppVersion,
}

// registerGCMCmd represents the register-gcm command
var registerGCMCmd = &cobra.Command{
	Use:   "register-gcm <registration-id>",
	Short: "Register a GCM push token for this device",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegisterGCM,
}

func init() {
	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(subscriptionsCmd)
	rootCmd.AddCommand(appVersionCmd)
	rootCmd.AddCommand(registerGCMCmd)
}

func runCompanies(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	result, err := client.GetSecurityCompanies(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch security companies: %w", err)
	}

	return printJSON(result)
}

func runSubscriptions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	result, err := client.GetNotificationSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notification subscriptions: %w", err)
	}

	return printJSON(result)
}

func runAppVersion(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	result, err := client.CheckAppVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to check app version: %w", err)
	}

	return printJSON(result)
}

func runRegisterGCM(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	if _, err := client.StoreGCMRegistrationID(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to store GCM registration ID: %w", err)
	}

	fmt.Println("✓ GCM registration ID stored")
	return nil
}
