package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/securehome-za/securehome/adtsecurehome"
)

var (
	newCode  int
	storeFor string
)

// prefsCmd groups the user preference commands
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage the user preferences stored by the vendor",
}

// prefsGetCmd represents the prefs get command
var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the user preferences stored for the account",
	RunE:  runPrefsGet,
}

// prefsSetCodeCmd represents the prefs set-code command
var prefsSetCodeCmd = &cobra.Command{
	Use:   "set-code",
	Short: "Store an arm or bypass code for a partition",
	Long: `Store a keypad code for a partition in the vendor-side user preferences.

--store-for selects which code to set: Arm or Bypass. The site and partition
fall back to the defaults from the config file when the flags are omitted.`,
	RunE: runPrefsSetCode,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCodeCmd)

	prefsSetCodeCmd.Flags().StringVar(&siteID, "site", "", "site ID (default from config)")
	prefsSetCodeCmd.Flags().StringVar(&partitionID, "partition", "", "partition ID (default from config)")
	prefsSetCodeCmd.Flags().IntVar(&newCode, "code", 0, "keypad code to store")
	prefsSetCodeCmd.Flags().StringVar(&storeFor, "store-for", "Arm", "which code to store: Arm or Bypass")
}

func runPrefsGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	result, err := client.GetUserPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user preferences: %w", err)
	}

	return printJSON(result)
}

func runPrefsSetCode(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	site, partition, err := resolveTarget()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("code") {
		return fmt.Errorf("a keypad code is required (--code)")
	}

	if err := ensureSession(ctx); err != nil {
		return err
	}

	logger.Info().
		Str("site", site).
		Str("partition", partition).
		Str("store_for", storeFor).
		Msg("Storing keypad code")

	if _, err := client.SetUserPreference(ctx, site, partition, newCode, adtsecurehome.StoreFor(storeFor)); err != nil {
		return fmt.Errorf("failed to store %s code: %w", strings.ToLower(storeFor), err)
	}

	fmt.Printf("✓ Stored %s code for site %s partition %s\n", strings.ToLower(storeFor), site, partition)
	return nil
}
