package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	siteID      string
	partitionID string
	pin         int
	assumeYes   bool
)

// armCmd represents the arm command
var armCmd = &cobra.Command{
	Use:   "arm",
	Short: "Arm a site partition",
	Long: `Arm a partition of one of your alarm sites.

The site and partition fall back to defaults.site_id and defaults.partition_id
from the config file when the flags are omitted.`,
	RunE: runArm,
}

// disarmCmd represents the disarm command
var disarmCmd = &cobra.Command{
	Use:   "disarm",
	Short: "Disarm a site partition",
	Long: `Disarm a partition of one of your alarm sites.

Disarming prompts for confirmation unless --yes is given or
safety.confirm_disarm is disabled in the config file.`,
	RunE: runDisarm,
}

func init() {
	rootCmd.AddCommand(armCmd)
	rootCmd.AddCommand(disarmCmd)

	armCmd.Flags().StringVar(&siteID, "site", "", "site ID (default from config)")
	armCmd.Flags().StringVar(&partitionID, "partition", "", "partition ID (default from config)")
	armCmd.Flags().IntVar(&pin, "pin", 0, "keypad PIN for the partition")

	disarmCmd.Flags().StringVar(&siteID, "site", "", "site ID (default from config)")
	disarmCmd.Flags().StringVar(&partitionID, "partition", "", "partition ID (default from config)")
	disarmCmd.Flags().IntVar(&pin, "pin", 0, "keypad PIN for the partition")
	disarmCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
}

func runArm(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	site, partition, err := resolveTarget()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("pin") {
		return fmt.Errorf("a keypad PIN is required (--pin)")
	}

	if err := ensureSession(ctx); err != nil {
		return err
	}

	logger.Info().Str("site", site).Str("partition", partition).Msg("Arming partition")

	if _, err := client.ArmSite(ctx, true, pin, partition, site); err != nil {
		return fmt.Errorf("failed to arm site %s partition %s: %w", site, partition, err)
	}

	fmt.Printf("✓ Armed site %s partition %s\n", site, partition)
	return nil
}

func runDisarm(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	site, partition, err := resolveTarget()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("pin") {
		return fmt.Errorf("a keypad PIN is required (--pin)")
	}

	if cfg.Safety.ConfirmDisarm && !assumeYes {
		fmt.Printf("Disarm site %s partition %s? [y/N]: ", site, partition)
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			fmt.Println("Disarm cancelled.")
			return nil
		}
	}

	if err := ensureSession(ctx); err != nil {
		return err
	}

	logger.Info().Str("site", site).Str("partition", partition).Msg("Disarming partition")

	if _, err := client.ArmSite(ctx, false, pin, partition, site); err != nil {
		return fmt.Errorf("failed to disarm site %s partition %s: %w", site, partition, err)
	}

	fmt.Printf("✓ Disarmed site %s partition %s\n", site, partition)
	return nil
}

// resolveTarget applies the config defaults for site and partition
func resolveTarget() (string, string, error) {
	site := siteID
	if site == "" {
		site = cfg.Defaults.SiteID
	}

	partition := partitionID
	if partition == "" {
		partition = cfg.Defaults.PartitionID
	}

	if site == "" || partition == "" {
		return "", "", fmt.Errorf("site and partition are required (set --site/--partition or defaults in config)")
	}

	return site, partition, nil
}
