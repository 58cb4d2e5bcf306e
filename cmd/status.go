package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/securehome-za/securehome/filter"
)

var (
	filterExpr string
	preset     string
	limitCount int
	rawOutput  bool
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current state of your alarm sites",
	Long:  `Fetch the current armed state of all sites and partitions on the account.`,
	RunE:  runStatus,
}

// sitesCmd represents the sites command
var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the sites linked to the account",
	RunE:  runSites,
}

// notificationsCmd represents the notifications command
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List site notifications, optionally filtered",
	Long: `List the notification feed for your sites.

The feed can be narrowed with a filter expression (--filter), a named preset
from the config file (--preset), or the filter.default config entry.
Expressions see the fields Site, SiteID, Type, Message, Received and the raw
entry as Raw, for example:

  securehome notifications --filter 'contains(Message, "alarm")'
  securehome notifications --filter 'hoursSince(Received) < 24'`,
	RunE: runNotifications,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sitesCmd)
	rootCmd.AddCommand(notificationsCmd)

	statusCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the raw payload as JSON")

	sitesCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the raw payload as JSON")

	notificationsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	notificationsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	notificationsCmd.Flags().IntVarP(&limitCount, "limit", "n", 0, "show at most N notifications (0 = all)")
	notificationsCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the raw payload as JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	result, err := client.GetStateInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch state info: %w", err)
	}

	if rawOutput {
		return printJSON(result)
	}

	out := formatStateInfo(result)
	if out == "" {
		// Payload shape not recognized, show everything.
		return printJSON(result)
	}

	fmt.Print(out)
	return nil
}

func runSites(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	result, err := client.GetSyncInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch sync info: %w", err)
	}

	if rawOutput {
		return printJSON(result)
	}

	out := formatSites(result)
	if out == "" {
		return printJSON(result)
	}

	fmt.Print(out)
	return nil
}

func runNotifications(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := ensureSession(ctx); err != nil {
		return err
	}

	result, err := client.SiteNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notifications: %w", err)
	}

	if rawOutput {
		return printJSON(result)
	}

	notifications := filter.FromPayload(result)

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	if expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		logger.Debug().Str("filter", expression).Msg("Filtering notifications")
		notifications = f.Apply(notifications)
	}

	if limitCount > 0 && len(notifications) > limitCount {
		notifications = notifications[:limitCount]
	}

	fmt.Print(formatNotifications(notifications))
	return nil
}

// getFilterExpression determines the filter expression to use.
// An empty result means the feed is listed unfiltered.
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetExpr, ok := cfg.Filter.Presets[preset]; ok {
			return presetExpr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.Default, nil
}
