package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepo is the release source for self-updates.
const githubRepo = "securehome-za/securehome"

var checkOnly bool

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade securehome to the latest release",
	Long: `Check GitHub for a newer release of securehome and replace the running
binary with it.

Development builds cannot be upgraded in place; install a released version
first.`,
	RunE: runSelfUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)

	upgradeCmd.Flags().BoolVar(&checkOnly, "check", false, "only check whether a newer release exists")
}

func runSelfUpgrade(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot upgrade a non-release build (version %q): %w", version, err)
	}

	fmt.Println("Checking for updates...")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepo))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("✓ Already up to date (version %s)\n", version)
		return nil
	}

	fmt.Printf("Found newer release: %s (current: %s)\n", latest.Version(), version)
	if checkOnly {
		fmt.Println("Run 'securehome upgrade' without --check to install it.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Printf("→ Downloading %s... ", latest.AssetName)
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		fmt.Println("✗ Failed")
		return fmt.Errorf("failed to update binary: %w", err)
	}
	fmt.Println("✓ Done")

	fmt.Printf("\n✓ Successfully upgraded to %s\n", latest.Version())
	return nil
}
