package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/securehome-za/securehome/adtsecurehome"
	"github.com/securehome-za/securehome/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *adtsecurehome.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "securehome",
	Short: "Control ADT Secure Home alarm sites from the command line",
	Long: `securehome is a CLI tool for the ADT Secure Home alarm service. It can
arm and disarm alarm sites, show site state, list and filter notifications,
and manage vendor-side user preferences such as stored keypad codes.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information injected at build time
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// Commands that run without configuration or an API client.
var skipInit = map[string]bool{
	"version":    true,
	"upgrade":    true,
	"help":       true,
	"completion": true,
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	if skipInit[cmd.Name()] {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Secure Home client
	opts := []adtsecurehome.Option{}
	if cfg.API.Timeout > 0 {
		opts = append(opts, adtsecurehome.WithTimeout(cfg.API.Timeout))
	}
	if cfg.API.Token != "" {
		opts = append(opts, adtsecurehome.WithToken(cfg.API.Token))
	}

	client, err = adtsecurehome.NewClient(cfg.API.Email, cfg.API.Password, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Secure Home client: %w", err)
	}

	return nil
}

// ensureSession makes sure the client holds a session token, logging in with
// the configured credentials when none was supplied.
func ensureSession(ctx context.Context) error {
	if client.Token() != "" {
		return nil
	}

	logger.Debug().Msg("No session token configured, logging in")

	if _, err := client.Login(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only on a real terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("securehome %s (built %s)\n", version, buildTime)
}
