package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/swaykit/sway-session/internal/config"
	"github.com/swaykit/sway-session/internal/output"
	"github.com/swaykit/sway-session/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sway-session",
	Short: "Save and restore sway sessions",
	Long:  "A CLI tool that records the workspaces and windows of a running sway compositor and relaunches them later.",
}

// cfg and logger are resolved once in PersistentPreRunE and shared by
// every subcommand.
var (
	cfg    *config.Config
	logger hclog.Logger
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default <user config dir>/sway-session/config.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		confPath, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(confPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := hclog.LevelFromString(cfg.Log.Level)
		if level == hclog.NoLevel {
			return fmt.Errorf("unknown log level: %s (use trace, debug, info, warn, or error)", cfg.Log.Level)
		}
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			level = hclog.Debug
		}
		// Logs go to stderr so stdout stays parseable.
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "sway-session",
			Level:  level,
			Output: os.Stderr,
		})

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		parsed, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = parsed
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
