package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/liangshaojie/portfolio/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var envFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve or pre-render the bilingual portfolio page",
	Long: `portfolio hosts a single-page personal portfolio with section navigation,
light/dark themes, a Chinese/English language switch and a contact form.

Configuration comes from the environment, after loading .env when present.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env file to load (default .env when present)")
}

// loadConfig reads the configuration and builds the logger for it.
func loadConfig() (cfg config.Config, logger *slog.Logger, err error) {
	cfg, err = config.Load(envFile)
	if err != nil {
		return cfg, logger, err
	}
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	logger = cfg.Logger(os.Stderr)
	slog.SetDefault(logger)
	return cfg, logger, err
}
