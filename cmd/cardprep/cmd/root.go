package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/cardprep/internal/config"
	"github.com/ironsheep/cardprep/internal/imaging"
)

var (
	cfgFile  string
	verbose  bool
	quiet    bool
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
	cache  = imaging.NewImageCache()

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cardprep",
	Short: "Card photo preparation for the tip articles",
	Long: `cardprep prepares the promotional card photos embedded in the
"100 Days of Unity Tips" articles.

It detects the card rectangle in a desk photo (light marble or dark wooden
backgrounds), crops it with a margin, keeps the aspect ratio in the card
band, and reports the file size saved. Manual cropping, OCR verification,
and tip folder scaffolding round out the content workflow.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and runs it with a
// signal-aware context.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cardprep.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Verbose = verbose
	cfg.Quiet = quiet

	logger = newLogger(logLevel, cfg)
	return nil
}
