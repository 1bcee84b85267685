package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/kata-cli/internal/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagOutput string
	inputFile  string

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = logrus.New()
	runLog = logrus.NewEntry(logger)
)

var rootCmd = &cobra.Command{
	Use:   "kata",
	Short: "kata: sequence exercises from the command line",
	Long: `kata runs small sequence transformations over a list of values:
skip-sampling at increasing strides, strict local maxima, and a vertical
digit histogram. Values come from arguments or from a txt/csv/yaml/json file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.kata/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: text, json or yaml (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read values from a txt/csv/yaml/json file, or - for stdin")

	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{Output: cfgpkg.OutputText, LogLevel: "warn"}
	}
	cfg = c

	// Apply CLI overrides if provided
	if rootCmd.PersistentFlags().Changed("output") {
		cfg.Output = cfgpkg.NormalizeOutput(flagOutput)
	}
	setupLogging()
}

func setupLogging() {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: unknown log_level %q, using warn\n", cfg.LogLevel)
		level = logrus.WarnLevel
	}
	if debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	runLog = logger.WithField("run", uuid.NewString())
	runLog.WithFields(logrus.Fields{
		"output": cfg.Output,
		"file":   inputFile,
	}).Debug("configuration loaded")
}
