package cmd

import (
	"context"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rokudocs/brsdoc/internal/app"
	"github.com/rokudocs/brsdoc/internal/config"
	"github.com/rokudocs/brsdoc/internal/log"
)

var verbose bool

var generateCmd = &cobra.Command{
	Use:   "generate [project-dir]",
	Short: "Generate documentation blobs for all source files in a project",
	Long: `Generate walks the configured source globs, pairs documentation
comments with their declarations, and writes one JSDoc-parseable blob per
source file into the destination directory. Files whose recorded checksum
still matches their source are skipped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Get project directory (default to current directory)
		projectDir := "."
		if len(args) > 0 {
			projectDir = args[0]
		}

		// Load configuration
		cfg, err := config.Load(projectDir)
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}

		// Set up logging
		setupLogging(cfg)

		// Ensure absolute path
		absDir, err := filepath.Abs(projectDir)
		if err != nil {
			log.Error("failed to get absolute path", slog.String("error", err.Error()))
			os.Exit(1)
		}

		// Set verbose flag in config
		cfg.Verbose = verbose

		generateApp := app.NewGenerateApp()
		summary, err := generateApp.Run(context.Background(), absDir, cfg)
		if err != nil {
			log.Error("generation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		color.New(color.FgGreen).Fprintf(os.Stderr, "brsdoc: %s\n", summary)
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed logs for all files")
	rootCmd.AddCommand(generateCmd)
}

func setupLogging(cfg *config.Config) {
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	if verbose {
		logLevel = "debug"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", logLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
