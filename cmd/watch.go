package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rokudocs/brsdoc/internal/app"
	"github.com/rokudocs/brsdoc/internal/config"
	"github.com/rokudocs/brsdoc/internal/interactive"
	"github.com/rokudocs/brsdoc/internal/log"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a source file and re-render its documentation on save",
	Long: `Watch monitors one BrighterScript source file and regenerates its
documentation blob whenever the file is saved, showing a live preview.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]

		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file %s does not exist\n", filePath)
			os.Exit(1)
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve path: %v\n", err)
			os.Exit(1)
		}

		if err := runInteractiveMode(absPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runInteractiveMode(filePath string) error {
	cfg, err := config.Load(filePath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := os.MkdirAll(cfg.Dest, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Route logs into the TUI instead of the terminal
	logs, callback := interactive.NewLogBuffer()
	slog.SetDefault(slog.New(log.NewCallbackHandler(callback, log.GetCurrentLevel())))

	outPath := app.NewGenerateApp().OutputPath(cfg.Dest, filePath)
	m := interactive.NewModel(filePath, outPath, cfg, logs)

	p := tea.NewProgram(m, tea.WithAltScreen())

	watcher, err := interactive.NewFileWatcher(filePath, func() {
		p.Send(interactive.FileChanged())
	})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// Trigger initial render
	p.Send(interactive.FileChanged())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}

	return nil
}
