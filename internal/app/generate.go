package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rokudocs/brsdoc/internal/checksum"
	"github.com/rokudocs/brsdoc/internal/config"
	"github.com/rokudocs/brsdoc/internal/docgen"
	"github.com/rokudocs/brsdoc/internal/parser"
)

// GenerateApp handles the generate command logic
type GenerateApp struct {
	logger *slog.Logger
}

// NewGenerateApp creates a new generate app
func NewGenerateApp() *GenerateApp {
	return &GenerateApp{
		logger: slog.Default(),
	}
}

// Summary reports what one generation run did.
type Summary struct {
	Generated int
	Skipped   int
	Empty     int
}

func (s Summary) String() string {
	var parts []string
	if s.Generated > 0 {
		parts = append(parts, fmt.Sprintf("%d generated", s.Generated))
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d up-to-date", s.Skipped))
	}
	if s.Empty > 0 {
		parts = append(parts, fmt.Sprintf("%d without declarations", s.Empty))
	}
	if len(parts) == 0 {
		return "no source files found"
	}
	return strings.Join(parts, ", ")
}

// Run generates documentation blobs for every configured source file under
// projectDir. Files are independent of one another, so they are processed
// concurrently; each gets its own module name and render state.
func (a *GenerateApp) Run(ctx context.Context, projectDir string, cfg *config.Config) (*Summary, error) {
	files, err := a.collectFiles(projectDir, cfg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		a.logger.Info("no source files matched", slog.String("dir", projectDir))
		return &Summary{}, nil
	}

	if err := os.MkdirAll(cfg.Dest, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		mu      sync.Mutex
		summary Summary
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			result, err := a.processFile(ctx, i+1, len(files), file, cfg)
			if err != nil {
				return err
			}
			mu.Lock()
			switch result {
			case fileGenerated:
				summary.Generated++
			case fileSkipped:
				summary.Skipped++
			case fileEmpty:
				summary.Empty++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Info("generation complete", slog.String("summary", summary.String()))
	return &summary, nil
}

type fileResult int

const (
	fileGenerated fileResult = iota
	fileSkipped
	fileEmpty
)

func (a *GenerateApp) processFile(ctx context.Context, num, total int, filePath string, cfg *config.Config) (fileResult, error) {
	base := filepath.Base(filePath)

	sourceContent, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", base, err)
	}
	sum := checksum.Calculate(string(sourceContent))
	outPath := a.OutputPath(cfg.Dest, filePath)

	if existing, err := os.ReadFile(outPath); err == nil && checksum.FromBlob(string(existing)) == sum {
		a.logger.Debug("up-to-date", slog.String("file", base),
			slog.Int("fileIndex", num), slog.Int("totalFiles", total))
		return fileSkipped, nil
	}

	parsed, err := parser.Load(ctx, filePath, cfg.Parser)
	if err != nil {
		return 0, err
	}

	blob := docgen.Generate(base, parsed.Source, parsed.Stmts, docgen.Options{Markers: cfg.GetMarkers()})
	if blob == "" {
		a.logger.Debug("no documented declarations", slog.String("file", base))
		return fileEmpty, nil
	}

	content := checksum.Header(sum) + "\n\n" + blob
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	a.logger.Info(fmt.Sprintf("Generated: %s", filepath.Base(outPath)),
		slog.Int("fileIndex", num), slog.Int("totalFiles", total))
	return fileGenerated, nil
}

// OutputPath returns where the blob for one source file is written: the
// destination directory, base name with the source extension swapped for .js.
func (a *GenerateApp) OutputPath(dest, filePath string) string {
	base := filepath.Base(filePath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".js"
	return filepath.Join(dest, base)
}

func (a *GenerateApp) collectFiles(projectDir string, cfg *config.Config) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range cfg.Src {
		matches, err := filepath.Glob(filepath.Join(projectDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid src pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
