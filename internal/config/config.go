package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"github.com/rokudocs/brsdoc/internal/reconcile"
)

// Config represents the complete configuration for brsdoc
type Config struct {
	// Required fields
	Dest string `toml:"dest"`

	// Optional fields
	Src      []string `toml:"src"`             // source glob patterns, relative to the project dir
	Parser   []string `toml:"parser"`          // external parser command; empty means sibling .ast.json files
	Markers  []string `toml:"comment_markers"` // leading comment markers stripped during normalization
	LogLevel string   `toml:"log_level"`
	Jobs     int      `toml:"jobs"`
	Verbose  bool     `toml:"verbose"` // CLI flag, not from config file
}

// Load loads configuration from brsdoc.toml
func Load(targetPath string) (*Config, error) {
	// Find config file starting from target directory
	configPath, err := findConfigFile(targetPath)
	if err != nil {
		return nil, err
	}

	// Read and parse config file
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse TOML
	var cfg Config
	if _, err := toml.Decode(string(configData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Normalize paths
	cfg.Dest = normalizePath(cfg.Dest, filepath.Dir(configPath))

	return &cfg, nil
}

// findConfigFile searches for brsdoc.toml starting from the given path
func findConfigFile(startPath string) (string, error) {
	// Convert to absolute path
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	// Search upward for brsdoc.toml
	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, "brsdoc.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Move to parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("brsdoc.toml not found. Create one with:\n\ndest = \"./docs-src\"\nsrc = [\"*.bs\", \"*.brs\"]\nparser = [\"bsc\", \"--emit-ast\"]")
}

func (c *Config) applyDefaults() {
	if len(c.Src) == 0 {
		c.Src = []string{"*.bs", "*.brs"}
	}
	if c.Jobs <= 0 {
		c.Jobs = 4
	}
}

// validate checks that all required fields are set
func (c *Config) validate() error {
	var errors []string

	if c.Dest == "" {
		errors = append(errors, "dest is required")
	}
	for _, pattern := range c.Src {
		if _, err := filepath.Match(pattern, ""); err != nil {
			errors = append(errors, fmt.Sprintf("invalid src pattern %q", pattern))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}

	return nil
}

// normalizePath converts relative paths to absolute paths based on config file location
func normalizePath(path, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}

// GetMarkers returns the comment markers as the reconciler consumes them.
// Word markers (all letters, e.g. REM) are matched case-insensitively as
// whole words; anything else is a sigil stripped from the line start.
func (c *Config) GetMarkers() reconcile.Markers {
	if len(c.Markers) == 0 {
		return reconcile.DefaultMarkers
	}
	var m reconcile.Markers
	for _, marker := range c.Markers {
		if isWordMarker(marker) {
			m.Words = append(m.Words, marker)
		} else {
			m.Sigils = append(m.Sigils, marker)
		}
	}
	return m
}

func isWordMarker(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
