// Package parser obtains statement trees from the external language parser.
// brsdoc never parses BrighterScript itself; the parser collaborator emits a
// JSON statement tree which this package decodes into syntax statements.
package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rokudocs/brsdoc/internal/syntax"
)

// File contains one source file and its parsed statement tree.
type File struct {
	Path   string
	Source *syntax.Source
	Stmts  []syntax.Stmt
}

// Load reads a source file and obtains its statement tree. When parserCmd is
// set, the command is executed with the file path appended and the tree is
// read from its stdout; otherwise a sibling '<file>.ast.json' produced by a
// prior parser run is expected. Parser failures are hard errors, propagated
// unmodified; brsdoc makes no attempt at partial output for unparsable files.
func Load(ctx context.Context, filePath string, parserCmd []string) (*File, error) {
	sourceContent, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	treeData, err := loadTree(ctx, filePath, parserCmd)
	if err != nil {
		return nil, err
	}

	stmts, err := syntax.Decode(treeData)
	if err != nil {
		return nil, fmt.Errorf("parser output for %s: %w", filepath.Base(filePath), err)
	}

	return &File{
		Path:   filePath,
		Source: syntax.NewSource(filepath.Base(filePath), string(sourceContent)),
		Stmts:  stmts,
	}, nil
}

func loadTree(ctx context.Context, filePath string, parserCmd []string) ([]byte, error) {
	if len(parserCmd) > 0 {
		args := append(append([]string{}, parserCmd[1:]...), filePath)
		cmd := exec.CommandContext(ctx, parserCmd[0], args...)
		out, err := cmd.Output()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
				return nil, fmt.Errorf("parser failed for %s: %w: %s", filepath.Base(filePath), err, exitErr.Stderr)
			}
			return nil, fmt.Errorf("parser failed for %s: %w", filepath.Base(filePath), err)
		}
		return out, nil
	}

	treePath := filePath + ".ast.json"
	data, err := os.ReadFile(treePath)
	if err != nil {
		return nil, fmt.Errorf("no parser configured and no statement tree at %s: %w", treePath, err)
	}
	return data, nil
}
