// Package docgen runs the per-file documentation pipeline: module name
// resolution, reconciliation and rendering into one replacement text blob
// for the documentation generator.
package docgen

import (
	"path/filepath"
	"strings"

	"github.com/rokudocs/brsdoc/internal/reconcile"
	"github.com/rokudocs/brsdoc/internal/render"
	"github.com/rokudocs/brsdoc/internal/syntax"
)

// Options configures one generation pass.
type Options struct {
	// Markers are the comment markers stripped during normalization.
	// Zero value falls back to the BrightScript defaults.
	Markers reconcile.Markers
}

func (o Options) markers() reconcile.Markers {
	if len(o.Markers.Sigils) == 0 && len(o.Markers.Words) == 0 {
		return reconcile.DefaultMarkers
	}
	return o.Markers
}

// Generate produces the replacement blob for one file: an optional module
// doc block (only when the source carries no explicit module tag), then the
// per-declaration comment blocks and synthetic declarations in source order.
// Files contributing no documented declarations produce an empty blob.
func Generate(fileName string, source *syntax.Source, stmts []syntax.Stmt, opts Options) string {
	module, explicit := ModuleName(source.Text, fileName)

	rec := reconcile.New(source, opts.markers())
	body := render.New(rec, module).Scope(stmts, "")
	if body == "" {
		return ""
	}

	var b strings.Builder
	if !explicit {
		b.WriteString("/**\n * @module ")
		b.WriteString(module)
		b.WriteString("\n */\n\n")
	}
	b.WriteString(body)
	return b.String()
}

// ModuleName resolves a file's module name. An explicit '@module <name>' tag
// in the source wins; otherwise the file's base name is used with every
// literal dot replaced by an underscore.
func ModuleName(source, fileName string) (name string, explicit bool) {
	for _, line := range strings.Split(source, "\n") {
		idx := strings.Index(line, "@module")
		if idx < 0 {
			continue
		}
		rest := line[idx+len("@module"):]
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		if tok := fields[0]; !strings.Contains(tok, "*") {
			return tok, true
		}
	}
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(base, ".", "_"), false
}
