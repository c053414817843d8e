// Package reconcile merges author-written documentation tags with the
// structural facts of a declaration into one normalized, ordered tag set.
package reconcile

import (
	"strings"

	"github.com/rokudocs/brsdoc/internal/syntax"
)

// ConstructorName is the method name that marks a class constructor.
const ConstructorName = "new"

// TagSet is the ordered tag lines reconciled for one declaration. It is
// built fresh per declaration and never mutated after being returned.
type TagSet struct {
	lines []string
}

func (ts *TagSet) add(line string) {
	ts.lines = append(ts.lines, line)
}

// Lines returns the tag lines in insertion order.
func (ts *TagSet) Lines() []string { return ts.lines }

// Empty reports whether no tag lines were produced.
func (ts *TagSet) Empty() bool { return len(ts.lines) == 0 }

// Scope names the containers a declaration belongs to.
type Scope struct {
	// Module is the file's module name.
	Module string
	// Namespace is the innermost enclosing namespace, fully qualified;
	// empty for module-level declarations.
	Namespace string
}

func (s Scope) memberOf() string {
	if s.Namespace != "" {
		return "@memberof " + s.Namespace
	}
	if s.Module != "" {
		return "@memberof module:" + s.Module
	}
	return ""
}

// FieldDoc pairs a class field with its located comment, if any.
type FieldDoc struct {
	Field   *syntax.Field
	Comment *syntax.Comment
}

// Reconciler merges comments against structural facts for one file.
type Reconciler struct {
	markers Markers
	source  *syntax.Source
}

// New returns a reconciler for one file's source text.
func New(source *syntax.Source, markers Markers) *Reconciler {
	return &Reconciler{markers: markers, source: source}
}

// poolLine is one normalized comment line with its consumption state. Each
// line is consumed by at most one reconciliation step; leftovers pass
// through verbatim.
type poolLine struct {
	text     string
	tag      Tag
	isTag    bool
	consumed bool
}

func (r *Reconciler) pool(c *syntax.Comment) []*poolLine {
	var text string
	if c != nil {
		text = c.Text
	}
	var pool []*poolLine
	for _, line := range Normalize(text, r.markers) {
		pl := &poolLine{text: line}
		pl.tag, pl.isTag = ParseTag(line)
		pool = append(pool, pl)
	}
	return pool
}

// Callable reconciles a function or method. The comment may be nil. The
// result always contains one parameter tag per structural parameter, in
// declaration order, and exactly one return tag.
func (r *Reconciler) Callable(c *syntax.Comment, fn *syntax.Function, scope Scope) *TagSet {
	pool := r.pool(c)

	var synth []string
	for i := range fn.Params {
		synth = append(synth, r.paramTag(pool, &fn.Params[i]))
	}
	synth = append(synth, returnTag(pool, fn.ReturnType))
	if strings.EqualFold(fn.Name, ConstructorName) {
		synth = append(synth, "@constructor")
	}
	if isPrivate(fn.Name, fn.Visibility) {
		synth = append(synth, "@private")
	}
	if fn.Overrides {
		synth = append(synth, "@override")
	}
	if m := scope.memberOf(); m != "" {
		synth = append(synth, m)
	}
	return assemble(pool, synth)
}

// Class reconciles a class declaration: passthrough comment lines, one
// property tag per non-private field, then the synthetic inheritance and
// membership tags. Manual inheritance tags are stripped; the structural
// parent always wins.
func (r *Reconciler) Class(c *syntax.Comment, cls *syntax.Class, fields []FieldDoc, scope Scope) *TagSet {
	pool := r.pool(c)
	for _, pl := range pool {
		if pl.isTag && (pl.tag.Name == "extends" || pl.tag.Name == "augments") {
			pl.consumed = true
		}
	}

	var synth []string
	for _, fd := range fields {
		if isPrivate(fd.Field.Name, fd.Field.Visibility) {
			continue
		}
		synth = append(synth, r.propertyTag(fd))
	}
	if cls.Parent != "" {
		synth = append(synth, "@extends "+cls.Parent)
	}
	if strings.HasPrefix(cls.Name, "_") {
		synth = append(synth, "@private")
	}
	if m := scope.memberOf(); m != "" {
		synth = append(synth, m)
	}
	return assemble(pool, synth)
}

func assemble(pool []*poolLine, synth []string) *TagSet {
	ts := &TagSet{}
	for _, pl := range pool {
		if !pl.consumed {
			ts.add(pl.text)
		}
	}
	for _, line := range synth {
		ts.add(line)
	}
	return ts
}

// paramTag renders the tag for one structural parameter, consuming a
// matching comment line when one names this exact parameter. The comment's
// explicit type wins over the structural one; a missing line falls back to
// the structural type with an empty description.
func (r *Reconciler) paramTag(pool []*poolLine, p *syntax.Param) string {
	typ := syntax.TypeName(p.Type)
	desc := ""
	for _, pl := range pool {
		if pl.consumed || !pl.isTag || pl.tag.Name != "param" {
			continue
		}
		name, _, d := pl.tag.Ident()
		if !strings.EqualFold(name, p.Name) {
			continue
		}
		pl.consumed = true
		if pl.tag.HasType {
			typ = pl.tag.Type
		}
		desc = d
		break
	}

	var b strings.Builder
	b.WriteString("@param {")
	b.WriteString(typ)
	b.WriteString("} ")
	if p.Default != nil {
		b.WriteString("[")
		b.WriteString(p.Name)
		b.WriteString("=")
		b.WriteString(r.source.Slice(*p.Default))
		b.WriteString("]")
	} else {
		b.WriteString(p.Name)
	}
	b.WriteString(dashDesc(desc))
	return b.String()
}

// returnTag renders the single return tag, consuming at most one return
// line from the pool. The comment's type spelling is kept verbatim when
// given, which preserves author casing even when it matches the structural
// type case-insensitively.
func returnTag(pool []*poolLine, structural string) string {
	typ := syntax.TypeName(structural)
	desc := ""
	for _, pl := range pool {
		if pl.consumed || !pl.isTag {
			continue
		}
		if pl.tag.Name != "return" && pl.tag.Name != "returns" {
			continue
		}
		pl.consumed = true
		if pl.tag.HasType {
			typ = pl.tag.Type
		}
		desc = pl.tag.Rest
		break
	}
	return "@return {" + typ + "}" + dashDesc(desc)
}

func (r *Reconciler) propertyTag(fd FieldDoc) string {
	typ := syntax.TypeName(fd.Field.Type)
	desc := ""
	if fd.Comment != nil {
		desc = strings.Join(Normalize(fd.Comment.Text, r.markers), " ")
	}
	return "@property {" + typ + "} " + fd.Field.Name + dashDesc(desc)
}

// isPrivate reports whether either independent signal marks the declaration
// private: a leading underscore in the name or an explicit private fact.
func isPrivate(name string, v syntax.Visibility) bool {
	return strings.HasPrefix(name, "_") || v == syntax.Private
}

// dashDesc attaches a description with the leading dash normalized: a
// description already starting with '-' is kept, a leading ',' is stripped,
// anything else gains a '- ' prefix. Empty descriptions render nothing.
func dashDesc(desc string) string {
	d := strings.TrimSpace(desc)
	switch {
	case d == "":
		return ""
	case strings.HasPrefix(d, "-"):
		return " " + d
	case strings.HasPrefix(d, ","):
		return " - " + strings.TrimSpace(d[1:])
	default:
		return " - " + d
	}
}
