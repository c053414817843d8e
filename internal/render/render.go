// Package render walks classified statements recursively and emits the
// synthetic JavaScript declarations the documentation generator parses.
package render

import (
	"strings"

	"github.com/rokudocs/brsdoc/internal/classify"
	"github.com/rokudocs/brsdoc/internal/locate"
	"github.com/rokudocs/brsdoc/internal/reconcile"
	"github.com/rokudocs/brsdoc/internal/syntax"
)

// Renderer produces synthetic declarations for one file. The created set
// tracks which namespace containers have already been declared so revisiting
// a namespace path never declares it twice. It is scoped to one file and
// discarded afterwards.
type Renderer struct {
	rec     *reconcile.Reconciler
	module  string
	created map[string]bool
}

// New returns a renderer for one file.
func New(rec *reconcile.Reconciler, module string) *Renderer {
	return &Renderer{
		rec:     rec,
		module:  module,
		created: make(map[string]bool),
	}
}

// Scope renders one scope's statements in source order, recursing into
// namespaces. namespace is the fully-qualified enclosing namespace, empty at
// module level. A scope contributing nothing renders to an empty string.
func (r *Renderer) Scope(stmts []syntax.Stmt, namespace string) string {
	g := classify.Partition(stmts)
	var chunks []string
	for _, s := range stmts {
		var chunk string
		switch s := s.(type) {
		case *syntax.Function:
			chunk = r.function(g.Comments, s, namespace)
		case *syntax.Class:
			chunk = r.class(g.Comments, s, namespace)
		case *syntax.Namespace:
			chunk = r.namespace(s, namespace)
		}
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return strings.Join(chunks, "\n")
}

func (r *Renderer) function(comments []*syntax.Comment, fn *syntax.Function, namespace string) string {
	doc := locate.Documenting(comments, fn.Range, fn.Annotations)
	ts := r.rec.Callable(doc, fn, reconcile.Scope{Module: r.module, Namespace: namespace})

	var b strings.Builder
	b.WriteString(block(ts))
	b.WriteString("function ")
	b.WriteString(fn.Name)
	b.WriteString("(")
	b.WriteString(paramList(fn.Params))
	b.WriteString(") { };\n")
	if namespace != "" {
		b.WriteString(namespace)
		b.WriteString(".")
		b.WriteString(fn.Name)
		b.WriteString(" = ")
		b.WriteString(fn.Name)
		b.WriteString(";\n")
	}
	return b.String()
}

func (r *Renderer) class(comments []*syntax.Comment, cls *syntax.Class, namespace string) string {
	doc := locate.Documenting(comments, cls.Range, nil)
	body := classify.Partition(cls.Body)

	var fields []reconcile.FieldDoc
	for _, f := range classify.Fields(cls.Body) {
		fields = append(fields, reconcile.FieldDoc{
			Field:   f,
			Comment: locate.Documenting(body.Comments, f.Range, nil),
		})
	}
	ts := r.rec.Class(doc, cls, fields, reconcile.Scope{Module: r.module, Namespace: namespace})

	var b strings.Builder
	b.WriteString(block(ts))
	b.WriteString("class ")
	b.WriteString(cls.Name)
	if cls.Parent != "" {
		b.WriteString(" extends ")
		b.WriteString(cls.Parent)
	}
	b.WriteString(" {\n")
	for _, s := range cls.Body {
		m, ok := s.(*syntax.Function)
		if !ok {
			continue
		}
		b.WriteString(indent(r.method(body.Comments, m), "  "))
	}
	b.WriteString("}\n")
	if namespace != "" {
		b.WriteString(namespace)
		b.WriteString(".")
		b.WriteString(cls.Name)
		b.WriteString(" = ")
		b.WriteString(cls.Name)
		b.WriteString(";\n")
	}
	return b.String()
}

// method renders one class method. Methods named like the constructor are
// spelled with the generator's constructor keyword instead of their name.
func (r *Renderer) method(comments []*syntax.Comment, fn *syntax.Function) string {
	doc := locate.Documenting(comments, fn.Range, fn.Annotations)
	ts := r.rec.Callable(doc, fn, reconcile.Scope{})

	name := fn.Name
	if strings.EqualFold(name, reconcile.ConstructorName) {
		name = "constructor"
	}
	var b strings.Builder
	b.WriteString(block(ts))
	b.WriteString(name)
	b.WriteString("(")
	b.WriteString(paramList(fn.Params))
	b.WriteString(") { };\n")
	return b.String()
}

func (r *Renderer) namespace(ns *syntax.Namespace, parent string) string {
	// Vacuous namespaces declare no container at all.
	if !containsRenderable(ns.Body) {
		return ""
	}
	fq := ns.Name
	if parent != "" {
		fq = parent + "." + ns.Name
	}
	created := r.ensureCreated(fq)
	body := r.Scope(ns.Body, fq)
	if created == "" || body == "" {
		return created + body
	}
	return created + "\n" + body
}

// containsRenderable reports whether a namespace body will contribute any
// declaration, directly or through nested namespaces.
func containsRenderable(stmts []syntax.Stmt) bool {
	for _, s := range stmts {
		switch s := s.(type) {
		case *syntax.Function, *syntax.Class:
			return true
		case *syntax.Namespace:
			if containsRenderable(s.Body) {
				return true
			}
		}
	}
	return false
}

// ensureCreated emits container declarations for every segment of the
// namespace path that has not been declared yet in this file, outermost
// first. Root segments become variables, nested ones property assignments.
func (r *Renderer) ensureCreated(fq string) string {
	parts := strings.Split(fq, ".")
	var b strings.Builder
	for i := range parts {
		path := strings.Join(parts[:i+1], ".")
		if r.created[path] {
			continue
		}
		r.created[path] = true
		b.WriteString("/**\n * @namespace ")
		b.WriteString(path)
		b.WriteString("\n */\n")
		if i == 0 {
			b.WriteString("var ")
			b.WriteString(parts[0])
			b.WriteString(" = {};\n")
		} else {
			b.WriteString(path)
			b.WriteString(" = {};\n")
		}
	}
	return b.String()
}

func paramList(params []syntax.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// block renders a tag set as a JSDoc block comment.
func block(ts *reconcile.TagSet) string {
	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range ts.Lines() {
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" */\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
