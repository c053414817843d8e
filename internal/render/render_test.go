package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rokudocs/brsdoc/internal/reconcile"
	"github.com/rokudocs/brsdoc/internal/syntax"
)

func newRenderer(module string) *Renderer {
	rec := reconcile.New(syntax.NewSource("test.bs", ""), reconcile.DefaultMarkers)
	return New(rec, module)
}

func span(startLine, endLine int) syntax.Range {
	return syntax.Range{
		Start: syntax.Pos{Line: startLine, Col: 1},
		End:   syntax.Pos{Line: endLine, Col: 1},
	}
}

func TestScopeFunction(t *testing.T) {
	stmts := []syntax.Stmt{
		&syntax.Comment{Range: span(1, 2), Text: "' Greets someone\n' @param {string} name - who to greet"},
		&syntax.Function{
			Range:  span(3, 5),
			Name:   "greet",
			Params: []syntax.Param{{Name: "name", Type: "string"}},
		},
	}

	got := newRenderer("app").Scope(stmts, "")
	want := `/**
 * Greets someone
 * @param {string} name - who to greet
 * @return {dynamic}
 * @memberof module:app
 */
function greet(name) { };
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scope() mismatch (-want +got):\n%s", diff)
	}
}

func TestScopeClassWithConstructor(t *testing.T) {
	cls := &syntax.Class{
		Range:  span(1, 10),
		Name:   "Stack",
		Parent: "Collection",
		Body: []syntax.Stmt{
			&syntax.Field{Range: span(2, 2), Name: "items", Type: "roArray"},
			&syntax.Function{Range: span(4, 6), Name: "new"},
			&syntax.Function{Range: span(7, 9), Name: "push",
				Params: []syntax.Param{{Name: "item"}}},
		},
	}

	got := newRenderer("app").Scope([]syntax.Stmt{cls}, "")

	if !strings.Contains(got, "class Stack extends Collection {") {
		t.Errorf("missing class header:\n%s", got)
	}
	if !strings.Contains(got, "constructor() { };") {
		t.Errorf("method named new should render as constructor:\n%s", got)
	}
	if strings.Contains(got, "new() { };") {
		t.Errorf("constructor must not render under its source name:\n%s", got)
	}
	if !strings.Contains(got, "@constructor") {
		t.Errorf("missing constructor marker tag:\n%s", got)
	}
	if !strings.Contains(got, "@property {roArray} items") {
		t.Errorf("missing property tag:\n%s", got)
	}
	if !strings.Contains(got, "  push(item) { };") {
		t.Errorf("methods should render indented inside the class body:\n%s", got)
	}
}

func TestScopeNamespace(t *testing.T) {
	ns := &syntax.Namespace{
		Range: span(1, 10),
		Name:  "util",
		Body: []syntax.Stmt{
			&syntax.Function{Range: span(2, 4), Name: "trim",
				Params: []syntax.Param{{Name: "s", Type: "string"}}},
		},
	}

	got := newRenderer("app").Scope([]syntax.Stmt{ns}, "")

	if !strings.Contains(got, "* @namespace util") {
		t.Errorf("missing namespace tag:\n%s", got)
	}
	if !strings.Contains(got, "var util = {};") {
		t.Errorf("missing container creation:\n%s", got)
	}
	if !strings.Contains(got, "@memberof util") {
		t.Errorf("namespace member should reference the namespace:\n%s", got)
	}
	if !strings.Contains(got, "util.trim = trim;") {
		t.Errorf("missing qualifying assignment:\n%s", got)
	}
}

func TestScopeNamespaceCreatedOnce(t *testing.T) {
	first := &syntax.Namespace{
		Range: span(1, 5),
		Name:  "util",
		Body:  []syntax.Stmt{&syntax.Function{Range: span(2, 3), Name: "a"}},
	}
	second := &syntax.Namespace{
		Range: span(6, 10),
		Name:  "util",
		Body:  []syntax.Stmt{&syntax.Function{Range: span(7, 8), Name: "b"}},
	}

	got := newRenderer("app").Scope([]syntax.Stmt{first, second}, "")

	if n := strings.Count(got, "var util = {};"); n != 1 {
		t.Errorf("namespace created %d times, want 1:\n%s", n, got)
	}
	if !strings.Contains(got, "util.a = a;") || !strings.Contains(got, "util.b = b;") {
		t.Errorf("both members should be assigned:\n%s", got)
	}
}

func TestScopeNestedNamespace(t *testing.T) {
	ns := &syntax.Namespace{
		Range: span(1, 10),
		Name:  "app",
		Body: []syntax.Stmt{
			&syntax.Namespace{
				Range: span(2, 8),
				Name:  "views",
				Body:  []syntax.Stmt{&syntax.Function{Range: span(3, 4), Name: "mount"}},
			},
		},
	}

	got := newRenderer("m").Scope([]syntax.Stmt{ns}, "")

	if !strings.Contains(got, "var app = {};") {
		t.Errorf("missing root container:\n%s", got)
	}
	if !strings.Contains(got, "app.views = {};") {
		t.Errorf("missing nested container assignment:\n%s", got)
	}
	if !strings.Contains(got, "@memberof app.views") {
		t.Errorf("member should reference the qualified namespace:\n%s", got)
	}
	if !strings.Contains(got, "app.views.mount = mount;") {
		t.Errorf("missing qualified assignment:\n%s", got)
	}
}

func TestScopeDottedNamespaceName(t *testing.T) {
	ns := &syntax.Namespace{
		Range: span(1, 5),
		Name:  "acme.net",
		Body:  []syntax.Stmt{&syntax.Function{Range: span(2, 3), Name: "get"}},
	}

	got := newRenderer("m").Scope([]syntax.Stmt{ns}, "")

	if !strings.Contains(got, "var acme = {};") {
		t.Errorf("dotted name should create the root segment:\n%s", got)
	}
	if !strings.Contains(got, "acme.net = {};") {
		t.Errorf("dotted name should create the nested segment:\n%s", got)
	}
}

func TestScopeEmpty(t *testing.T) {
	r := newRenderer("app")
	if got := r.Scope(nil, ""); got != "" {
		t.Errorf("empty scope should render nothing, got %q", got)
	}

	// Unknown-only scopes render nothing either.
	stmts := []syntax.Stmt{&syntax.Unknown{Range: span(1, 1), Kind: "import"}}
	if got := r.Scope(stmts, ""); got != "" {
		t.Errorf("scope of ignored statements should render nothing, got %q", got)
	}

	// A namespace with an empty body is a vacuous container; nothing is
	// declared for it.
	ns := &syntax.Namespace{Range: span(1, 2), Name: "empty"}
	if got := r.Scope([]syntax.Stmt{ns}, ""); got != "" {
		t.Errorf("vacuous namespace should render nothing, got:\n%s", got)
	}
}
