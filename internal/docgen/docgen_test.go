package docgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rokudocs/brsdoc/internal/syntax"
)

func TestModuleName(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		fileName string
		want     string
		explicit bool
	}{
		{
			name:     "derived from file name",
			source:   "function f()\nend function",
			fileName: "mathutils.bs",
			want:     "mathutils",
		},
		{
			name:     "dots become underscores",
			source:   "",
			fileName: "string.utils.bs",
			want:     "string_utils",
		},
		{
			name:     "explicit module tag",
			source:   "' @module geometry\nfunction f()\nend function",
			fileName: "mathutils.bs",
			want:     "geometry",
			explicit: true,
		},
		{
			name:     "module tag with asterisks is ignored",
			source:   "' @module bad*name",
			fileName: "fallback.bs",
			want:     "fallback",
		},
		{
			name:     "module tag needs an identifier",
			source:   "' @module\nfunction f()\nend function",
			fileName: "plain.bs",
			want:     "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, explicit := ModuleName(tt.source, tt.fileName)
			if got != tt.want || explicit != tt.explicit {
				t.Errorf("ModuleName() = (%q, %v), want (%q, %v)", got, explicit, tt.want, tt.explicit)
			}
		})
	}
}

// Mirrors a full documented-function scenario end to end.
func TestGenerateFunction(t *testing.T) {
	source := strings.Join([]string{
		"' @param {integer} x - the first number",
		"' @param {integer} y - the second number",
		"' @return {integer} the max of x and y",
		"function maxBrsStyle(x, y)",
		"  if x > y then return x",
		"  return y",
		"end function",
	}, "\n")

	stmts := []syntax.Stmt{
		&syntax.Comment{
			Range: syntax.Range{Start: syntax.Pos{Line: 1, Col: 1}, End: syntax.Pos{Line: 3, Col: 40}},
			Text:  "' @param {integer} x - the first number\n' @param {integer} y - the second number\n' @return {integer} the max of x and y",
		},
		&syntax.Function{
			Range: syntax.Range{Start: syntax.Pos{Line: 4, Col: 1}, End: syntax.Pos{Line: 7, Col: 13}},
			Name:  "maxBrsStyle",
			Params: []syntax.Param{
				{Name: "x", Type: "integer"},
				{Name: "y", Type: "integer"},
			},
			ReturnType: "integer",
		},
	}

	got := Generate("mathutils.bs", syntax.NewSource("mathutils.bs", source), stmts, Options{})
	want := `/**
 * @module mathutils
 */

/**
 * @param {integer} x - the first number
 * @param {integer} y - the second number
 * @return {integer} - the max of x and y
 * @memberof module:mathutils
 */
function maxBrsStyle(x, y) { };
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateExplicitModuleTagSuppressesHeader(t *testing.T) {
	source := "' @module geometry\nfunction area()\nend function"
	stmts := []syntax.Stmt{
		&syntax.Comment{
			Range: syntax.Range{Start: syntax.Pos{Line: 1, Col: 1}, End: syntax.Pos{Line: 1, Col: 19}},
			Text:  "' @module geometry",
		},
		&syntax.Function{
			Range: syntax.Range{Start: syntax.Pos{Line: 2, Col: 1}, End: syntax.Pos{Line: 3, Col: 13}},
			Name:  "area",
		},
	}

	got := Generate("shapes.bs", syntax.NewSource("shapes.bs", source), stmts, Options{})

	if strings.Contains(got, "/**\n * @module geometry\n */\n\n/**") {
		t.Errorf("synthetic module header should be suppressed:\n%s", got)
	}
	if !strings.Contains(got, "@memberof module:geometry") {
		t.Errorf("membership should use the explicit module name:\n%s", got)
	}
	// The author's module tag still reaches the output through passthrough.
	if !strings.Contains(got, "@module geometry") {
		t.Errorf("explicit module tag should pass through:\n%s", got)
	}
}

func TestGenerateEmptyFile(t *testing.T) {
	got := Generate("empty.bs", syntax.NewSource("empty.bs", "sub main()\nend sub"), nil, Options{})
	if got != "" {
		t.Errorf("files without documented declarations should produce an empty blob, got %q", got)
	}
}
