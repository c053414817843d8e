// Package locate pairs documentation comments with the declarations they
// document, by source-position adjacency.
package locate

import "github.com/rokudocs/brsdoc/internal/syntax"

// Documenting returns the comment that documents a declaration, or nil.
//
// A comment qualifies when its end line sits exactly one line above the
// declaration's effective start line, or on the declaration's own start line
// (trailing form). When annotations precede the declaration, the effective
// start is the first annotation's start line. The first qualifying comment
// in original order wins; later matches are ignored.
func Documenting(comments []*syntax.Comment, decl syntax.Range, annotations []syntax.Range) *syntax.Comment {
	effectiveStart := decl.Start.Line
	if len(annotations) > 0 {
		effectiveStart = annotations[0].Start.Line
	}
	for _, c := range comments {
		end := c.Range.End.Line
		if end == effectiveStart-1 || end == decl.Start.Line {
			return c
		}
	}
	return nil
}
