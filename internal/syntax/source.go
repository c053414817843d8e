package syntax

import "strings"

// Source holds one file's raw text, split by lines for range slicing.
type Source struct {
	Name  string
	Text  string
	lines []string
}

// NewSource wraps raw source text for slicing.
func NewSource(name, text string) *Source {
	return &Source{
		Name:  name,
		Text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// Slice returns the exact source text covered by r, following the package
// convention (1-based lines and columns, end-exclusive columns). Ranges that
// fall outside the source yield an empty string; the engine treats missing
// text as a default, never an error.
func (s *Source) Slice(r Range) string {
	if r.Start.Line < 1 || r.End.Line < r.Start.Line || r.End.Line > len(s.lines) {
		return ""
	}
	if r.Start.Line == r.End.Line {
		return sliceLine(s.lines[r.Start.Line-1], r.Start.Col, r.End.Col)
	}
	var b strings.Builder
	b.WriteString(sliceLine(s.lines[r.Start.Line-1], r.Start.Col, len(s.lines[r.Start.Line-1])+1))
	for line := r.Start.Line + 1; line < r.End.Line; line++ {
		b.WriteString("\n")
		b.WriteString(s.lines[line-1])
	}
	b.WriteString("\n")
	b.WriteString(sliceLine(s.lines[r.End.Line-1], 1, r.End.Col))
	return b.String()
}

func sliceLine(line string, startCol, endCol int) string {
	if startCol < 1 {
		startCol = 1
	}
	if endCol > len(line)+1 {
		endCol = len(line) + 1
	}
	if endCol <= startCol {
		return ""
	}
	return line[startCol-1 : endCol-1]
}
