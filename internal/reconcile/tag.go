package reconcile

import "strings"

// Tag is one scanned documentation tag line. Only the clauses the
// reconciler consumes are structured; everything after the type clause is
// kept in Rest so unmatched lines can pass through verbatim.
type Tag struct {
	// Name is the tag name without the leading '@', lower-cased.
	Name string
	// Type is the contents of the brace-delimited type clause, verbatim.
	Type    string
	HasType bool
	// Rest is everything after the type clause, trimmed.
	Rest string
}

// ParseTag scans a normalized comment line for a leading documentation tag.
// The grammar is deliberately small: '@' name, optional '{type}' with nested
// braces, then free text. Lines not starting with a tag are not tags.
func ParseTag(line string) (Tag, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "@") {
		return Tag{}, false
	}
	s = s[1:]
	end := 0
	for end < len(s) && isTagNameChar(s[end]) {
		end++
	}
	if end == 0 {
		return Tag{}, false
	}
	t := Tag{Name: strings.ToLower(s[:end])}
	s = strings.TrimSpace(s[end:])
	if strings.HasPrefix(s, "{") {
		if inner, rest, ok := scanBraces(s); ok {
			t.Type = strings.TrimSpace(inner)
			t.HasType = true
			s = strings.TrimSpace(rest)
		}
	}
	t.Rest = s
	return t, true
}

// Ident splits the tag's first clause into a parameter name and trailing
// description, supporting the bracketed-optional spelling '[name]' and
// '[name=default]'.
func (t Tag) Ident() (name string, bracketed bool, desc string) {
	s := strings.TrimSpace(t.Rest)
	if strings.HasPrefix(s, "[") {
		if inner, rest, ok := scanBrackets(s); ok {
			if eq := strings.IndexByte(inner, '='); eq >= 0 {
				inner = inner[:eq]
			}
			return strings.TrimSpace(inner), true, strings.TrimSpace(rest)
		}
	}
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], false, strings.TrimSpace(s[i:])
	}
	return s, false, ""
}

func isTagNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func scanBraces(s string) (inner, rest string, ok bool) {
	return scanDelimited(s, '{', '}')
}

func scanBrackets(s string) (inner, rest string, ok bool) {
	return scanDelimited(s, '[', ']')
}

// scanDelimited scans a balanced open..close group starting at s[0],
// tolerating nesting (generic type expressions, nested defaults).
func scanDelimited(s string, opening, closing byte) (inner, rest string, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], true
			}
		}
	}
	return "", s, false
}
