package reconcile

import "strings"

// Markers is the set of leading markers stripped from comment lines during
// normalization. Sigils are punctuation prefixes stripped repeatedly (the
// BrightScript apostrophe); Words are whole-word markers matched
// case-insensitively (REM). Runs of leading asterisks are always stripped.
type Markers struct {
	Sigils []string
	Words  []string
}

// DefaultMarkers covers the BrightScript comment conventions.
var DefaultMarkers = Markers{
	Sigils: []string{"'"},
	Words:  []string{"REM"},
}

// Normalize converts a raw comment into block-comment body lines. Each
// physical line is trimmed and stripped of leading markers; the first line
// additionally drops a block-comment opener and the last line a closer.
// A nil comment normalizes to an empty body.
func Normalize(text string, m Markers) []string {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for i, line := range raw {
		s := strings.TrimSpace(line)
		if i == 0 {
			if strings.HasPrefix(s, "/**") {
				s = s[len("/**"):]
			} else if strings.HasPrefix(s, "/*") {
				s = s[len("/*"):]
			}
		}
		if i == len(raw)-1 {
			s = strings.TrimSuffix(strings.TrimSpace(s), "*/")
		}
		lines = append(lines, stripMarkers(s, m))
	}
	// Blank edges carry no documentation.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func stripMarkers(line string, m Markers) string {
	s := strings.TrimSpace(line)
	for {
		stripped := false
		for _, sig := range m.Sigils {
			for sig != "" && strings.HasPrefix(s, sig) {
				s = s[len(sig):]
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}
	s = strings.TrimSpace(s)
	for _, w := range m.Words {
		if hasWordPrefix(s, w) {
			s = strings.TrimSpace(s[len(w):])
			break
		}
	}
	s = strings.TrimLeft(s, "*")
	return strings.TrimSpace(s)
}

func hasWordPrefix(s, word string) bool {
	if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return false
	}
	return len(s) == len(word) || s[len(word)] == ' ' || s[len(word)] == '\t'
}
