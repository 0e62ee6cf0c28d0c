package extract

import (
	"sort"
	"strings"
	"unicode"
)

// normalize trims a raw capture and applies the exclusion policy. It
// returns false for candidates that are empty, pure whitespace, pure
// punctuation, or below the minimum letter threshold; those are assumed to
// be technical identifiers rather than user-facing text.
func normalize(raw string, opts Options) (string, bool) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return "", false
	}

	letters := 0
	for _, r := range clean {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < opts.minAlpha() {
		return "", false
	}

	// Template expressions and interpolation markers are code, not copy.
	if strings.ContainsAny(clean, "{}<>") {
		return "", false
	}

	return clean, true
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

// lineAt returns the 1-based line containing the given byte offset.
func (l *lineIndex) lineAt(offset int) int {
	return sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	})
}
