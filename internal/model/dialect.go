package model

import (
	"path/filepath"
	"strings"
)

// Dialect is the syntactic flavor of a source file. It selects which
// extraction heuristic applies.
type Dialect string

const (
	// DialectMarkup covers markup-embedded dialects: JSX, TSX, Vue SFCs,
	// HTML. User-facing text lives between tags and in known attributes.
	DialectMarkup Dialect = "markup"

	// DialectSource covers plain script dialects: JS, TS. User-facing text
	// lives in string literals passed to message-producing call patterns.
	DialectSource Dialect = "source"
)

// markupExts are extensions whose files carry embedded markup.
var markupExts = map[string]struct{}{
	".jsx":  {},
	".tsx":  {},
	".vue":  {},
	".html": {},
	".htm":  {},
}

// DialectForPath returns the dialect for a file path based on its
// extension. Anything not recognized as markup is treated as plain source.
func DialectForPath(path string) Dialect {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := markupExts[ext]; ok {
		return DialectMarkup
	}
	return DialectSource
}

// IsValid returns true if the dialect is recognized.
func (d Dialect) IsValid() bool {
	switch d {
	case DialectMarkup, DialectSource:
		return true
	default:
		return false
	}
}

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	return string(d)
}
