// Package extract pulls candidate user-facing strings out of source file
// contents. Extraction is heuristic and lexical: precompiled patterns per
// dialect, not a grammar parse. Extractors are pure functions of content;
// they never touch the filesystem.
package extract

import (
	"regexp"
	"sort"

	"github.com/HybridTalentComputing/i18nscan/internal/model"
)

// DefaultMinAlphaChars is the minimum number of letters a candidate must
// contain before it is considered user-facing text rather than a technical
// identifier.
const DefaultMinAlphaChars = 3

// Options tunes the shared exclusion policy.
type Options struct {
	// MinAlphaChars overrides DefaultMinAlphaChars when > 0.
	MinAlphaChars int
}

func (o Options) minAlpha() int {
	if o.MinAlphaChars > 0 {
		return o.MinAlphaChars
	}
	return DefaultMinAlphaChars
}

// Extractor produces an ExtractionResult from one file's contents.
type Extractor interface {
	// Dialect reports which syntactic flavor this extractor handles.
	Dialect() model.Dialect

	// Extract classifies the user-facing strings in content. It never
	// fails the run: undecodable content yields a result with zero
	// strings and the Err field set.
	Extract(path string, content []byte) *model.ExtractionResult
}

// ForDialect returns the extractor for a dialect.
func ForDialect(d model.Dialect, opts Options) Extractor {
	switch d {
	case model.DialectMarkup:
		return &markupExtractor{opts: opts}
	default:
		return &sourceExtractor{opts: opts}
	}
}

// ForPath returns the extractor for a file path based on its extension.
func ForPath(path string, opts Options) Extractor {
	return ForDialect(model.DialectForPath(path), opts)
}

// pattern couples a compiled regex with the category its captures receive.
// Group 1 must capture the candidate text.
type pattern struct {
	re       *regexp.Regexp
	category model.Category
}

// candidate is one raw match before exclusion filtering and dedup.
type candidate struct {
	text   string
	cat    model.Category
	offset int
}

// precedence maps each category to its rank; lower wins. Attribute-position
// matches outrank generic literal matches.
var precedence = func() map[model.Category]int {
	p := make(map[model.Category]int)
	for i, c := range model.AllCategories() {
		p[c] = i
	}
	return p
}()

// collect runs the patterns over text and resolves overlaps: when two
// patterns capture the same span, the higher-precedence category claims it.
// Surviving candidates come back in file order, deduplicated by text, so
// the result's string order is the discovery order.
func collect(path, text string, patterns []pattern, opts Options) *model.ExtractionResult {
	best := make(map[int]candidate)

	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[2], m[3]
			if start < 0 || end <= start {
				continue
			}
			raw := text[start:end]
			clean, ok := normalize(raw, opts)
			if !ok {
				continue
			}
			c := candidate{text: clean, cat: p.category, offset: start}
			if prev, seen := best[start]; !seen || precedence[c.cat] < precedence[prev.cat] {
				best[start] = c
			}
		}
	}

	ordered := make([]candidate, 0, len(best))
	for _, c := range best {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].offset < ordered[j].offset })

	lines := newLineIndex(text)
	result := model.NewExtractionResult(path)
	seen := make(map[string]struct{}, len(ordered))
	for _, c := range ordered {
		if _, dup := seen[c.text]; dup {
			continue
		}
		seen[c.text] = struct{}{}
		result.Add(c.text, c.cat, lines.lineAt(c.offset))
	}
	return result
}
