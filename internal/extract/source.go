package extract

import (
	"regexp"

	"github.com/HybridTalentComputing/i18nscan/internal/model"
)

// sourcePatterns find user-facing string literals in plain script dialects:
// quoted strings in known UI or message-producing positions, plus
// capitalized literals that read like display copy.
var sourcePatterns = []pattern{
	{regexp.MustCompile(`(?i)(?:button|btn)(?:Text|Label)?\s*[:=]\s*["']([^"']+)["']`), model.CategoryButtons},
	{regexp.MustCompile(`(?i)label\s*[:=]\s*["']([^"']+)["']`), model.CategoryLabels},
	{regexp.MustCompile(`(?i)placeholder\s*[:=]\s*["']([^"']+)["']`), model.CategoryPlaceholders},
	{regexp.MustCompile(`(?i)(?:title|alt|tooltip|aria[-_]?label)\s*[:=]\s*["']([^"']+)["']`), model.CategoryAttributes},
	// Toast/alert style calls and message-ish assignments, kept only when
	// the text carries a status keyword.
	{regexp.MustCompile(`(?i)(?:toast|alert|confirm|notify|snackbar)(?:\.\w+)?\s*\(\s*["']([^"']+)["']`), model.CategoryLiterals},
	{regexp.MustCompile(`(?i)(?:message|text|description)\s*[:=]\s*["']([^"']*(?:error|success|warning|info|confirm|saved|deleted|updated|login|logout)[^"']*)["']`), model.CategoryLiterals},
	// Validation copy anywhere in a quoted literal.
	{regexp.MustCompile(`(?i)["']([^"']*(?:required|invalid|must |cannot |please )[^"']*)["']`), model.CategoryLiterals},
	// Capitalized literals that look like UI copy.
	{regexp.MustCompile(`["']([A-Z][a-zA-Z\s]{2,})["']`), model.CategoryLiterals},
}

// sourceExtractor handles plain script dialects.
type sourceExtractor struct {
	opts Options
}

func (e *sourceExtractor) Dialect() model.Dialect {
	return model.DialectSource
}

func (e *sourceExtractor) Extract(path string, content []byte) *model.ExtractionResult {
	text, err := decode(content)
	if err != nil {
		result := model.NewExtractionResult(path)
		result.Err = err.Error()
		return result
	}
	return collect(path, text, sourcePatterns, e.opts)
}
