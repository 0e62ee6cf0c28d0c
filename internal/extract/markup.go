package extract

import (
	"regexp"

	"github.com/HybridTalentComputing/i18nscan/internal/model"
)

// markupPatterns find user-facing text in markup-embedded dialects
// (JSX, TSX, Vue, HTML): element bodies and known attributes.
var markupPatterns = []pattern{
	{regexp.MustCompile(`(?i)<button[^>]*>([^<]+)</button>`), model.CategoryButtons},
	{regexp.MustCompile(`(?i)<label[^>]*>([^<]+)</label>`), model.CategoryLabels},
	{regexp.MustCompile(`(?i)placeholder=["']([^"']+)["']`), model.CategoryPlaceholders},
	{regexp.MustCompile(`(?i)(?:title|alt|aria-label)=["']([^"']+)["']`), model.CategoryAttributes},
	// Generic text between tags; outranked by the element and attribute
	// patterns above when they capture the same span.
	{regexp.MustCompile(`>([^<{]+)<`), model.CategoryLiterals},
}

// markupExtractor handles markup-embedded dialects. Component files mix
// markup with script, so the plain-source patterns run here too.
type markupExtractor struct {
	opts Options
}

func (e *markupExtractor) Dialect() model.Dialect {
	return model.DialectMarkup
}

func (e *markupExtractor) Extract(path string, content []byte) *model.ExtractionResult {
	text, err := decode(content)
	if err != nil {
		result := model.NewExtractionResult(path)
		result.Err = err.Error()
		return result
	}

	patterns := make([]pattern, 0, len(markupPatterns)+len(sourcePatterns))
	patterns = append(patterns, markupPatterns...)
	patterns = append(patterns, sourcePatterns...)
	return collect(path, text, patterns, e.opts)
}
