package model

import "time"

// FileEntry identifies one candidate file discovered during a scan.
// It is immutable once its content hash has been computed.
type FileEntry struct {
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	ModifiedTime time.Time `json:"modified_time"`
	ContentHash  string    `json:"content_hash"`
}

// ExtractedString is one candidate user-facing string found in a file.
type ExtractedString struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	LineHint int      `json:"line_hint"`
}

// ExtractionResult holds everything extracted from a single file.
// Strings keep their discovery order.
type ExtractionResult struct {
	Path            string           `json:"path"`
	StringCount     int              `json:"string_count"`
	NeedsExtraction bool             `json:"needs_extraction"`
	CategoryCounts  map[Category]int `json:"category_counts,omitempty"`
	Strings         []ExtractedString `json:"strings,omitempty"`

	// Err records a per-file failure (unreadable content, decode error).
	// Errored files contribute zero strings but stay in the report.
	Err string `json:"error,omitempty"`
}

// NewExtractionResult returns an empty result for the given path.
func NewExtractionResult(path string) *ExtractionResult {
	return &ExtractionResult{
		Path:           path,
		CategoryCounts: make(map[Category]int),
	}
}

// Add appends a string in discovery order and updates the counts.
func (r *ExtractionResult) Add(text string, category Category, lineHint int) {
	if r.CategoryCounts == nil {
		r.CategoryCounts = make(map[Category]int)
	}
	r.Strings = append(r.Strings, ExtractedString{
		Text:     text,
		Category: category,
		LineHint: lineHint,
	})
	r.CategoryCounts[category]++
	r.StringCount++
}

// Equal reports whether two results are structurally identical.
func (r *ExtractionResult) Equal(other *ExtractionResult) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Path != other.Path ||
		r.StringCount != other.StringCount ||
		r.NeedsExtraction != other.NeedsExtraction ||
		r.Err != other.Err ||
		len(r.Strings) != len(other.Strings) {
		return false
	}
	for i := range r.Strings {
		if r.Strings[i] != other.Strings[i] {
			return false
		}
	}
	for c, n := range r.CategoryCounts {
		if other.CategoryCounts[c] != n {
			return false
		}
	}
	for c, n := range other.CategoryCounts {
		if r.CategoryCounts[c] != n {
			return false
		}
	}
	return true
}
