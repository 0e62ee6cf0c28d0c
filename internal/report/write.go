package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HybridTalentComputing/i18nscan/internal/model"
)

// Format selects the output serialization.
type Format string

const (
	// FormatJSON is the structured machine-readable form.
	FormatJSON Format = "json"

	// FormatCSV is the row-oriented form, one row per file.
	FormatCSV Format = "csv"

	// FormatText is the human-readable summary form.
	FormatText Format = "text"
)

// DefaultTopN is how many files the text summary lists.
const DefaultTopN = 20

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format: %q (want json, csv or text)", s)
	}
}

// Write serializes the report to w in the given format. topN bounds the
// file list in the text form; <= 0 means DefaultTopN.
func Write(w io.Writer, rep *model.ScanReport, format Format, topN int) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, rep)
	case FormatText:
		return writeText(w, rep, topN)
	default:
		return writeJSON(w, rep)
	}
}

func writeJSON(w io.Writer, rep *model.ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

var csvHeader = []string{
	"priority", "path", "string_count", "needs_i18n",
	"buttons", "labels", "placeholders", "attributes", "literals", "error",
}

func writeCSV(w io.Writer, rep *model.ScanReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, f := range rep.Files {
		row := []string{
			strconv.Itoa(i + 1),
			f.Path,
			strconv.Itoa(f.StringCount),
			strconv.FormatBool(f.NeedsExtraction),
			strconv.Itoa(f.CategoryCounts[model.CategoryButtons]),
			strconv.Itoa(f.CategoryCounts[model.CategoryLabels]),
			strconv.Itoa(f.CategoryCounts[model.CategoryPlaceholders]),
			strconv.Itoa(f.CategoryCounts[model.CategoryAttributes]),
			strconv.Itoa(f.CategoryCounts[model.CategoryLiterals]),
			f.Err,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeText(w io.Writer, rep *model.ScanReport, topN int) error {
	if topN <= 0 {
		topN = DefaultTopN
	}
	md := rep.Metadata

	var b strings.Builder
	b.WriteString("# Files requiring internationalization\n")
	fmt.Fprintf(&b, "# Generated: %s\n\n", md.ScanEnd.Format("2006-01-02 15:04:05"))

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- total files scanned: %d\n", md.TotalFilesScanned)
	fmt.Fprintf(&b, "- files needing i18n: %d\n", md.FilesNeedingExtraction)
	fmt.Fprintf(&b, "- files errored: %d\n", md.FilesErrored)
	fmt.Fprintf(&b, "- total strings found: %d\n", md.TotalStringsFound)
	fmt.Fprintf(&b, "- average strings per file: %.1f\n", md.AverageStringsPerFile)
	fmt.Fprintf(&b, "- cache hit rate: %.0f%%\n", md.CacheHitRate*100)
	fmt.Fprintf(&b, "- duration: %.2fs\n\n", md.DurationSeconds)

	limit := topN
	if limit > len(rep.Files) {
		limit = len(rep.Files)
	}
	fmt.Fprintf(&b, "## Top %d files by string count\n\n", limit)
	for i, f := range rep.Files[:limit] {
		fmt.Fprintf(&b, "%2d. %3d strings - %s\n", i+1, f.StringCount, f.Path)
	}
	if rest := len(rep.Files) - limit; rest > 0 {
		fmt.Fprintf(&b, "\n... and %d more files\n", rest)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
