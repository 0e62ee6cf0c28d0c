// Package report merges per-file extraction results into one deterministic
// ScanReport and serializes it. Building and writing are pure transforms:
// neither depends on worker completion order or touches shared state.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/HybridTalentComputing/i18nscan/internal/model"
)

// Order selects the deterministic ordering of report files.
type Order string

const (
	// OrderCount sorts by string count descending, path ascending on
	// ties. This is the prioritization order: densest files first.
	OrderCount Order = "count"

	// OrderPath sorts by path ascending.
	OrderPath Order = "path"
)

// ParseOrder converts a string to an Order.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case OrderCount:
		return OrderCount, nil
	case OrderPath:
		return OrderPath, nil
	default:
		return "", fmt.Errorf("unknown sort order: %q (want count or path)", s)
	}
}

// Meta carries the run-level inputs for metadata computation.
type Meta struct {
	Start       time.Time
	End         time.Time
	CacheHits   int
	CacheMisses int
	Workers     int
}

// Build merges results into a ScanReport with computed aggregates and a
// deterministic file order. The input slice is not modified.
func Build(results []model.ExtractionResult, meta Meta, order Order) *model.ScanReport {
	files := make([]model.ExtractionResult, len(results))
	copy(files, results)
	Sort(files, order)

	md := model.ScanMetadata{
		ScanStart:       meta.Start,
		ScanEnd:         meta.End,
		DurationSeconds: meta.End.Sub(meta.Start).Seconds(),

		TotalFilesScanned: len(files),
		CacheHits:         meta.CacheHits,
		CacheMisses:       meta.CacheMisses,
		Workers:           meta.Workers,
	}

	for _, f := range files {
		md.TotalStringsFound += f.StringCount
		if f.NeedsExtraction {
			md.FilesNeedingExtraction++
		}
		if f.Err != "" {
			md.FilesErrored++
		}
	}
	if len(files) > 0 {
		md.AverageStringsPerFile = float64(md.TotalStringsFound) / float64(len(files))
	}
	if total := meta.CacheHits + meta.CacheMisses; total > 0 {
		md.CacheHitRate = float64(meta.CacheHits) / float64(total)
	}

	return &model.ScanReport{Metadata: md, Files: files}
}

// Sort orders files in place per the requested order.
func Sort(files []model.ExtractionResult, order Order) {
	switch order {
	case OrderPath:
		sort.Slice(files, func(i, j int) bool {
			return files[i].Path < files[j].Path
		})
	default:
		sort.Slice(files, func(i, j int) bool {
			if files[i].StringCount != files[j].StringCount {
				return files[i].StringCount > files[j].StringCount
			}
			return files[i].Path < files[j].Path
		})
	}
}

// Equal reports whether two reports carry the same scan content. Timing
// metadata (start, end, duration) is ignored so runs over identical trees
// compare equal regardless of when they happened.
func Equal(a, b *model.ScanReport) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Metadata.TotalFilesScanned != b.Metadata.TotalFilesScanned ||
		a.Metadata.FilesNeedingExtraction != b.Metadata.FilesNeedingExtraction ||
		a.Metadata.FilesErrored != b.Metadata.FilesErrored ||
		a.Metadata.TotalStringsFound != b.Metadata.TotalStringsFound ||
		len(a.Files) != len(b.Files) {
		return false
	}
	for i := range a.Files {
		if !a.Files[i].Equal(&b.Files[i]) {
			return false
		}
	}
	return true
}

// DiffPaths returns the paths present in a but absent from b, sorted.
// This is the set difference used to reason about added or removed files
// between two runs.
func DiffPaths(a, b *model.ScanReport) []string {
	in := make(map[string]struct{}, len(b.Files))
	for _, f := range b.Files {
		in[f.Path] = struct{}{}
	}

	var diff []string
	for _, f := range a.Files {
		if _, ok := in[f.Path]; !ok {
			diff = append(diff, f.Path)
		}
	}
	sort.Strings(diff)
	return diff
}
