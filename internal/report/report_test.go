package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/HybridTalentComputing/i18nscan/internal/model"
	"github.com/HybridTalentComputing/i18nscan/internal/util"
)

func resultWith(path string, count int, needs bool) model.ExtractionResult {
	r := model.NewExtractionResult(path)
	for i := 0; i < count; i++ {
		r.Add("Save changes", model.CategoryButtons, i+1)
	}
	r.NeedsExtraction = needs
	return *r
}

func sampleMeta() Meta {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return Meta{
		Start:       start,
		End:         start.Add(2 * time.Second),
		CacheHits:   1,
		CacheMisses: 2,
		Workers:     4,
	}
}

func TestBuildAggregates(t *testing.T) {
	results := []model.ExtractionResult{
		resultWith("b.vue", 0, false),
		resultWith("a.tsx", 10, true),
		resultWith("c.ts", 5, true),
	}

	rep := Build(results, sampleMeta(), OrderCount)

	md := rep.Metadata
	util.AssertEqual(t, md.TotalFilesScanned, 3)
	util.AssertEqual(t, md.FilesNeedingExtraction, 2)
	util.AssertEqual(t, md.TotalStringsFound, 15)
	util.AssertEqual(t, md.AverageStringsPerFile, 5.0)
	util.AssertEqual(t, md.DurationSeconds, 2.0)
	util.AssertEqual(t, md.Workers, 4)
	if md.CacheHitRate < 0.33 || md.CacheHitRate > 0.34 {
		t.Errorf("CacheHitRate = %f, want 1/3", md.CacheHitRate)
	}
}

func TestBuildOrderIndependence(t *testing.T) {
	a := []model.ExtractionResult{
		resultWith("a.tsx", 10, true),
		resultWith("b.vue", 0, false),
		resultWith("c.ts", 5, true),
	}
	b := []model.ExtractionResult{
		resultWith("c.ts", 5, true),
		resultWith("a.tsx", 10, true),
		resultWith("b.vue", 0, false),
	}

	repA := Build(a, sampleMeta(), OrderCount)
	repB := Build(b, sampleMeta(), OrderCount)

	if !Equal(repA, repB) {
		t.Error("reports built from permuted results should be equal")
	}
	util.AssertEqual(t, repA.Files[0].Path, "a.tsx")
	util.AssertEqual(t, repA.Files[1].Path, "c.ts")
	util.AssertEqual(t, repA.Files[2].Path, "b.vue")
}

func TestSortOrders(t *testing.T) {
	files := []model.ExtractionResult{
		resultWith("z.ts", 3, true),
		resultWith("a.ts", 3, true),
		resultWith("m.ts", 7, true),
	}

	Sort(files, OrderCount)
	util.AssertEqual(t, files[0].Path, "m.ts")
	// Ties break by path.
	util.AssertEqual(t, files[1].Path, "a.ts")
	util.AssertEqual(t, files[2].Path, "z.ts")

	Sort(files, OrderPath)
	util.AssertEqual(t, files[0].Path, "a.ts")
	util.AssertEqual(t, files[2].Path, "z.ts")
}

func TestEqualIgnoresTiming(t *testing.T) {
	results := []model.ExtractionResult{resultWith("a.ts", 2, true)}

	metaLater := sampleMeta()
	metaLater.Start = metaLater.Start.Add(time.Hour)
	metaLater.End = metaLater.End.Add(time.Hour)

	repA := Build(results, sampleMeta(), OrderCount)
	repB := Build(results, metaLater, OrderCount)

	if !Equal(repA, repB) {
		t.Error("reports differing only in timing should be equal")
	}
}

func TestDiffPaths(t *testing.T) {
	repA := Build([]model.ExtractionResult{
		resultWith("a.ts", 1, true),
		resultWith("b.ts", 1, true),
	}, sampleMeta(), OrderPath)
	repB := Build([]model.ExtractionResult{
		resultWith("b.ts", 1, true),
	}, sampleMeta(), OrderPath)

	diff := DiffPaths(repA, repB)
	util.AssertEqual(t, len(diff), 1)
	util.AssertEqual(t, diff[0], "a.ts")

	if got := DiffPaths(repB, repA); len(got) != 0 {
		t.Errorf("reverse diff = %v, want empty", got)
	}
}

func TestParseOrderAndFormat(t *testing.T) {
	if _, err := ParseOrder("priority"); err == nil {
		t.Error("expected error for unknown order")
	}
	order, err := ParseOrder(" Count ")
	util.AssertNoError(t, err)
	util.AssertEqual(t, order, OrderCount)

	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
	format, err := ParseFormat("CSV")
	util.AssertNoError(t, err)
	util.AssertEqual(t, format, FormatCSV)
}

func TestWriteJSON(t *testing.T) {
	rep := Build([]model.ExtractionResult{resultWith("a.tsx", 2, true)}, sampleMeta(), OrderCount)

	var buf bytes.Buffer
	util.AssertNoError(t, Write(&buf, rep, FormatJSON, 0))

	var decoded model.ScanReport
	util.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	util.AssertEqual(t, decoded.Metadata.TotalStringsFound, 2)
	util.AssertEqual(t, decoded.Files[0].Path, "a.tsx")
	util.AssertEqual(t, decoded.Files[0].Strings[0].Category, model.CategoryButtons)
}

func TestWriteCSV(t *testing.T) {
	rep := Build([]model.ExtractionResult{
		resultWith("a.tsx", 2, true),
		resultWith("b.ts", 0, false),
	}, sampleMeta(), OrderCount)

	var buf bytes.Buffer
	util.AssertNoError(t, Write(&buf, rep, FormatCSV, 0))

	rows, err := csv.NewReader(&buf).ReadAll()
	util.AssertNoError(t, err)
	util.AssertEqual(t, len(rows), 3)
	util.AssertEqual(t, rows[0][1], "path")
	util.AssertEqual(t, rows[1][1], "a.tsx")
	util.AssertEqual(t, rows[1][2], "2")
	util.AssertEqual(t, rows[1][4], "2") // buttons column
	util.AssertEqual(t, rows[2][3], "false")
}

func TestWriteText(t *testing.T) {
	rep := Build([]model.ExtractionResult{
		resultWith("a.tsx", 2, true),
		resultWith("b.ts", 1, true),
		resultWith("c.ts", 1, true),
	}, sampleMeta(), OrderCount)

	var buf bytes.Buffer
	util.AssertNoError(t, Write(&buf, rep, FormatText, 2))

	out := buf.String()
	if !strings.Contains(out, "total files scanned: 3") {
		t.Errorf("text output missing statistics: %q", out)
	}
	if !strings.Contains(out, "a.tsx") {
		t.Errorf("text output missing top file: %q", out)
	}
	if !strings.Contains(out, "and 1 more files") {
		t.Errorf("text output missing overflow note: %q", out)
	}
}

func TestWriteIsPure(t *testing.T) {
	rep := Build([]model.ExtractionResult{resultWith("a.tsx", 2, true)}, sampleMeta(), OrderCount)

	var first, second bytes.Buffer
	util.AssertNoError(t, Write(&first, rep, FormatJSON, 0))
	util.AssertNoError(t, Write(&second, rep, FormatJSON, 0))

	if first.String() != second.String() {
		t.Error("serializing the same report twice should be byte-identical")
	}
}
