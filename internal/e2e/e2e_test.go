package e2e

import (
	"encoding/json"
	"testing"

	"github.com/HybridTalentComputing/i18nscan/internal/model"
)

func TestScanJSONToStdout(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)

	r := h.Run(p.ScanArgs()...)
	AssertSuccess(t, r)
	AssertExitCode(t, r, 0)

	var rep model.ScanReport
	if err := json.Unmarshal([]byte(r.Stdout), &rep); err != nil {
		t.Fatalf("stdout is not a JSON report: %v\n%s", err, r.Stdout)
	}

	if rep.Metadata.TotalFilesScanned != 3 {
		t.Errorf("scanned %d files, want 3", rep.Metadata.TotalFilesScanned)
	}
	if rep.Metadata.TotalStringsFound != 6 {
		t.Errorf("found %d strings, want 6", rep.Metadata.TotalStringsFound)
	}
	AssertOutputNotContains(t, r, "node_modules")
}

func TestScanTextReport(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)

	r := h.Run(p.ScanArgs("--format", "text", "--top", "1")...)
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "Files requiring internationalization")
	AssertOutputContains(t, r, "total files scanned: 3")
	AssertOutputContains(t, r, "components/LoginForm.tsx")
	// With --top 1 the remaining files are summarized, not listed.
	AssertOutputNotContains(t, r, "lib/errors.ts")
	AssertOutputContains(t, r, "more files")
}

func TestRescanUsesCache(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)

	AssertSuccess(t, h.Run(p.ScanArgs()...))

	r := h.Run(p.ScanArgs("--format", "text")...)
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "cache hit rate: 100%")
}

func TestModifiedFileInvalidatesOnlyItself(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)

	AssertSuccess(t, h.Run(p.ScanArgs()...))

	p.AddFile(t, "lib/errors.ts",
		"toast.error('Something went wrong');\nalert('Session expired');\n")

	r := h.Run(p.ScanArgs()...)
	AssertSuccess(t, r)

	var rep model.ScanReport
	if err := json.Unmarshal([]byte(r.Stdout), &rep); err != nil {
		t.Fatalf("stdout is not a JSON report: %v", err)
	}
	if rep.Metadata.CacheHits != 2 || rep.Metadata.CacheMisses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1",
			rep.Metadata.CacheHits, rep.Metadata.CacheMisses)
	}
	if rep.Metadata.TotalStringsFound != 7 {
		t.Errorf("found %d strings, want 7", rep.Metadata.TotalStringsFound)
	}
}

func TestForceBypassesCache(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)

	AssertSuccess(t, h.Run(p.ScanArgs()...))

	r := h.Run(p.ScanArgs("--force", "--format", "text")...)
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "cache hit rate: 0%")
}

func TestMinStringsThreshold(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)

	r := h.Run(p.ScanArgs("--min-strings", "5", "--format", "text")...)
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "files needing i18n: 1")
}

func TestCacheStatsAndClear(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)

	AssertSuccess(t, h.Run(p.ScanArgs()...))

	r := h.Run("cache", "--cache-dir", p.CacheDir, "stats", "--json")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, `"entries": 3`)

	r = h.Run("cache", "--cache-dir", p.CacheDir, "clear")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "cleared 3 cache entries")

	r = h.Run("cache", "--cache-dir", p.CacheDir, "stats", "--json")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, `"entries": 0`)
}

func TestVersionCommand(t *testing.T) {
	h := NewHarness(t)

	r := h.Run("version")
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "i18nscan version")
}

func TestMissingRootFails(t *testing.T) {
	h := NewHarness(t)

	r := h.Run("scan", "--no-cache", "/definitely/not/here")
	AssertError(t, r)
	AssertExitCode(t, r, 1)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	h := NewHarness(t)
	p := NewProject(t)
	h.SetEnv("I18NSCAN_SCAN_FILE_TYPES", "ts")

	r := h.Run(p.ScanArgs("--format", "text")...)
	AssertSuccess(t, r)
	AssertOutputContains(t, r, "total files scanned: 1")
	AssertOutputContains(t, r, "lib/errors.ts")
}
