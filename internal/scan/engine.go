// Package scan drives a full extraction run: it walks the source tree,
// partitions the candidate files across a bounded worker pool, consults the
// hash store to skip unchanged files, and hands the collected results to
// the reporter.
package scan

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/HybridTalentComputing/i18nscan/internal/extract"
	"github.com/HybridTalentComputing/i18nscan/internal/hashstore"
	"github.com/HybridTalentComputing/i18nscan/internal/logging"
	"github.com/HybridTalentComputing/i18nscan/internal/model"
	"github.com/HybridTalentComputing/i18nscan/internal/report"
	"github.com/HybridTalentComputing/i18nscan/internal/walker"
)

// Options configures one engine run.
type Options struct {
	// Root is the source directory to scan.
	Root string

	// FileTypes is the suffix allow-list (extensions, dot optional).
	FileTypes []string

	// Excludes is the path-fragment deny-list.
	Excludes []string

	// MinStrings marks a file NeedsExtraction only when its string count
	// reaches this threshold.
	MinStrings int

	// Workers sizes the pool; <= 0 means the host's available parallelism.
	Workers int

	// Sort selects the report ordering.
	Sort report.Order

	// Budget is an optional wall-clock limit. Once exceeded the scheduler
	// refuses to dispatch new files; in-flight files still finish.
	Budget time.Duration

	// Extract tunes the shared exclusion policy.
	Extract extract.Options
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// Progress is called after each file completes with the number of files
// processed so far and the total.
type Progress func(done, total int)

// Engine runs scans over one filesystem. The store may be nil for
// one-shot runs without a persistent cache.
type Engine struct {
	fs    afero.Fs
	store *hashstore.Store
	opts  Options
}

// New creates an engine. Pass a nil store to disable caching.
func New(fs afero.Fs, store *hashstore.Store, opts Options) *Engine {
	return &Engine{fs: fs, store: store, opts: opts}
}

// fileOutcome carries one worker's result back to the collector.
type fileOutcome struct {
	result model.ExtractionResult
	hit    bool
}

// Run performs a complete scan. Per-file failures are folded into the
// report; only a missing root is fatal. On cancellation the files already
// processed keep their cache entries and the partial report is returned
// together with the context error.
func (e *Engine) Run(ctx context.Context, progress Progress) (*model.ScanReport, error) {
	start := time.Now()

	w := walker.New(e.fs, e.opts.Root, e.opts.FileTypes, e.opts.Excludes)
	files, err := w.Files()
	if err != nil {
		return nil, err
	}

	workers := e.opts.workers()
	logging.Info("scan starting", logging.Path(e.opts.Root), logging.Count(len(files)), logging.Workers(workers))

	jobs := make(chan string)
	outcomes := make(chan fileOutcome)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				outcomes <- e.processFile(path)
			}
		}()
	}

	// Dispatcher: stops feeding on cancellation or an exhausted budget,
	// letting in-flight files finish and commit their cache writes.
	var deadline time.Time
	if e.opts.Budget > 0 {
		deadline = start.Add(e.opts.Budget)
	}
	go func() {
		defer close(jobs)
		for _, path := range files {
			if ctx.Err() != nil {
				logging.Warn("scan canceled, draining in-flight files")
				return
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				logging.Warn("wall-clock budget exceeded, refusing new work",
					logging.KeyDuration, e.opts.Budget)
				return
			}
			jobs <- path
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := make([]model.ExtractionResult, 0, len(files))
	hits := 0
	for outcome := range outcomes {
		results = append(results, outcome.result)
		if outcome.hit {
			hits++
		}
		if progress != nil {
			progress(len(results), len(files))
		}
	}

	if e.store != nil {
		e.pruneStore(files)
		if err := e.store.Save(); err != nil {
			logging.Warn("failed to persist cache store", logging.Err(err))
		}
	}

	rep := report.Build(results, report.Meta{
		Start:       start,
		End:         time.Now(),
		CacheHits:   hits,
		CacheMisses: len(results) - hits,
		Workers:     workers,
	}, e.opts.Sort)

	logging.Info("scan finished",
		logging.Count(rep.Metadata.TotalFilesScanned),
		logging.KeyDuration, rep.Metadata.DurationSeconds)

	return rep, ctx.Err()
}

// processFile is the per-file worker step: hash, cache lookup, extract on
// miss, cache update. It never fails the run.
func (e *Engine) processFile(rel string) fileOutcome {
	full := filepath.Join(e.opts.Root, filepath.FromSlash(rel))

	hash, err := hashstore.HashFile(e.fs, full)
	if err != nil {
		logging.Warn("cannot read file", logging.Path(rel), logging.Err(err))
		result := model.NewExtractionResult(rel)
		result.Err = err.Error()
		return fileOutcome{result: *result}
	}

	if e.store != nil {
		if cached, hit := e.store.Lookup(rel, hash); hit {
			logging.Debug("cache hit", logging.Path(rel), logging.Hash(hash))
			// The threshold may differ from the cached run's.
			cached.NeedsExtraction = cached.StringCount >= e.opts.MinStrings
			return fileOutcome{result: cached, hit: true}
		}
	}

	content, err := afero.ReadFile(e.fs, full)
	if err != nil {
		logging.Warn("cannot read file", logging.Path(rel), logging.Err(err))
		result := model.NewExtractionResult(rel)
		result.Err = err.Error()
		return fileOutcome{result: *result}
	}

	extractor := extract.ForPath(rel, e.opts.Extract)
	result := extractor.Extract(rel, content)
	if result.Err != "" {
		logging.Warn("decode failure, file contributes zero strings",
			logging.Path(rel), logging.Dialect(extractor.Dialect().String()),
			logging.KeyError, result.Err)
	}
	result.NeedsExtraction = result.StringCount >= e.opts.MinStrings

	if e.store != nil {
		// Decode failures are deterministic for a given content hash, so
		// they are cached like any other result.
		e.store.Put(rel, hash, *result)
	}
	return fileOutcome{result: *result}
}

// pruneStore drops cache entries for files that no longer exist under the
// root, keeping the store from growing without bound.
func (e *Engine) pruneStore(files []string) {
	keep := make(map[string]struct{}, len(files))
	for _, f := range files {
		keep[f] = struct{}{}
	}
	if pruned := e.store.Prune(keep); pruned > 0 {
		logging.Debug("pruned stale cache entries", logging.Count(pruned))
	}
}
