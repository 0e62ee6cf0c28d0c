package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/HybridTalentComputing/i18nscan/internal/config"
	"github.com/HybridTalentComputing/i18nscan/internal/hashstore"
	"github.com/HybridTalentComputing/i18nscan/internal/logging"
	"github.com/HybridTalentComputing/i18nscan/internal/progress"
	"github.com/HybridTalentComputing/i18nscan/internal/report"
	"github.com/HybridTalentComputing/i18nscan/internal/scan"
	"github.com/HybridTalentComputing/i18nscan/internal/ui"
	"github.com/HybridTalentComputing/i18nscan/internal/util"
)

func scanFlags() []cli.Flag {
	defaults := config.Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Report format: json, csv or text",
			Value:   defaults.Output.Format,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the report to a file instead of stdout",
		},
		&cli.StringSliceFlag{
			Name:  "file-types",
			Usage: "Comma-separated list of file extensions to scan",
			Value: defaults.Scan.FileTypes,
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Comma-separated list of path fragments to skip",
			Value: defaults.Scan.Excludes,
		},
		&cli.IntFlag{
			Name:  "min-strings",
			Usage: "Minimum string count before a file needs extraction (default 1)",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Worker pool size (0 = host parallelism)",
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "Extraction cache directory",
			Value: defaults.Cache.Dir,
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "Run without the persistent cache",
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Clear the cache and recompute every file",
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Report ordering: count or path",
			Value: defaults.Output.Sort,
		},
		&cli.DurationFlag{
			Name:  "budget",
			Usage: "Wall-clock budget; files not started in time are skipped",
		},
		&cli.IntFlag{
			Name:  "top",
			Usage: "How many files the text report lists (default 20)",
		},
	}
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan a source tree for user-facing strings",
		UsageText: "i18nscan scan [options] <root>",
		Description: `Walk a source tree, classify user-facing strings per file and report
   which files need i18n extraction. With a cache directory, unchanged
   files are skipped on repeated scans.

   Examples:
     i18nscan scan ./src
     i18nscan scan --format text --min-strings 5 ./src
     i18nscan scan --no-cache --format csv -o report.csv ./src`,
		Flags:  scanFlags(),
		Action: runScan,
	}
}

// settings is the merged result of defaults, config file, environment
// and flags, in ascending precedence.
type settings struct {
	fileTypes  []string
	excludes   []string
	minStrings int
	workers    int
	cacheDir   string
	noCache    bool
	force      bool
	format     report.Format
	sort       report.Order
	budget     time.Duration
	top        int
	output     string
}

func resolveSettings(cmd *cli.Command, cfg *config.Config) (settings, error) {
	s := settings{
		fileTypes:  cfg.Scan.FileTypes,
		excludes:   cfg.Scan.Excludes,
		minStrings: cfg.Scan.MinStrings,
		workers:    cfg.Scan.Workers,
		cacheDir:   cfg.Cache.Dir,
		noCache:    !cfg.Cache.Enabled,
		budget:     cfg.Scan.Budget,
		top:        cfg.Output.Top,
		output:     cmd.String("output"),
		force:      cmd.Bool("force"),
	}

	if cmd.IsSet("file-types") {
		s.fileTypes = cmd.StringSlice("file-types")
	}
	if cmd.IsSet("exclude") {
		s.excludes = cmd.StringSlice("exclude")
	}
	if cmd.IsSet("min-strings") {
		s.minStrings = int(cmd.Int("min-strings"))
	}
	if cmd.IsSet("workers") {
		s.workers = int(cmd.Int("workers"))
	}
	if cmd.IsSet("cache-dir") {
		s.cacheDir = cmd.String("cache-dir")
	}
	if cmd.Bool("no-cache") {
		s.noCache = true
	}
	if cmd.IsSet("budget") {
		s.budget = cmd.Duration("budget")
	}
	if cmd.IsSet("top") {
		s.top = int(cmd.Int("top"))
	}

	formatName := cfg.Output.Format
	if cmd.IsSet("format") {
		formatName = cmd.String("format")
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return settings{}, err
	}
	s.format = format

	sortName := cfg.Output.Sort
	if cmd.IsSet("sort") {
		sortName = cmd.String("sort")
	}
	order, err := report.ParseOrder(sortName)
	if err != nil {
		return settings{}, err
	}
	s.sort = order

	return s, nil
}

func runScan(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 1 {
		return errors.New("scan requires exactly 1 argument: <root>")
	}
	root := args.Get(0)

	fs := afero.NewOsFs()

	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	// Open the destination before doing any work: an unwritable output
	// path should fail fast, not after a long scan.
	var out io.Writer = os.Stdout
	if s.output != "" {
		f, err := fs.Create(s.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var store *hashstore.Store
	if !s.noCache {
		store, err = hashstore.Open(fs, util.ExpandHome(s.cacheDir))
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if s.force {
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			logging.Info("cache cleared, recomputing all files")
		}
	}

	engine := scan.New(fs, store, scan.Options{
		Root:       root,
		FileTypes:  s.fileTypes,
		Excludes:   s.excludes,
		MinStrings: s.minStrings,
		Workers:    s.workers,
		Sort:       s.sort,
		Budget:     s.budget,
	})

	var bar *progress.Bar
	rep, runErr := engine.Run(ctx, func(done, total int) {
		if bar == nil {
			bar = progress.Simple(int64(total), "scanning")
		}
		_ = bar.Set(done)
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if rep == nil {
		return runErr
	}

	if err := report.Write(out, rep, s.format, s.top); err != nil {
		return err
	}

	if s.output != "" {
		md := rep.Metadata
		fmt.Fprintln(os.Stderr, ui.StatusSuccess(fmt.Sprintf(
			"scanned %d files, %d need extraction, report written to %s",
			md.TotalFilesScanned, md.FilesNeedingExtraction, s.output)))
	}

	// A canceled or budget-cut run still reports what it finished.
	return runErr
}
