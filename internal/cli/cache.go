package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/HybridTalentComputing/i18nscan/internal/config"
	"github.com/HybridTalentComputing/i18nscan/internal/hashstore"
	"github.com/HybridTalentComputing/i18nscan/internal/ui"
	"github.com/HybridTalentComputing/i18nscan/internal/util"
)

func cacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and manage the extraction cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cache-dir",
				Usage: "Extraction cache directory",
				Value: config.Default().Cache.Dir,
			},
		},
		Commands: []*cli.Command{
			cacheStatsCommand(),
			cacheClearCommand(),
		},
	}
}

func cacheStatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Display cache entry count, size and age",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output in JSON format for scripting",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			store, err := openCacheStore(cmd)
			if err != nil {
				return err
			}
			stats := store.Stats()

			if cmd.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			fmt.Println(ui.Header("Extraction cache"))
			fmt.Printf("  Entries: %s\n", ui.Bold(fmt.Sprintf("%d", stats.Entries)))
			fmt.Printf("  Size: %s\n", ui.Bold(formatBytes(stats.SizeBytes)))
			if !stats.Oldest.IsZero() {
				fmt.Printf("  Oldest: %s\n", stats.Oldest.Format(time.RFC3339))
				fmt.Printf("  Newest: %s\n", stats.Newest.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func cacheClearCommand() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove all cached extraction results",
		Action: func(_ context.Context, cmd *cli.Command) error {
			store, err := openCacheStore(cmd)
			if err != nil {
				return err
			}
			entries := store.Len()
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			fmt.Println(ui.StatusSuccess(fmt.Sprintf("cleared %d cache entries", entries)))
			return nil
		},
	}
}

// openCacheStore resolves the cache directory from flag or config and
// opens the store.
func openCacheStore(cmd *cli.Command) (*hashstore.Store, error) {
	fs := afero.NewOsFs()

	dir := cmd.String("cache-dir")
	if !cmd.IsSet("cache-dir") {
		cfg, err := config.Load(fs)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		dir = cfg.Cache.Dir
	}

	store, err := hashstore.Open(fs, util.ExpandHome(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return store, nil
}

// formatBytes renders a byte count with a human-readable unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}
