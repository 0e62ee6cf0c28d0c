// Package walker enumerates candidate source files under a root directory,
// applying a suffix allow-list and a path-fragment deny-list.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/HybridTalentComputing/i18nscan/internal/logging"
	"github.com/HybridTalentComputing/i18nscan/internal/util"
)

// Walker performs filtered traversals of one root. Each call to Walk or
// Files is a fresh traversal; the walker keeps no state between runs.
// Traversal order is not guaranteed and callers must not depend on it.
type Walker struct {
	fs       afero.Fs
	root     string
	suffixes []string
	excludes []string
}

// New creates a walker for root. fileTypes are extensions with or without
// a leading dot; excludes are path fragments (directory names or longer
// relative fragments) that disqualify a path.
func New(fs afero.Fs, root string, fileTypes, excludes []string) *Walker {
	suffixes := make([]string, 0, len(fileTypes))
	for _, ft := range fileTypes {
		ft = strings.ToLower(strings.TrimSpace(ft))
		if ft == "" {
			continue
		}
		if !strings.HasPrefix(ft, ".") {
			ft = "." + ft
		}
		suffixes = append(suffixes, ft)
	}

	cleaned := make([]string, 0, len(excludes))
	for _, ex := range excludes {
		if ex = strings.TrimSpace(ex); ex != "" {
			cleaned = append(cleaned, ex)
		}
	}

	return &Walker{fs: fs, root: root, suffixes: suffixes, excludes: cleaned}
}

// Walk calls fn with the root-relative forward-slash path of every
// candidate file. Permission errors and unreadable entries are logged and
// skipped, never fatal; a missing root is.
func (w *Walker) Walk(fn func(rel string) error) error {
	info, err := w.fs.Stat(w.root)
	if err != nil {
		return fmt.Errorf("source root %s: %w", w.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source root %s is not a directory", w.root)
	}

	return afero.Walk(w.fs, w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logging.Warn("skipping unreadable path", logging.Path(path), logging.Err(err))
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			logging.Warn("skipping path outside root", logging.Path(path), logging.Err(relErr))
			return nil
		}
		rel = util.NormalizeRel(rel)

		if info.IsDir() {
			if rel != "." && w.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks are not followed; afero.Walk lstats entries, so link
		// cycles cannot recurse.
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		if w.excluded(rel) || !w.accepted(rel) {
			return nil
		}
		return fn(rel)
	})
}

// Files collects all candidate paths from a fresh traversal.
func (w *Walker) Files() ([]string, error) {
	var files []string
	err := w.Walk(func(rel string) error {
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// accepted reports whether the path matches the suffix allow-list.
func (w *Walker) accepted(rel string) bool {
	lower := strings.ToLower(rel)
	for _, suffix := range w.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// excluded reports whether any deny-list fragment appears in the path.
func (w *Walker) excluded(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, fragment := range w.excludes {
		if strings.Contains(fragment, "/") {
			if strings.Contains(rel, fragment) {
				return true
			}
			continue
		}
		for _, part := range parts {
			if part == fragment {
				return true
			}
		}
	}
	return false
}
