package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultCacheDirName is the cache directory created next to a scanned root
// when no explicit --cache-dir is given.
const DefaultCacheDirName = ".i18n-cache"

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ConfigPath returns the path of the user-level i18nscan config file
func ConfigPath() string {
	return filepath.Join(HomeDir(), ".i18nscan.yaml")
}

// ExpandHome resolves a leading ~ in a path to the user's home directory
func ExpandHome(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}

// NormalizeRel converts a root-relative path to forward slashes so cache
// keys and report paths are identical across platforms.
func NormalizeRel(path string) string {
	return filepath.ToSlash(path)
}
