package e2e

import (
	"path/filepath"
	"testing"

	"github.com/HybridTalentComputing/i18nscan/internal/util"
)

// Project is a scan fixture rooted in a temp directory.
type Project struct {
	// Root is the directory to pass to the scan command.
	Root string
	// CacheDir is an isolated cache directory for this project.
	CacheDir string
}

// NewProject creates a small frontend project tree with a mix of
// extractable and clean files.
func NewProject(t *testing.T) *Project {
	t.Helper()

	root := t.TempDir()
	p := &Project{
		Root:     root,
		CacheDir: filepath.Join(t.TempDir(), "cache"),
	}

	p.AddFile(t, "components/LoginForm.tsx", `<form>
  <label>Username</label>
  <input placeholder="Enter username" />
  <label>Password</label>
  <input placeholder="Enter password" type="password" />
  <button>Sign in</button>
</form>
`)
	p.AddFile(t, "components/Spinner.vue",
		"<template><div :class=\"spin\" /></template>\n")
	p.AddFile(t, "lib/errors.ts",
		"toast.error('Something went wrong');\n")
	p.AddFile(t, "node_modules/react/index.js",
		"const msg = 'Vendored text';\n")

	return p
}

// AddFile writes a file below the project root.
func (p *Project) AddFile(t *testing.T, rel, content string) {
	t.Helper()
	util.WriteFile(t, filepath.Join(p.Root, filepath.FromSlash(rel)), content)
}

// ScanArgs returns scan command arguments for this project with its
// isolated cache directory.
func (p *Project) ScanArgs(extra ...string) []string {
	args := append([]string{"scan", "--cache-dir", p.CacheDir}, extra...)
	return append(args, p.Root)
}
