// Package e2e provides testing infrastructure for end-to-end CLI tests:
// a harness that runs i18nscan commands with captured output inside an
// isolated environment, plus fixture helpers for scan project trees.
package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/HybridTalentComputing/i18nscan/internal/cli"
)

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness runs CLI commands in an isolated environment: its own HOME (so
// no user config file leaks in) and no I18NSCAN_* variables.
type Harness struct {
	t       *testing.T
	homeDir string
}

// NewHarness creates a new E2E test harness.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	for _, key := range []string{
		"I18NSCAN_SCAN_FILE_TYPES",
		"I18NSCAN_SCAN_EXCLUDES",
		"I18NSCAN_SCAN_MIN_STRINGS",
		"I18NSCAN_SCAN_WORKERS",
		"I18NSCAN_CACHE_ENABLED",
		"I18NSCAN_CACHE_DIR",
		"I18NSCAN_OUTPUT_FORMAT",
		"I18NSCAN_OUTPUT_SORT",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	return &Harness{t: t, homeDir: homeDir}
}

// SetEnv sets an environment variable for CLI commands run through this
// harness. It is restored after the test completes.
func (h *Harness) SetEnv(key, value string) {
	h.t.Helper()
	h.t.Setenv(key, value)
}

// HomeDir returns the isolated home directory for this test harness.
func (h *Harness) HomeDir() string {
	return h.homeDir
}

// Run executes a CLI command with the given arguments and captures stdout.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()

	if len(args) == 0 || args[0] != "i18nscan" {
		args = append([]string{"i18nscan"}, args...)
	}

	oldStdout := os.Stdout
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = stdoutW

	// Read stdout concurrently: a report larger than the pipe buffer
	// would otherwise block the command.
	var stdoutBuf bytes.Buffer
	var copyErr error
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		_, copyErr = io.Copy(&stdoutBuf, stdoutR)
	}()

	cmdErr := cli.Run(context.Background(), args)

	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	os.Stdout = oldStdout

	<-copyDone
	if copyErr != nil {
		h.t.Fatalf("failed to read captured stdout: %v", copyErr)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}
