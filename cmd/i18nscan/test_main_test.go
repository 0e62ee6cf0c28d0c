package main

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	tempHome, err := os.MkdirTemp("", "i18nscan-cmd-test-")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = os.RemoveAll(tempHome)
	}()

	if err := os.Setenv("HOME", tempHome); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
