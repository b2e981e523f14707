package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/bankaccount"
)

// pinnedNow is the clock of every command test.
const pinnedNow = "2025-10-07 09:30:00.000"

// setupTest pins the clock, points the config flag to a temporary file
// holding config (no file when empty) and captures the command output.
func setupTest(t *testing.T, config string) *bytes.Buffer {
	t.Helper()
	t.Setenv(bankaccount.TestingNowEnv, pinnedNow)

	path := filepath.Join(t.TempDir(), "bankaccount.yaml")
	if config != "" {
		if err := os.WriteFile(path, []byte(config), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
	}
	oldConfig := *configFile
	*configFile = path
	t.Cleanup(func() { *configFile = oldConfig })

	var out bytes.Buffer
	oldStdout := stdout
	stdout = &out
	t.Cleanup(func() { stdout = oldStdout })
	return &out
}

// createTempSession writes a session script and returns its path.
func createTempSession(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write session file: %v", err)
	}
	return path
}
