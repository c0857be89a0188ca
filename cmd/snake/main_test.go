package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:2200":     "2200",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, expected %q", addr, got, want)
		}
	}
}

func TestNewPlayLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newPlayLogger("")
	if err != nil {
		t.Fatalf("newPlayLogger() failed: %v", err)
	}
	defer closeLog()

	logger.Info("dropped") // Should not panic
}

func TestNewPlayLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newPlayLogger(path)
	if err != nil {
		t.Fatalf("newPlayLogger() failed: %v", err)
	}
	logger.Info("game over", "score", 40)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading log failed: %v", err)
	}
	if !strings.Contains(string(data), "game over") || !strings.Contains(string(data), "score=40") {
		t.Errorf("Log file = %q", data)
	}
}

func TestNewPlayLoggerBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "snake.log")
	if _, _, err := newPlayLogger(path); err == nil {
		t.Error("Expected an error for an unwritable log path")
	}
}

func TestRootHasCommands(t *testing.T) {
	for _, name := range []string{"play", "serve", "scores", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Command %q not registered", name)
		}
	}

	// The root command plays, so it accepts the play flags
	for _, flag := range []string{"sound", "log-file", "config", "seed", "tps", "db"} {
		if rootCmd.Flags().Lookup(flag) == nil && rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Root command is missing --%s", flag)
		}
	}
}
