package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HORDE_SEED", "HORDE_WINDOW_W", "HORDE_WINDOW_H", "HORDE_TELEMETRY", "HORDE_TTY_LOG", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	got, err := LoadFrom(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != Defaults() {
		t.Fatalf("got %+v want %+v", got, Defaults())
	}
}

func TestLoadFromDotenvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	body := "HORDE_SEED=42\nHORDE_WINDOW_W=800\nHORDE_TELEMETRY=false\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// process env beats the file
	t.Setenv("HORDE_WINDOW_W", "1024")

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Seed != 42 || got.WindowW != 1024 || got.WindowH != 720 || got.Telemetry || got.LogLevel != "debug" {
		t.Fatalf("unexpected options: %+v", got)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"HORDE_SEED", "abc"},
		{"HORDE_WINDOW_H", "1.5"},
		{"HORDE_TELEMETRY", "maybe"},
		{"HORDE_WINDOW_W", "-4"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			if _, err := FromEnv(); err == nil {
				t.Fatalf("%s=%q should fail", tc.key, tc.val)
			}
		})
	}
}
