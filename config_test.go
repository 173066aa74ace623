package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.ContentRoot != "content" {
		t.Errorf("ContentRoot = %q, want %q", settings.ContentRoot, "content")
	}
	if settings.MinMarkdownChars != 120 {
		t.Errorf("MinMarkdownChars = %d, want 120", settings.MinMarkdownChars)
	}
	if settings.MaxRedirects != 10 {
		t.Errorf("MaxRedirects = %d, want 10", settings.MaxRedirects)
	}
}

func TestLoadSettingsMissingFileFallsBack(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.ContentRoot != "content" {
		t.Errorf("ContentRoot = %q, want embedded default", settings.ContentRoot)
	}
}

func TestLoadSettingsSparseFileBackfilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("content_root: out\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.ContentRoot != "out" {
		t.Errorf("ContentRoot = %q, want %q", settings.ContentRoot, "out")
	}
	if settings.RequestTimeoutSeconds != 30 {
		t.Errorf("RequestTimeoutSeconds = %d, want backfilled 30", settings.RequestTimeoutSeconds)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("content_root: [unclosed\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() should fail on malformed YAML")
	}
}
