package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCRIBEDECK_CONFIG", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.SplitRatio != 0.5 {
		t.Fatalf("split_ratio = %v, want 0.5", cfg.UI.SplitRatio)
	}
	if cfg.Export.Format != "srt" {
		t.Fatalf("format = %q, want srt", cfg.Export.Format)
	}
	if !strings.HasPrefix(cfg.Transcript.MacrosPath, dir) {
		t.Fatalf("macros_path %q not under config dir", cfg.Transcript.MacrosPath)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCRIBEDECK_CONFIG", dir)
	toml := "[ui]\nsplit_ratio = 0.62\n\n[export]\nformat = \"vtt\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.SplitRatio != 0.62 {
		t.Fatalf("split_ratio = %v, want 0.62", cfg.UI.SplitRatio)
	}
	if cfg.Export.Format != "vtt" {
		t.Fatalf("format = %q, want vtt", cfg.Export.Format)
	}
	// Values the file omits keep their defaults.
	if cfg.Transcript.SeekStepSec != 5 {
		t.Fatalf("seek_step_sec = %d, want 5", cfg.Transcript.SeekStepSec)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCRIBEDECK_CONFIG", dir)
	toml := "[ui]\nsplit_ratio = 1.4\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for split_ratio outside [0,1]")
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCRIBEDECK_CONFIG", dir)
	toml := "[export]\nformat = \"docx\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported export format")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCRIBEDECK_CONFIG", dir)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.UI.SplitRatio = 0.33
	cfg.Export.Format = "json"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.UI.SplitRatio != 0.33 {
		t.Fatalf("split_ratio = %v after save, want 0.33", again.UI.SplitRatio)
	}
	if again.Export.Format != "json" {
		t.Fatalf("format = %q after save, want json", again.Export.Format)
	}
}
