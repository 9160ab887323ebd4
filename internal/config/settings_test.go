package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	defaults := DefaultSettings()
	if settings.FileNameFormat != defaults.FileNameFormat {
		t.Errorf("FileNameFormat = %q, want default %q", settings.FileNameFormat, defaults.FileNameFormat)
	}
	if settings.ExportFormat != "wav" {
		t.Errorf("ExportFormat = %q, want %q", settings.ExportFormat, "wav")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.LibraryDir = "/data/clips"
	settings.DropBlankLicenses = false
	settings.MaxConcurrentProbes = 8

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if loaded.LibraryDir != "/data/clips" {
		t.Errorf("LibraryDir = %q", loaded.LibraryDir)
	}
	if loaded.DropBlankLicenses {
		t.Error("DropBlankLicenses should round-trip as false")
	}
	if loaded.MaxConcurrentProbes != 8 {
		t.Errorf("MaxConcurrentProbes = %d, want 8", loaded.MaxConcurrentProbes)
	}
}

func TestToClipConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.FileNameFormat = "{index} {title}.mp3"

	cfg := settings.ToClipConfig()
	if cfg.FileNameFormat != "{index} {title}.mp3" {
		t.Errorf("FileNameFormat = %q", cfg.FileNameFormat)
	}
}
