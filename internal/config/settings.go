package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ljosdal/clipshelf/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Library settings
	LibraryDir  string `json:"library_dir"`
	LibraryFile string `json:"library_file"`

	// File naming
	FileNameFormat string `json:"file_name_format"`

	// Text block parsing
	DropBlankLicenses bool `json:"drop_blank_licenses"`

	// Tag settings
	ModifyTags          bool `json:"modify_tags"`
	EmbedArtwork        bool `json:"embed_artwork"`
	ArtworkMaxSize      int  `json:"artwork_max_size"`
	ConvertArtworkToJPG bool `json:"convert_artwork_to_jpg"`

	// Export settings
	ExportDir    string `json:"export_dir"`
	ExportFormat string `json:"export_format"` // wav

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended"`

	// Batch import settings
	MaxConcurrentProbes int `json:"max_concurrent_probes"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		LibraryDir:  filepath.Join(homeDir, "Music", "ClipShelf"),
		LibraryFile: filepath.Join(homeDir, ".config", "clipshelf", "library.json"),

		FileNameFormat: "{title}.mp3",

		DropBlankLicenses: true,

		ModifyTags:          true,
		EmbedArtwork:        true,
		ArtworkMaxSize:      1000,
		ConvertArtworkToJPG: true,

		ExportDir:    filepath.Join(homeDir, "Music", "ClipShelf", "mixes"),
		ExportFormat: "wav",

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		MaxConcurrentProbes: 4,
	}
}

// DefaultPath returns the default location of the settings file.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "clipshelf", "config.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToClipConfig converts settings to ClipConfig.
func (s *Settings) ToClipConfig() *model.ClipConfig {
	return &model.ClipConfig{
		FileNameFormat: s.FileNameFormat,
	}
}
