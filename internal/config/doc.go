// Package config provides configuration management for clipshelf.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to ClipConfig for the model package
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Clips under ~/Music/ClipShelf
//	// Library records in ~/.config/clipshelf/library.json
//	// ID3 tagging enabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.LibraryDir = "/data/clips"
//	err := settings.Save("/path/to/config.json")
package config
