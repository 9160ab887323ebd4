package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Attribution holds the metadata extracted from one pasted text block.
//
// The block's header line has the fixed shape
// "<song> by <artist> | <link>"; up to three following lines are
// collected as licenses in source order.
//
// Attribution is a plain value: it carries no identity and no file
// information. Building a library record from it is the importer's job.
type Attribution struct {
	// SongName is the song title from the header line, trimmed.
	SongName string

	// ArtistName is the artist from the header line, trimmed.
	ArtistName string

	// ArtistLink is the artist URL from the header line, trimmed.
	ArtistLink string

	// Licenses are the trimmed lines following the header, in source
	// order. Zero to three entries.
	Licenses []string
}

// Clip is one audio clip in the library.
//
// The JSON field names are the persisted record shape of the library
// file; Duration and FileSize are stored in their canonical display
// forms ("HH:MM:SS" and "<value> <unit>") as produced by the units
// package.
//
// Example:
//
//	cfg := &ClipConfig{FileNameFormat: "{title}.mp3"}
//	clip := NewClip(3, attr, "00:02:05", "2.50 MB", cfg)
//	// clip.Filename = "Ocean Waves.mp3"
type Clip struct {
	// Index is the clip's position in the library, assigned by the
	// store at add time.
	Index int `json:"index"`

	// SongName is the song title.
	SongName string `json:"song_name"`

	// Artist is the artist name.
	Artist string `json:"artist"`

	// ArtistLink is the artist's URL.
	ArtistLink string `json:"artist_link"`

	// Duration is the clip length in "HH:MM:SS" form.
	Duration string `json:"duration"`

	// Filename is the clip's file name inside the library directory.
	Filename string `json:"filename"`

	// FileSize is the clip's size in formatted "<value> <unit>" form.
	FileSize string `json:"file_size"`

	// Licenses are the license lines from the clip's attribution block.
	Licenses []string `json:"licenses"`

	// Genres are free-text genre tags.
	Genres []string `json:"genres"`

	// Moods are free-text mood tags.
	Moods []string `json:"moods"`
}

// ClipConfig holds clip file naming settings.
//
// The FileNameFormat supports placeholders replaced with clip values:
//   - {title} - Song name
//   - {artist} - Artist name
//   - {index} - Library index (2 digits, zero-padded)
//
// Example:
//
//	cfg := &ClipConfig{FileNameFormat: "{index} {artist} - {title}.mp3"}
//	// Results in filenames like "07 Jane Doe - Ocean Waves.mp3"
type ClipConfig struct {
	// FileNameFormat is the template for clip filenames.
	// Must include the file extension.
	FileNameFormat string
}

// NewClip creates a Clip from an attribution record and probed file
// facts, computing the library filename from the config template.
//
// Invalid filename characters in the rendered name are replaced with
// underscores.
func NewClip(index int, attr *Attribution, duration, fileSize string, cfg *ClipConfig) *Clip {
	clip := &Clip{
		Index:      index,
		SongName:   attr.SongName,
		Artist:     attr.ArtistName,
		ArtistLink: attr.ArtistLink,
		Duration:   duration,
		FileSize:   fileSize,
		Licenses:   attr.Licenses,
		Genres:     []string{},
		Moods:      []string{},
	}

	clip.Filename = clip.parseFileName(cfg)

	return clip
}

// parseFileName computes the filename from the config template.
func (c *Clip) parseFileName(cfg *ClipConfig) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{title}", c.SongName)
	fileName = strings.ReplaceAll(fileName, "{artist}", c.Artist)
	fileName = strings.ReplaceAll(fileName, "{index}", fmt.Sprintf("%02d", c.Index))
	return sanitizeFileName(fileName)
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
