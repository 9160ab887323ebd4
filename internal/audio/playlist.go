package audio

import (
	"fmt"
	"strings"

	"github.com/ljosdal/clipshelf/internal/model"
	"github.com/ljosdal/clipshelf/internal/units"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	// INI-style format with file, title, and length info.
	FormatPLS
)

// Extension returns the file extension for the playlist format, including the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case FormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// PlaylistCreator generates playlist files for clip selections.
//
// PlaylistCreator takes an ordered clip selection and generates a
// playlist referencing the clips by filename, assuming the playlist
// file sits in the library directory next to the clips.
//
// Example:
//
//	// Create M3U playlist with extended info
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(store.All())
//	os.WriteFile(playlistPath, []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:125,Jane Doe - Ocean Waves
//	// Ocean Waves.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Extension returns the file extension for the creator's format,
// including the dot.
func (p *PlaylistCreator) Extension() string {
	return p.format.Extension()
}

// CreatePlaylist generates playlist content for a clip selection.
//
// Returns the playlist as a string, ready to be written to a file.
// Clip durations are taken from the records' "HH:MM:SS" strings; a
// record whose duration fails to parse is listed with length 0 rather
// than dropped.
func (p *PlaylistCreator) CreatePlaylist(clips []model.Clip) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(clips)
	default:
		return p.createM3U(clips)
	}
}

// clipSeconds returns a clip's duration in whole seconds, or 0 when the
// record's duration string is malformed.
func clipSeconds(clip *model.Clip) int {
	seconds, err := units.ParseDuration(clip.Duration)
	if err != nil {
		return 0
	}
	return seconds
}

// createM3U generates an M3U playlist.
//
// Standard M3U format:
//
//	filename1.mp3
//	filename2.mp3
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:125,Artist - Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(clips []model.Clip) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for i := range clips {
		clip := &clips[i]
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s - %s\n", clipSeconds(clip), clip.Artist, clip.SongName))
		}
		sb.WriteString(clip.Filename + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Song Title
//	Length1=125
//	NumberOfEntries=2
//	Version=2
func (p *PlaylistCreator) createPLS(clips []model.Clip) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i := range clips {
		clip := &clips[i]
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, clip.Filename))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, clip.SongName))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, clipSeconds(clip)))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(clips)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
