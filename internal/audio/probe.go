package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Info holds the facts probed from an audio file on disk.
type Info struct {
	// SizeBytes is the file size.
	SizeBytes int64

	// Seconds is the decoded duration.
	Seconds float64

	// Title is the title from the file's own tags, if any.
	Title string

	// Genre is the genre from the file's own tags, if any.
	Genre string
}

// Probe reads the size, duration, and embedded tags of an audio file.
//
// The duration comes from decoding the stream with the codec matching
// the file extension (.mp3, .wav, .flac, .ogg). Embedded tags are read
// best-effort with the dhowden/tag sniffer; files without tags simply
// leave Title and Genre empty.
//
// Returns an error if the file cannot be opened, has an unsupported
// extension, or fails to decode.
func Probe(path string) (Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}

	streamer, format, err := decodeFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("probing %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	info := Info{
		SizeBytes: stat.Size(),
		Seconds:   float64(streamer.Len()) / float64(format.SampleRate),
	}

	// Tag read is best-effort; clips from sample packs often carry none.
	if file, err := os.Open(path); err == nil {
		defer file.Close()
		if meta, err := tag.ReadFrom(file); err == nil {
			info.Title = meta.Title()
			info.Genre = meta.Genre()
		}
	}

	return info, nil
}

// decodeFile opens an audio file and returns the decoder matching its
// extension.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	case ".flac":
		streamer, format, err = flac.Decode(file)
	case ".ogg":
		streamer, format, err = vorbis.Decode(file)
	default:
		file.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}

	if err != nil {
		file.Close()
		return nil, beep.Format{}, err
	}

	return streamer, format, nil
}
