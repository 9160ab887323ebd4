package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	ioutils "github.com/ljosdal/clipshelf/internal/io"
)

// resampleQuality is the beep resampler quality used when a source
// clip's sample rate differs from the mix format. 4 is beep's
// recommended middle ground between speed and fidelity.
const resampleQuality = 4

// Concatenator joins audio clips back to back into one exported track.
//
// The clips are decoded in selection order and streamed into a single
// WAV file. The first clip fixes the output format; later clips with a
// different sample rate are resampled to match.
//
// Example:
//
//	concat := audio.NewConcatenator()
//	out, err := concat.Export(ctx, []string{"a.mp3", "b.wav"}, "/music/mix.wav")
//	// out may be "/music/mix (1).wav" if mix.wav already existed
type Concatenator struct{}

// NewConcatenator creates a new Concatenator.
func NewConcatenator() *Concatenator {
	return &Concatenator{}
}

// Export concatenates the given audio files, in order, into a WAV file.
//
// The destination is resolved with ioutils.UniquePath, so an existing
// file at outPath is never overwritten; the actually written path is
// returned. At least one input file is required.
//
// The whole selection is decoded and re-encoded synchronously; ctx is
// checked between files, so a cancelled export stops after the clip it
// is currently writing.
func (c *Concatenator) Export(ctx context.Context, paths []string, outPath string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no files selected for export")
	}

	streamers := make([]beep.Streamer, 0, len(paths))
	var mixFormat beep.Format

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		streamer, format, err := decodeFile(path)
		if err != nil {
			return "", fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
		}
		defer streamer.Close()

		if i == 0 {
			mixFormat = format
			streamers = append(streamers, streamer)
			continue
		}

		if format.SampleRate != mixFormat.SampleRate {
			streamers = append(streamers, beep.Resample(resampleQuality, format.SampleRate, mixFormat.SampleRate, streamer))
		} else {
			streamers = append(streamers, streamer)
		}
	}

	dest := ioutils.UniquePath(outPath)
	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}

	if err := wav.Encode(out, beep.Seq(streamers...), mixFormat); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("encoding %s: %w", filepath.Base(dest), err)
	}

	if err := out.Close(); err != nil {
		return "", err
	}

	return dest, nil
}
