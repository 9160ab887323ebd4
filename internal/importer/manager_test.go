package importer

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljosdal/clipshelf/internal/config"
	"github.com/ljosdal/clipshelf/internal/library"
)

const sampleBlock = `My Song by Some Artist | https://example.com/artist
License: CC BY 3.0
https://example.com/license`

// writeWAV writes a 16-bit PCM mono WAV with numSamples samples at
// sampleRate.
func writeWAV(t *testing.T, path string, sampleRate, numSamples int) {
	t.Helper()

	var data bytes.Buffer
	for i := 0; i < numSamples; i++ {
		sample := int16(8000 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
		binary.Write(&data, binary.LittleEndian, sample)
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func testManager(t *testing.T) (*Manager, *config.Settings, *library.Store) {
	t.Helper()

	root := t.TempDir()
	settings := config.DefaultSettings()
	settings.LibraryDir = filepath.Join(root, "library")
	settings.LibraryFile = filepath.Join(root, "library.json")
	settings.ExportDir = filepath.Join(root, "mixes")
	settings.EmbedArtwork = false

	store := library.NewStore(settings.LibraryFile)
	require.NoError(t, store.Load())

	return NewManager(settings, store, nil), settings, store
}

func TestImportClip(t *testing.T) {
	manager, settings, store := testManager(t)

	src := filepath.Join(t.TempDir(), "download.wav")
	writeWAV(t, src, 8000, 8000) // one second

	clip, err := manager.ImportClip(context.Background(), sampleBlock, src, "")
	require.NoError(t, err)

	assert.Equal(t, 0, clip.Index)
	assert.Equal(t, "My Song", clip.SongName)
	assert.Equal(t, "Some Artist", clip.Artist)
	assert.Equal(t, "https://example.com/artist", clip.ArtistLink)
	assert.Equal(t, "00:00:01", clip.Duration)
	assert.Len(t, clip.Licenses, 2)

	// The source was a WAV, so the templated .mp3 extension is replaced.
	assert.Equal(t, "My Song.wav", clip.Filename)
	assert.FileExists(t, filepath.Join(settings.LibraryDir, clip.Filename))
	assert.NoFileExists(t, src, "source should be moved, not copied")

	assert.FileExists(t, settings.LibraryFile)
	assert.Equal(t, 1, store.Len())
}

func TestImportClip_MalformedBlock(t *testing.T) {
	manager, settings, _ := testManager(t)

	src := filepath.Join(t.TempDir(), "download.wav")
	writeWAV(t, src, 8000, 800)

	_, err := manager.ImportClip(context.Background(), "no separators here", src, "")
	assert.Error(t, err)
	assert.FileExists(t, src, "source must stay put when parsing fails")
	assert.NoFileExists(t, settings.LibraryFile)
}

func TestImportClip_DuplicateNamesGetCounter(t *testing.T) {
	manager, settings, _ := testManager(t)

	for i := 0; i < 2; i++ {
		src := filepath.Join(t.TempDir(), "download.wav")
		writeWAV(t, src, 8000, 800)
		_, err := manager.ImportClip(context.Background(), sampleBlock, src, "")
		require.NoError(t, err)
	}

	assert.FileExists(t, filepath.Join(settings.LibraryDir, "My Song.wav"))
	assert.FileExists(t, filepath.Join(settings.LibraryDir, "My Song (1).wav"))
}

func TestImportBatch(t *testing.T) {
	manager, _, store := testManager(t)

	srcDir := t.TempDir()
	writeWAV(t, filepath.Join(srcDir, "My Song.wav"), 8000, 800)

	blocksPath := filepath.Join(srcDir, "blocks.txt")
	blocks := sampleBlock + "\n\n" + "Missing Track by Nobody | https://example.com/n\nLicense: CC0"
	require.NoError(t, os.WriteFile(blocksPath, []byte(blocks), 0644))

	clips, err := manager.ImportBatch(context.Background(), blocksPath, srcDir)
	require.NoError(t, err)

	// The second block has no matching file and is skipped.
	require.Len(t, clips, 1)
	assert.Equal(t, "My Song", clips[0].SongName)
	assert.Equal(t, 1, store.Len())
}

func TestExportMix(t *testing.T) {
	manager, settings, _ := testManager(t)

	require.NoError(t, os.MkdirAll(settings.LibraryDir, 0755))
	writeWAV(t, filepath.Join(settings.LibraryDir, "a.wav"), 8000, 4000)
	writeWAV(t, filepath.Join(settings.LibraryDir, "b.wav"), 8000, 4000)

	out, err := manager.ExportMix(context.Background(), []string{"a.wav", "b.wav"}, "my mix")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(settings.ExportDir, "my mix.wav"), out)
	assert.FileExists(t, out)
}

func TestExportMix_UnsupportedFormat(t *testing.T) {
	manager, settings, _ := testManager(t)
	settings.ExportFormat = "mp3"

	_, err := manager.ExportMix(context.Background(), []string{"a.wav"}, "mix")
	assert.Error(t, err)
}

func TestExportMix_WritesPlaylist(t *testing.T) {
	manager, settings, _ := testManager(t)
	settings.CreatePlaylist = true

	require.NoError(t, os.MkdirAll(settings.LibraryDir, 0755))
	writeWAV(t, filepath.Join(settings.LibraryDir, "a.wav"), 8000, 800)

	_, err := manager.ExportMix(context.Background(), []string{"a.wav"}, "night mix")
	require.NoError(t, err)

	playlist := filepath.Join(settings.LibraryDir, "night mix.m3u")
	require.FileExists(t, playlist)
	data, err := os.ReadFile(playlist)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a.wav")
}

func TestRandomMix_NotEnoughClips(t *testing.T) {
	manager, settings, _ := testManager(t)

	require.NoError(t, os.MkdirAll(settings.LibraryDir, 0755))
	writeWAV(t, filepath.Join(settings.LibraryDir, "a.wav"), 8000, 800)

	_, err := manager.RandomMix(context.Background(), 5, "mix")
	assert.Error(t, err)
}

func TestRandomMix(t *testing.T) {
	manager, _, _ := testManager(t)

	dir := t.TempDir()
	for _, name := range []string{"a.wav", "b.wav", "c.wav"} {
		writeWAV(t, filepath.Join(dir, name), 8000, 800)
	}
	manager.settings.LibraryDir = dir

	out, err := manager.RandomMix(context.Background(), 2, "random mix")
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestProgressEvents(t *testing.T) {
	var events []ProgressEvent
	manager, _, _ := testManager(t)
	manager.onProgress = func(e ProgressEvent) { events = append(events, e) }

	src := filepath.Join(t.TempDir(), "download.wav")
	writeWAV(t, src, 8000, 800)

	_, err := manager.ImportClip(context.Background(), sampleBlock, src, "")
	require.NoError(t, err)

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, LevelSuccess, last.Level)
	assert.Contains(t, last.Message, "My Song")
}
