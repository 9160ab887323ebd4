package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ljosdal/clipshelf/internal/audio"
	"github.com/ljosdal/clipshelf/internal/config"
	"github.com/ljosdal/clipshelf/internal/fetch"
	ioutils "github.com/ljosdal/clipshelf/internal/io"
	"github.com/ljosdal/clipshelf/internal/library"
	"github.com/ljosdal/clipshelf/internal/model"
	"github.com/ljosdal/clipshelf/internal/textblock"
	"github.com/ljosdal/clipshelf/internal/units"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an import/export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates clip imports and mix exports.
//
// A Manager owns the flow from pasted attribution block to library
// record: parse, probe, move the file into the library directory under
// its computed name, tag it, and persist the record. It also drives the
// reverse direction, concatenating library selections into exported
// mixes.
type Manager struct {
	settings     *config.Settings
	store        *library.Store
	parser       *textblock.Parser
	tagger       *audio.Tagger
	concat       *audio.Concatenator
	playlist     *audio.PlaylistCreator
	fetcher      *fetch.Client
	imageService *ioutils.ImageService

	onProgress func(ProgressEvent)
}

// NewManager creates a new import/export Manager around a loaded store.
func NewManager(settings *config.Settings, store *library.Store, onProgress func(ProgressEvent)) *Manager {
	var playlistFormat audio.PlaylistFormat
	switch settings.PlaylistFormat {
	case "pls":
		playlistFormat = audio.FormatPLS
	default:
		playlistFormat = audio.FormatM3U
	}

	tagConfig := audio.DefaultTagConfig()
	tagConfig.ModifyTags = settings.ModifyTags

	return &Manager{
		settings:     settings,
		store:        store,
		parser:       &textblock.Parser{DropBlankLicenses: settings.DropBlankLicenses},
		tagger:       audio.NewTagger(tagConfig),
		concat:       audio.NewConcatenator(),
		playlist:     audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		fetcher:      fetch.NewClient(),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// ImportClip adds one clip to the library.
//
// The attribution block is parsed, the source file probed for duration
// and size, and the file moved into the library directory under the
// configured filename template (with a counter suffix if the name is
// taken). MP3 clips get the attribution written into their ID3 tags.
// The record is appended to the store and the store saved.
//
// artworkSource is optional: a local image path or an http(s) URL to
// embed as cover art. Pass "" for none.
//
// A malformed block or unreadable source fails the import as a whole;
// nothing is moved or recorded.
func (m *Manager) ImportClip(ctx context.Context, block, srcPath, artworkSource string) (*model.Clip, error) {
	attr, err := m.parser.ParseBlock(block)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot parse block: %v", err), Level: LevelError})
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Probing %s", filepath.Base(srcPath)), Level: LevelVerbose})
	info, err := audio.Probe(srcPath)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot probe %s: %v", srcPath, err), Level: LevelError})
		return nil, err
	}

	return m.importProbed(ctx, attr, info, srcPath, artworkSource)
}

// importProbed places a parsed and probed clip into the library.
func (m *Manager) importProbed(ctx context.Context, attr *model.Attribution, info audio.Info, srcPath, artworkSource string) (*model.Clip, error) {
	clip := model.NewClip(
		m.store.NextIndex(),
		attr,
		units.FormatDuration(int(info.Seconds)),
		units.FormatSize(float64(info.SizeBytes)),
		m.settings.ToClipConfig(),
	)
	if info.Genre != "" {
		clip.Genres = append(clip.Genres, info.Genre)
	}

	// The template keeps the source extension meaningful only for mp3;
	// carry over whatever the source actually is.
	if ext := strings.ToLower(filepath.Ext(srcPath)); filepath.Ext(clip.Filename) != ext {
		clip.Filename = strings.TrimSuffix(clip.Filename, filepath.Ext(clip.Filename)) + ext
	}

	if err := ioutils.EnsureDir(m.settings.LibraryDir); err != nil {
		return nil, err
	}

	dest := ioutils.UniquePath(filepath.Join(m.settings.LibraryDir, clip.Filename))
	clip.Filename = filepath.Base(dest)

	if err := moveFile(ctx, srcPath, dest); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot move %s: %v", srcPath, err), Level: LevelError})
		return nil, err
	}

	artwork := m.loadArtwork(ctx, artworkSource)

	if strings.EqualFold(filepath.Ext(dest), ".mp3") && (m.settings.ModifyTags || artwork != nil) {
		if err := m.tagger.SaveTags(clip, dest, artwork); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", clip.Filename, err), Level: LevelWarning})
		}
	}

	m.store.Add(clip)
	if err := m.store.Save(); err != nil {
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Added: %s - %s (%s)", clip.Artist, clip.SongName, clip.Duration), Level: LevelSuccess})
	return clip, nil
}

// ImportBatch imports every attribution block of a blocks file, looking
// up each block's audio file by song name in dir.
//
// Blocks are parsed and their files probed concurrently (bounded by
// MaxConcurrentProbes); records are then added in block order so that
// indexes stay deterministic. Blocks that fail to parse or match are
// reported and skipped, not fatal.
func (m *Manager) ImportBatch(ctx context.Context, blocksPath, dir string) ([]*model.Clip, error) {
	blocks, err := textblock.ReadBlocks(blocksPath)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		attr    *model.Attribution
		info    audio.Info
		srcPath string
	}
	candidates := make([]*candidate, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentProbes)

	for i, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		i, block := i, block
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			attr, err := m.parser.ParseBlock(block)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping block %d: %v", i+1, err), Level: LevelWarning})
				return nil
			}

			srcPath, err := findAudioFile(dir, attr.SongName)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %q: %v", attr.SongName, err), Level: LevelWarning})
				return nil
			}

			info, err := audio.Probe(srcPath)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %q: %v", attr.SongName, err), Level: LevelWarning})
				return nil
			}

			candidates[i] = &candidate{attr: attr, info: info, srcPath: srcPath}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var clips []*model.Clip
	for _, c := range candidates {
		if c == nil {
			continue
		}
		clip, err := m.importProbed(ctx, c.attr, c.info, c.srcPath, "")
		if err != nil {
			continue // already reported
		}
		clips = append(clips, clip)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Imported %d of %d blocks", len(clips), len(blocks)), Level: LevelInfo})
	return clips, nil
}

// ExportMix concatenates the named library clips, in order, into a
// single track under the export directory and returns the written path.
//
// filenames are clip filenames as recorded in the library. When
// CreatePlaylist is set, a playlist for the selection is written next
// to the clips as well.
func (m *Manager) ExportMix(ctx context.Context, filenames []string, outName string) (string, error) {
	if m.settings.ExportFormat != "wav" {
		return "", fmt.Errorf("unsupported export format %q", m.settings.ExportFormat)
	}

	paths := make([]string, len(filenames))
	for i, name := range filenames {
		paths[i] = filepath.Join(m.settings.LibraryDir, name)
	}

	if err := ioutils.EnsureDir(m.settings.ExportDir); err != nil {
		return "", err
	}

	if !strings.EqualFold(filepath.Ext(outName), ".wav") {
		outName += ".wav"
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Exporting %d clips", len(filenames)), Level: LevelInfo})

	out, err := m.concat.Export(ctx, paths, filepath.Join(m.settings.ExportDir, ioutils.SanitizeFileName(outName)))
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Export failed: %v", err), Level: LevelError})
		return "", err
	}

	if m.settings.CreatePlaylist {
		if err := m.writeSelectionPlaylist(ctx, filenames, outName); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Exported: %s", out), Level: LevelSuccess})
	return out, nil
}

// RandomMix exports a mix of n clips picked at random from the library
// directory.
func (m *Manager) RandomMix(ctx context.Context, n int, outName string) (string, error) {
	files, err := ioutils.RandomSample(m.settings.LibraryDir, n)
	if err != nil {
		return "", err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Picked %s", strings.Join(files, ", ")), Level: LevelVerbose})
	return m.ExportMix(ctx, files, outName)
}

// writeSelectionPlaylist renders a playlist for the selected clips into
// the library directory, named after the mix.
func (m *Manager) writeSelectionPlaylist(ctx context.Context, filenames []string, outName string) error {
	byFilename := make(map[string]model.Clip)
	for _, clip := range m.store.All() {
		byFilename[clip.Filename] = clip
	}

	var selection []model.Clip
	for _, name := range filenames {
		if clip, ok := byFilename[name]; ok {
			selection = append(selection, clip)
		} else {
			// Clips picked straight from the directory may predate the
			// library records; list them with what we know.
			selection = append(selection, model.Clip{SongName: name, Filename: name})
		}
	}

	content := m.playlist.CreatePlaylist(selection)
	base := strings.TrimSuffix(outName, filepath.Ext(outName))
	path := filepath.Join(m.settings.LibraryDir, ioutils.SanitizeFileName(base)+m.playlist.Extension())

	return ioutils.WriteFile(ctx, path, []byte(content))
}

// loadArtwork resolves an artwork source (local path or URL) to
// embeddable JPEG bytes, applying the configured resize/convert steps.
// Failures are reported and swallowed; artwork is never load-bearing.
func (m *Manager) loadArtwork(ctx context.Context, source string) []byte {
	if source == "" || !m.settings.EmbedArtwork {
		return nil
	}

	var data []byte
	var err error
	if fetch.IsURL(source) {
		data, err = m.fetcher.Get(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error loading artwork %s: %v", source, err), Level: LevelWarning})
		return nil
	}

	if m.settings.ArtworkMaxSize > 0 {
		if resized, err := m.imageService.ResizeImage(ctx, data, m.settings.ArtworkMaxSize, m.settings.ArtworkMaxSize); err == nil {
			data = resized
		}
	}
	if m.settings.ConvertArtworkToJPG {
		if converted, err := m.imageService.ConvertToJPEG(ctx, data); err == nil {
			data = converted
		}
	}

	return data
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// two sit on different filesystems.
func moveFile(ctx context.Context, src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := ioutils.CopyFile(ctx, src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// findAudioFile locates the audio file for a song name inside dir,
// trying each recognized extension against the raw and sanitized name.
func findAudioFile(dir, songName string) (string, error) {
	names := []string{songName, ioutils.SanitizeFileName(songName)}
	for _, name := range names {
		for _, ext := range []string{".mp3", ".wav", ".flac", ".ogg"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("no audio file found for %q in %s", songName, dir)
}

// progress emits a progress event to the registered callback.
func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
