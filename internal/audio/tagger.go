package audio

import (
	"os"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/ljosdal/clipshelf/internal/model"
)

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value (sets to empty string).
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the clip record.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// This allows fine-grained control over which tags are written when an
// MP3 clip is imported into the library.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Title:      TagModify,      // Write the parsed song name
//	    Artist:     TagModify,      // Write the parsed artist
//	    Genre:      TagDoNotModify, // Keep whatever the file carried
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no string tags are modified.
	ModifyTags bool

	// Title controls the TIT2 (Title) frame.
	Title TagEditAction

	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Genre controls the TCON (Genre) frame.
	Genre TagEditAction

	// ArtistLink controls the comment frame carrying the artist URL.
	ArtistLink TagEditAction

	// Licenses controls the comment frame carrying the license lines.
	Licenses TagEditAction
}

// DefaultTagConfig returns the default tag configuration.
//
// By default the title, artist, artist link, and licenses are written
// from the clip record; the genre the file carried is kept.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Title:      TagModify,
		Artist:     TagModify,
		Genre:      TagDoNotModify,
		ArtistLink: TagModify,
		Licenses:   TagModify,
	}
}

// Tagger writes ID3 tags to MP3 clip files.
//
// Tagger uses the id3v2 library to record the clip's attribution in the
// file itself, so the metadata travels with the audio:
//   - Title and Artist
//   - Artist link (comment frame, description "Artist link")
//   - Licenses (comment frame, description "Licenses", one per line)
//   - Cover art (attached picture)
//
// Only MP3 files are tagged; other formats are left untouched.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SaveTags(clip, "/music/ClipShelf/Ocean Waves.mp3", artworkBytes)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the clip's MP3 file.
//
// This method:
//  1. Opens the existing MP3 file (or creates empty tags if none exist)
//  2. Updates string tags based on TagConfig settings
//  3. Embeds cover art if artwork bytes are provided
//  4. Saves the modified tags to the file
//
// Parameters:
//   - clip: The clip record (provides title, artist, link, licenses)
//   - path: Path to the MP3 file
//   - artwork: JPEG image bytes for cover art (nil to skip artwork)
//
// Returns an error if the file cannot be opened or saved.
func (t *Tagger) SaveTags(clip *model.Clip, path string, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		// If file doesn't have tags, create new
		if os.IsNotExist(err) {
			tag = id3v2.NewEmptyTag()
		} else {
			return err
		}
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateStringTags(tag, clip)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateStringTags updates text-based ID3 frames based on configuration.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, clip *model.Clip) {
	// Title (TIT2)
	switch t.config.Title {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(clip.SongName)
	}

	// Artist (TPE1)
	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(clip.Artist)
	}

	// Genre (TCON) - from the record's first genre tag
	switch t.config.Genre {
	case TagEmpty:
		tag.SetGenre("")
	case TagModify:
		if len(clip.Genres) > 0 {
			tag.SetGenre(clip.Genres[0])
		}
	}

	// Artist link (COMM, description "Artist link")
	switch t.config.ArtistLink {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Comments"))
	case TagModify:
		if clip.ArtistLink != "" {
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    "eng",
				Description: "Artist link",
				Text:        clip.ArtistLink,
			})
		}
	}

	// Licenses (COMM, description "Licenses", one per line)
	if t.config.Licenses == TagModify && len(clip.Licenses) > 0 {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "eng",
			Description: "Licenses",
			Text:        strings.Join(clip.Licenses, "\n"),
		})
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	// Remove any existing cover pictures
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	// Add new artwork as front cover (APIC frame)
	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
