package audio

import (
	"strings"
	"testing"

	"github.com/ljosdal/clipshelf/internal/model"
)

func testClips() []model.Clip {
	return []model.Clip{
		{
			Index:    0,
			SongName: "Ocean Waves",
			Artist:   "Jane Doe",
			Duration: "00:02:05",
			Filename: "Ocean Waves.mp3",
		},
		{
			Index:    1,
			SongName: "Forest Rain",
			Artist:   "John Roe",
			Duration: "00:03:20",
			Filename: "Forest Rain.wav",
		},
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist(testClips())

	if strings.HasPrefix(content, "#EXTM3U") {
		t.Error("plain M3U should not start with #EXTM3U")
	}
	if !strings.Contains(content, "Ocean Waves.mp3") {
		t.Error("M3U should contain clip filename")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist(testClips())

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:125,Jane Doe - Ocean Waves") {
		t.Errorf("Extended M3U should carry parsed durations, got:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:200,John Roe - Forest Rain") {
		t.Errorf("Extended M3U should carry parsed durations, got:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist(testClips())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=Ocean Waves.mp3") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "Length2=200") {
		t.Error("PLS should contain parsed lengths")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_MalformedDuration(t *testing.T) {
	clips := []model.Clip{{SongName: "Broken", Artist: "X", Duration: "oops", Filename: "b.mp3"}}

	content := NewPlaylistCreator(FormatM3U, true).CreatePlaylist(clips)

	if !strings.Contains(content, "#EXTINF:0,X - Broken") {
		t.Errorf("malformed duration should fall back to 0, got:\n%s", content)
	}
	if !strings.Contains(content, "b.mp3") {
		t.Error("clip with malformed duration should still be listed")
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	if FormatM3U.Extension() != ".m3u" {
		t.Errorf("M3U extension = %q", FormatM3U.Extension())
	}
	if FormatPLS.Extension() != ".pls" {
		t.Errorf("PLS extension = %q", FormatPLS.Extension())
	}
}
