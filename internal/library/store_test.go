package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ljosdal/clipshelf/internal/model"
	"github.com/stretchr/testify/assert"
)

func testClip(name string) *model.Clip {
	return &model.Clip{
		SongName:   name,
		Artist:     "Jane Doe",
		ArtistLink: "http://example.com/jane",
		Duration:   "00:02:05",
		Filename:   name + ".mp3",
		FileSize:   "2.50 MB",
		Licenses:   []string{"CC-BY 4.0"},
		Genres:     []string{},
		Moods:      []string{},
	}
}

func TestStore_AddAssignsIndexes(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "library.json"))

	a := testClip("A")
	b := testClip("B")
	store.Add(a)
	store.Add(b)

	assert.Equal(t, 0, a.Index)
	assert.Equal(t, 1, b.Index)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, store.NextIndex())
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")

	s1 := NewStore(path)
	s1.Add(testClip("Ocean Waves"))
	s1.Add(testClip("Forest Rain"))
	assert.NoError(t, s1.Save())

	s2 := NewStore(path)
	assert.NoError(t, s2.Load())

	clips := s2.All()
	assert.Len(t, clips, 2)
	assert.Equal(t, "Ocean Waves", clips[0].SongName)
	assert.Equal(t, 0, clips[0].Index)
	assert.Equal(t, "Forest Rain", clips[1].SongName)
	assert.Equal(t, 1, clips[1].Index)
	assert.Equal(t, []string{"CC-BY 4.0"}, clips[0].Licenses)
}

func TestStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "library.json")

	store := NewStore(path)
	store.Add(testClip("A"))
	assert.NoError(t, store.Save())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	assert.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path)
	assert.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())
}

func TestStore_SaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")

	store := NewStore(path)
	assert.NoError(t, store.Save())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "library.json"))
	store.Add(testClip("A"))

	clips := store.All()
	clips[0].SongName = "mutated"

	assert.Equal(t, "A", store.All()[0].SongName)
}
