package library

import (
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/ljosdal/clipshelf/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is the clip library: an in-memory list of records backed by a
// flat JSON file.
//
// Store is an explicit object passed to whoever needs it; there is no
// package-level library state. The persisted file is an ordered JSON
// array of clip records (see model.Clip for the field set).
//
// Example usage:
//
//	store := library.NewStore("/home/user/.config/clipshelf/library.json")
//	if err := store.Load(); err != nil {
//	    log.Fatal(err)
//	}
//
//	store.Add(clip)        // assigns clip.Index
//	err := store.Save()
//
// Store serializes its own access and is safe for concurrent use.
type Store struct {
	path  string
	clips []model.Clip
	mu    sync.RWMutex
}

// NewStore creates a Store backed by the given file path. The file is
// not touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the library file into memory.
//
// A missing, empty, or unparseable file is not an error: the store
// starts empty, matching how a fresh installation behaves.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.clips = nil
		return nil
	}

	var clips []model.Clip
	if err := json.Unmarshal(data, &clips); err != nil {
		s.clips = nil
		return nil
	}

	s.clips = clips
	return nil
}

// Save writes the library to disk as an indented JSON array, creating
// parent directories as needed.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	clips := s.clips
	if clips == nil {
		clips = []model.Clip{}
	}

	data, err := json.MarshalIndent(clips, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Add appends a clip to the library, assigning it the next index.
// The store is not saved automatically; call Save.
func (s *Store) Add(clip *model.Clip) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clip.Index = len(s.clips)
	s.clips = append(s.clips, *clip)
}

// All returns a copy of every clip record in insertion order.
func (s *Store) All() []model.Clip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clips := make([]model.Clip, len(s.clips))
	copy(clips, s.clips)
	return clips
}

// Len returns the number of clips in the library.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clips)
}

// NextIndex returns the index the next added clip will receive.
func (s *Store) NextIndex() int {
	return s.Len()
}
