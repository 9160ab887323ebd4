// Package ioutils provides file system utilities for clipshelf.
//
// This package contains functions for:
//   - File copying
//   - File writing
//   - Filename sanitization
//   - Directory creation
//   - Unique path resolution
//   - Audio directory listing and sampling
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// audioExtensions are the clip file types the library recognizes.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - src: Source file path (must exist)
//   - dst: Destination file path (will be created/overwritten)
//
// Returns an error if:
//   - Source file cannot be opened
//   - Destination file cannot be created
//   - Copy operation fails
//
// Example:
//
//	err := CopyFile(ctx, "/path/to/source.mp3", "/path/to/dest.mp3")
func CopyFile(ctx context.Context, src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/music/playlist.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// This function ensures filenames are valid across different operating systems,
// particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("Track...")           // Returns "Track"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/music/ClipShelf")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// UniquePath returns a path that does not collide with an existing file.
//
// If path does not exist it is returned unchanged. Otherwise a counter
// suffix is inserted before the extension - "clip.mp3" becomes
// "clip (1).mp3", then "clip (2).mp3", and so on - until a free path is
// found.
//
// The existence check and the caller's eventual file creation are not
// atomic: another process can claim the returned path in between.
// Callers that need atomicity must create the file with O_EXCL instead.
//
// Example:
//
//	// With "mix.wav" and "mix (1).wav" already on disk:
//	UniquePath("mix.wav") // Returns "mix (2).wav"
func UniquePath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	unique := path
	for counter := 1; exists(unique); counter++ {
		unique = fmt.Sprintf("%s (%d)%s", base, counter, ext)
	}

	return unique
}

// exists reports whether a file or directory is present at path.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListAudioFiles returns the names of the audio files (MP3, WAV, FLAC,
// OGG) directly inside a directory, in directory order.
//
// Subdirectories and files with other extensions are skipped. The
// returned names are bare filenames, not full paths.
func ListAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// RandomSample returns n distinct audio file names picked at random
// from a directory.
//
// Returns an error if the directory holds fewer than n audio files.
//
// Example:
//
//	files, err := RandomSample("/music/ClipShelf", 5)
func RandomSample(dir string, n int) ([]string, error) {
	files, err := ListAudioFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) < n {
		return nil, fmt.Errorf("directory %s has %d audio files, need %d", dir, len(files), n)
	}

	rand.Shuffle(len(files), func(i, j int) {
		files[i], files[j] = files[j], files[i]
	})

	return files[:n], nil
}
