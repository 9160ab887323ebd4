// Package model defines the core data structures used throughout
// clipshelf.
//
// # Attribution
//
// Attribution is the result of parsing one pasted text block:
//
//	attr := &model.Attribution{
//	    SongName:   "Ocean Waves",
//	    ArtistName: "Jane Doe",
//	    ArtistLink: "http://example.com/jane",
//	    Licenses:   []string{"CC-BY 4.0"},
//	}
//
// # Clip
//
// Clip is one record in the persisted library. Its JSON tags are the
// on-disk record shape:
//
//	clip := model.NewClip(0, attr, "00:02:05", "2.50 MB", cfg)
//	fmt.Println(clip.Filename) // Where the clip lives in the library dir
//
// # File Naming
//
// ClipConfig controls how clip filenames are computed using placeholders:
//
//	cfg := &model.ClipConfig{FileNameFormat: "{title}.mp3"}
//
// Available placeholders: {title}, {artist}, {index}
package model
