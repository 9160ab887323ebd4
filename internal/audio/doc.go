// Package audio handles the audio-file side of the clip library:
// probing, tagging, playlists, and concatenated export.
//
// # Probing
//
// Probe reads the facts the importer needs from a file on disk:
//
//	info, err := audio.Probe("clip.mp3")
//	// info.SizeBytes, info.Seconds, plus embedded Title/Genre if any
//
// Decoding is delegated to the beep codec packages, selected by file
// extension (.mp3, .wav, .flac, .ogg).
//
// # Export
//
// Concatenator joins a clip selection into a single WAV file:
//
//	concat := audio.NewConcatenator()
//	out, err := concat.Export(ctx, paths, "/music/mix.wav")
//
// # Tagging
//
// Tagger writes the parsed attribution into MP3 files as ID3 frames so
// the metadata travels with the audio:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(clip, clipPath, artwork)
//
// # Playlists
//
// PlaylistCreator renders a clip selection as an M3U or PLS playlist.
package audio
