// Package library persists the clip collection as a flat JSON file.
//
// The store holds an ordered list of clip records and owns the file
// backing it:
//
//	store := library.NewStore(path)
//	store.Load()
//	for _, clip := range store.All() {
//	    fmt.Println(clip.SongName)
//	}
//
// Indexes are assigned at Add time and equal the record's position in
// the file. A missing or corrupt library file loads as an empty store.
package library
