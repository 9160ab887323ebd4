// Package importer drives the clip import and mix export workflows.
//
// The Manager ties the other packages together: textblock parsing,
// audio probing, file placement, ID3 tagging, the library store, and
// concatenated exports. Front ends construct one Manager and receive
// progress updates through a callback:
//
//	manager := importer.NewManager(settings, store, func(e importer.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	clip, err := manager.ImportClip(ctx, block, "/downloads/intro.mp3", "")
package importer
