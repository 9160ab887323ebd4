// Package textblock parses pasted attribution text blocks into song
// metadata.
//
// Free audio sites hand out attribution snippets shaped like:
//
//	Ocean Waves by Jane Doe | http://example.com/jane
//	CC-BY 4.0
//	CC0
//
// The first line is the header: song name, " by ", artist name, " | ",
// artist link. Up to three lines after it are license designations.
// Blocks in a file are separated by a blank line.
//
// # Parsing
//
//	parser := textblock.NewParser()
//	attr, err := parser.ParseBlock(pasted)
//
// A header missing either separator fails with *ParseError; the block
// is rejected as a whole.
//
// # Block files
//
//	blocks, err := textblock.ReadBlocks("downloads.txt")
//	err = textblock.WriteFirstLines(blocks, "digest.txt")
package textblock
