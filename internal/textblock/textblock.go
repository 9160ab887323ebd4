package textblock

import (
	"fmt"
	"os"
	"strings"

	"github.com/ljosdal/clipshelf/internal/model"
)

const (
	// artistSeparator splits the song name from the artist part of a
	// block's header line.
	artistSeparator = " by "

	// linkSeparator splits the artist name from the artist link.
	linkSeparator = " | "

	// maxLicenseLines is how many lines after the header are collected
	// as licenses.
	maxLicenseLines = 3
)

// ParseError reports a text block whose header line lacks a required
// separator.
//
// ParseError is a deterministic validation failure: the block is
// rejected as a whole and no partial Attribution is produced. Callers
// presenting blocks pasted by a user should surface the error rather
// than silently dropping the block.
type ParseError struct {
	// Line is the header line that failed to parse.
	Line string

	// MissingSeparator is the literal separator that was not found.
	MissingSeparator string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("text block header %q is missing %q", e.Line, e.MissingSeparator)
}

// Parser parses pasted attribution text blocks into model.Attribution
// records.
//
// A block is a chunk of text whose first line has the fixed shape
//
//	<song> by <artist> | <link>
//
// with up to three following license lines. Blocks in a file are
// separated by a blank line.
//
// Example usage:
//
//	parser := textblock.NewParser()
//
//	attr, err := parser.ParseBlock("Ocean Waves by Jane Doe | http://example.com/jane\nCC-BY 4.0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s by %s\n", attr.SongName, attr.ArtistName)
type Parser struct {
	// DropBlankLicenses filters empty license lines instead of
	// preserving them as empty-string entries. Off by default to match
	// the historical behavior of keeping blank trailing lines.
	DropBlankLicenses bool
}

// NewParser creates a Parser with default options.
func NewParser() *Parser {
	return &Parser{}
}

// ParseBlock extracts song metadata from one attribution text block.
//
// The block is trimmed and split into lines. The first line must
// contain " by " followed by " | "; the three substrings around the
// separators become the song name, artist name, and artist link, each
// trimmed. The separators are matched at their first occurrence, so a
// song title containing " by " is attributed to the wrong side - the
// header format does not allow escaping.
//
// Up to three lines after the header are collected in order as
// licenses. With DropBlankLicenses unset, blank lines among them are
// preserved as empty entries.
//
// Returns a *ParseError if the header lacks either separator. Header
// fields that are empty after trimming are returned as empty strings,
// not rejected.
func (p *Parser) ParseBlock(text string) (*model.Attribution, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	header := lines[0]
	song, rest, found := strings.Cut(header, artistSeparator)
	if !found {
		return nil, &ParseError{Line: header, MissingSeparator: artistSeparator}
	}

	artist, link, found := strings.Cut(rest, linkSeparator)
	if !found {
		return nil, &ParseError{Line: header, MissingSeparator: linkSeparator}
	}

	licenseLines := lines[1:]
	if len(licenseLines) > maxLicenseLines {
		licenseLines = licenseLines[:maxLicenseLines]
	}

	licenses := make([]string, 0, len(licenseLines))
	for _, line := range licenseLines {
		line = strings.TrimSpace(line)
		if line == "" && p.DropBlankLicenses {
			continue
		}
		licenses = append(licenses, line)
	}

	return &model.Attribution{
		SongName:   strings.TrimSpace(song),
		ArtistName: strings.TrimSpace(artist),
		ArtistLink: strings.TrimSpace(link),
		Licenses:   licenses,
	}, nil
}

// ReadBlocks reads a file containing attribution blocks separated by
// blank lines and returns the raw blocks.
//
// The file is split on double line breaks; individual blocks are not
// validated here. Parse each one with ParseBlock.
func ReadBlocks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n"), nil
}

// WriteFirstLines writes the first line of each block to a file, one
// per line, overwriting it if it exists. Blocks whose first line is
// blank after trimming are skipped.
//
// This produces a digest of block headers, useful for a quick listing
// of which songs a blocks file covers.
func WriteFirstLines(blocks []string, path string) error {
	var sb strings.Builder
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		first := strings.TrimSpace(lines[0])
		if first != "" {
			sb.WriteString(first)
			sb.WriteString("\n")
		}
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
