package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ljosdal/clipshelf/internal/config"
	"github.com/ljosdal/clipshelf/internal/importer"
	"github.com/ljosdal/clipshelf/internal/library"
	"github.com/ljosdal/clipshelf/internal/textblock"
)

func main() {
	// Command line flags
	var (
		addFlag       = flag.String("add", "", "Audio file to add to the library")
		blockFlag     = flag.String("block", "", "Attribution block text for -add (default: read from stdin)")
		blockFileFlag = flag.String("block-file", "", "File holding the attribution block for -add")
		artworkFlag   = flag.String("artwork", "", "Artwork to embed when adding: local image path or URL")
		batchFlag     = flag.String("batch", "", "Blocks file for batch import (use with -dir)")
		dirFlag       = flag.String("dir", "", "Directory holding the audio files for -batch")
		listFlag      = flag.Bool("list", false, "List the library")
		exportFlag    = flag.String("export", "", "Export a mix with the given name (use with -files or -random)")
		filesFlag     = flag.String("files", "", "Comma-separated clip filenames to export")
		randomFlag    = flag.Int("random", 0, "Number of random clips to export")
		digestFlag    = flag.String("digest", "", "Write a digest of block headers from a blocks file (use with -out)")
		outFlag       = flag.String("out", "", "Output path for -digest")
		configFlag    = flag.String("config", "", "Path to config file")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *addFlag == "" && *batchFlag == "" && !*listFlag && *exportFlag == "" && *digestFlag == "" {
		fmt.Println("ClipShelf - Organize your audio clip library")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  clipshelf -add <file> < block.txt")
		fmt.Println("  clipshelf -add <file> -block-file <block.txt> [-artwork <path|url>]")
		fmt.Println("  clipshelf -batch <blocks.txt> -dir <directory>")
		fmt.Println("  clipshelf -list")
		fmt.Println("  clipshelf -export <name> -files <a.mp3,b.mp3>")
		fmt.Println("  clipshelf -export <name> -random <n>")
		fmt.Println("  clipshelf -digest <blocks.txt> -out <digest.txt>")
		fmt.Println()
		fmt.Println("For interactive mode, use: clipshelf-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	configPath := config.DefaultPath()
	if *configFlag != "" {
		configPath = *configFlag
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Digest needs no library at all
	if *digestFlag != "" {
		if *outFlag == "" {
			fmt.Fprintln(os.Stderr, "-digest requires -out")
			os.Exit(1)
		}
		blocks, err := textblock.ReadBlocks(*digestFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading blocks: %v\n", err)
			os.Exit(1)
		}
		if err := textblock.WriteFirstLines(blocks, *outFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing digest: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote digest of %d blocks to %s\n", len(blocks), *outFlag)
		return
	}

	store := library.NewStore(settings.LibraryFile)
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading library: %v\n", err)
		os.Exit(1)
	}

	if *listFlag {
		clips := store.All()
		if len(clips) == 0 {
			fmt.Println("The library is empty.")
			return
		}
		for i := range clips {
			clip := &clips[i]
			fmt.Printf("%02d  %-30s %-20s %s  %s\n", clip.Index, clip.SongName, clip.Artist, clip.Duration, clip.FileSize)
		}
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := importer.NewManager(settings, store, func(event importer.ProgressEvent) {
		if event.Level == importer.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case importer.LevelError:
			prefix = "❌ "
		case importer.LevelWarning:
			prefix = "⚠️  "
		case importer.LevelSuccess:
			prefix = "✅ "
		case importer.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	switch {
	case *addFlag != "":
		block, err := readBlock(*blockFlag, *blockFileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading block: %v\n", err)
			os.Exit(1)
		}
		if _, err := manager.ImportClip(ctx, block, *addFlag, *artworkFlag); err != nil {
			exitOnImportError(ctx, err)
		}

	case *batchFlag != "":
		if *dirFlag == "" {
			fmt.Fprintln(os.Stderr, "-batch requires -dir")
			os.Exit(1)
		}
		if _, err := manager.ImportBatch(ctx, *batchFlag, *dirFlag); err != nil {
			exitOnImportError(ctx, err)
		}

	case *exportFlag != "":
		var out string
		var err error
		switch {
		case *randomFlag > 0:
			out, err = manager.RandomMix(ctx, *randomFlag, *exportFlag)
		case *filesFlag != "":
			out, err = manager.ExportMix(ctx, splitFiles(*filesFlag), *exportFlag)
		default:
			fmt.Fprintln(os.Stderr, "-export requires -files or -random")
			os.Exit(1)
		}
		if err != nil {
			exitOnImportError(ctx, err)
		}
		fmt.Printf("\n✨ Mix written to %s\n", out)
	}
}

// readBlock resolves the attribution block for -add: inline text, a
// block file, or stdin, in that order.
func readBlock(inline, file string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

// splitFiles splits a comma-separated filename list, trimming entries.
func splitFiles(s string) []string {
	var files []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			files = append(files, part)
		}
	}
	return files
}

// exitOnImportError exits with the conventional status for the failure.
func exitOnImportError(ctx context.Context, err error) {
	if ctx.Err() != nil {
		fmt.Println("\nCancelled.")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
