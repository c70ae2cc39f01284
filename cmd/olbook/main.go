// Command olbook builds songbook files from OpenLyrics songs.
// It transcodes songs to songs-package markup, assembles section song
// files, and generates author and title indices from index data files.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/openlyricstools/olbook/core/index"
	"github.com/openlyricstools/olbook/core/latex"
	"github.com/openlyricstools/olbook/internal/bookfile"
	"github.com/openlyricstools/olbook/internal/config"
	"github.com/openlyricstools/olbook/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for olbook.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	// Command groups (noun-first organization)
	Song    SongGroup  `cmd:"" help:"Song operations (transcode)"`
	Book    BookGroup  `cmd:"" help:"Book assembly from a songbook config"`
	Index   IndexGroup `cmd:"" help:"Index generation from index data files"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// SongGroup contains per-song operations.
type SongGroup struct {
	Transcode TranscodeCmd `cmd:"" help:"Transcode one OpenLyrics song to entry markup"`
}

// BookGroup contains book-level operations.
type BookGroup struct {
	Assemble AssembleCmd `cmd:"" help:"Assemble the section song file from a config"`
}

// IndexGroup contains index operations.
type IndexGroup struct {
	Build IndexBuildCmd `cmd:"" help:"Build an index file from index data"`
}

// TranscodeCmd transcodes a single song.
type TranscodeCmd struct {
	Path string `arg:"" help:"OpenLyrics song file" type:"existingfile"`
	Out  string `help:"Output file (default stdout)" type:"path"`
}

func (c *TranscodeCmd) Run() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read song: %w", err)
	}

	entry, err := latex.Transcode(data)
	if err != nil {
		return fmt.Errorf("failed to transcode %s: %w", c.Path, err)
	}

	if c.Out == "" {
		fmt.Print(entry)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(entry), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Transcoded: %s\n", c.Path)
	fmt.Printf("  Output: %s\n", c.Out)
	return nil
}

// AssembleCmd assembles the song file for all configured sections.
type AssembleCmd struct {
	Config string `arg:"" help:"Songbook config file" type:"existingfile"`
	Out    string `required:"" help:"Output song file path" type:"path"`
}

func (c *AssembleCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	report, err := bookfile.Assemble(context.Background(), cfg, out)
	if err != nil {
		return err
	}

	fmt.Printf("Assembled: %s\n", c.Out)
	fmt.Printf("  Songs: %d\n", report.Songs)
	if len(report.Skipped) > 0 {
		fmt.Printf("  Skipped: %d\n", len(report.Skipped))
		for _, skip := range report.Skipped {
			fmt.Printf("    %s: %v\n", skip.Path, skip.Err)
		}
	}
	return nil
}

// IndexBuildCmd builds one index file from an index data file.
type IndexBuildCmd struct {
	Path string `arg:"" help:"Index data file (.sxd)" type:"existingfile"`
	Out  string `help:"Output index file (default: input with .sbx extension)" type:"path"`
	Flat bool   `help:"Emit title indices as a flat list without letter blocks"`
}

func (c *IndexBuildCmd) Run() error {
	in, err := os.Open(c.Path)
	if err != nil {
		return fmt.Errorf("failed to open index data: %w", err)
	}
	defer in.Close()

	text, err := index.Build(in, index.Options{Flat: c.Flat})
	if err != nil {
		return fmt.Errorf("failed to build index from %s: %w", c.Path, err)
	}

	out := c.Out
	if out == "" {
		out = strings.TrimSuffix(c.Path, filepath.Ext(c.Path)) + ".sbx"
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	fmt.Printf("Indexed: %s\n", c.Path)
	fmt.Printf("  Output: %s\n", out)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("olbook version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("olbook"),
		kong.Description("Songbook maker for OpenLyrics XML songs"),
		kong.UsageOnError(),
	)

	logging.InitLogger(parseLevel(CLI.LogLevel), parseFormat(CLI.LogFormat))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}
