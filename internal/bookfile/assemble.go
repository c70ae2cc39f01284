// Package bookfile assembles transcoded song entries into one song file,
// section by section.
//
// Songs transcode independently of each other, so each section fans the
// work out to a bounded worker group and then writes the entries back in
// input order. A song that fails to transcode is skipped and reported; the
// build continues with the remaining songs.
package bookfile

import (
	"context"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/openlyricstools/olbook/core/latex"
	"github.com/openlyricstools/olbook/internal/config"
	"github.com/openlyricstools/olbook/internal/logging"
)

// SkippedSong records one song left out of the book and why.
type SkippedSong struct {
	Path string
	Err  error
}

// Report summarizes an assembly run.
type Report struct {
	// Songs is the number of entries written.
	Songs int
	// Skipped lists the songs that failed to transcode, in input order.
	Skipped []SkippedSong
}

// Assemble writes the song file for the configured sections to w.
func Assemble(ctx context.Context, cfg *config.Config, w io.Writer) (*Report, error) {
	report := &Report{}

	if cfg.Songbook != nil && cfg.Songbook.SBDHeader != "" {
		if _, err := io.WriteString(w, cfg.Songbook.SBDHeader); err != nil {
			return nil, err
		}
	}

	for _, section := range cfg.Sections {
		files, err := CollectFiles(section.Files, cfg.BasePath)
		if err != nil {
			return nil, err
		}
		applySort(section.Name, section.Sort, files)

		if _, err := io.WriteString(w, latex.BeginSongs(section.Name)); err != nil {
			return nil, err
		}

		entries, err := transcodeAll(ctx, files)
		if err != nil {
			return nil, err
		}
		for i, file := range files {
			if entries[i].err != nil {
				logging.SongSkipped(file, entries[i].err)
				report.Skipped = append(report.Skipped, SkippedSong{Path: file, Err: entries[i].err})
				continue
			}
			if _, err := io.WriteString(w, entries[i].text); err != nil {
				return nil, err
			}
			report.Songs++
		}

		if _, err := io.WriteString(w, latex.EndSongs()); err != nil {
			return nil, err
		}
	}

	return report, nil
}

type transcodeResult struct {
	text string
	err  error
}

// transcodeAll converts the files concurrently, preserving input order in
// the result slice. Per-song failures land in the result, not the group
// error; only cancellation stops the batch.
func transcodeAll(ctx context.Context, files []string) ([]transcodeResult, error) {
	results := make([]transcodeResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				results[i] = transcodeResult{err: err}
				return nil
			}
			text, err := latex.Transcode(data)
			results[i] = transcodeResult{text: text, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
