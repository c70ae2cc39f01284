package bookfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/openlyricstools/olbook/internal/logging"
)

// CollectFiles expands a section's file entries into a flat list of song
// files. Entries naming a directory contribute that directory's files, one
// level deep; relative entries resolve against base. A missing entry is an
// error.
func CollectFiles(entries []string, base string) ([]string, error) {
	var files []string
	for _, entry := range entries {
		path := entry
		if base != "" && !filepath.IsAbs(path) {
			path = filepath.Join(base, path)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("input file not found: %s: %w", path, err)
		}

		if info.IsDir() {
			dirEntries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, de := range dirEntries {
				files = append(files, filepath.Join(path, de.Name()))
			}
		} else {
			files = append(files, path)
		}
	}
	return files, nil
}

// applySort orders a section's expanded file list per its sort directive.
// Unknown directives are reported and leave the list untouched.
func applySort(section string, directive string, files []string) {
	switch directive {
	case "":
		logging.Debug("not sorting section", "section", section)
	case "filename":
		logging.Debug("sorting section by filename", "section", section)
		sort.SliceStable(files, func(i, j int) bool {
			return filepath.Base(files[i]) < filepath.Base(files[j])
		})
	default:
		logging.Error("unknown sort method for section", "section", section, "sort", directive)
	}
}
