package index

import (
	"io"

	"github.com/openlyricstools/olbook/internal/logging"
)

// Options controls index emission.
type Options struct {
	// Flat disables letter-block grouping for title indices.
	Flat bool
}

// Build reads one index data stream and returns the formatted index file.
// The record kind declared on the first line selects the strategy; errors
// abort this one index file and leave others unaffected.
func Build(r io.Reader, opts Options) (string, error) {
	kind, records, err := ReadRecords(r)
	if err != nil {
		return "", err
	}

	switch kind {
	case KindAuthor:
		logging.Debug("building author index", "records", len(records))
		return RenderAuthorIndex(BuildAuthorIndex(records)), nil
	default:
		logging.Debug("building title index", "records", len(records), "flat", opts.Flat)
		return RenderTitleIndex(BuildTitleIndex(records), !opts.Flat), nil
	}
}
