// Package index builds sorted, cross-referenced song indices from the
// intermediate index data a typesetting pass writes out.
//
// An index data file declares its kind on the first line (AUTHOR or TITLE
// data), then carries fixed three-line records: key, song number, link.
// An empty link field is the end-of-stream marker; this is a load-bearing
// contract with the record producer.
package index

import (
	"bufio"
	"io"
	"strings"

	"github.com/openlyricstools/olbook/core/errors"
)

// Kind is the declared record type of an index data file. It is decided
// once by the reader and fixes which strategy processes the records.
type Kind int

const (
	// KindAuthor marks author index data.
	KindAuthor Kind = iota
	// KindTitle marks title index data.
	KindTitle
)

// Record is one three-line index record.
type Record struct {
	Key        string
	SongNumber string
	Link       string
}

// ReadRecords consumes the kind declaration and then reads records until
// the empty-link end marker or the end of the stream. The kind line is
// prefix-matched: anything starting with AUTHOR or TITLE is accepted,
// anything else fails with UnknownIndexKindError. A stream that ends in
// the middle of a record fails with MalformedRecordError.
func ReadRecords(r io.Reader) (Kind, []Record, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, nil, errors.Wrap(err, "reading index data")
		}
		return 0, nil, errors.NewUnknownIndexKind("")
	}
	header := strings.TrimSpace(sc.Text())

	var kind Kind
	switch {
	case strings.HasPrefix(header, "AUTHOR"):
		kind = KindAuthor
	case strings.HasPrefix(header, "TITLE"):
		kind = KindTitle
	default:
		return 0, nil, errors.NewUnknownIndexKind(header)
	}

	var records []Record
	for recno := 1; ; recno++ {
		if !sc.Scan() {
			break
		}
		key := strings.TrimSpace(sc.Text())

		if !sc.Scan() {
			if key == "" {
				// Trailing blank line, not a truncated record.
				break
			}
			return kind, nil, errors.NewMalformedRecord(recno, "song number")
		}
		songNumber := strings.TrimSpace(sc.Text())

		if !sc.Scan() {
			return kind, nil, errors.NewMalformedRecord(recno, "link")
		}
		link := strings.TrimSpace(sc.Text())

		if link == "" {
			// End-of-stream marker; any further lines are ignored.
			break
		}
		records = append(records, Record{Key: key, SongNumber: songNumber, Link: link})
	}
	if err := sc.Err(); err != nil {
		return kind, nil, errors.Wrap(err, "reading index data")
	}
	return kind, records, nil
}
