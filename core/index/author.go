package index

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/openlyricstools/olbook/internal/logging"
)

// authorSplitRe separates the names in a raw author-list string. A single
// alternation: the literal word " and ", or any run of characters that are
// not ASCII letters, "~", ".", or space. Note that this also splits on
// punctuation inside names, e.g. hyphenated surnames.
var authorSplitRe = regexp.MustCompile(` and |[^a-zA-Z~. ]+`)

// SongRef is one song occurrence under an index key.
type SongRef struct {
	Number string
	Link   string
}

// AuthorEntry is one author line of the index: a normalized "Last, First"
// key (or the bare name for single-word names) and its songs ordered by
// song number.
type AuthorEntry struct {
	Key   string
	Songs []SongRef
}

// BuildAuthorIndex groups the records' author lists into per-author
// entries. Keys are ordered by case folding, songs within a key by song
// number ascending.
func BuildAuthorIndex(records []Record) []AuthorEntry {
	groups := make(map[string][]SongRef)
	var order []string

	for _, rec := range records {
		// "\ " is an escaped-space marker used to keep a name from
		// being split; normalize it to "~" before splitting.
		raw := strings.ReplaceAll(rec.Key, `\ `, "~")
		for _, token := range authorSplitRe.Split(raw, -1) {
			if token == "" {
				continue
			}
			key := authorKey(token)
			if key == "" {
				logging.Debug("discarding blank author token", "raw", rec.Key)
				continue
			}
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], SongRef{Number: rec.SongNumber, Link: rec.Link})
		}
	}

	// Insertion order must not leak into the output: a separate sorted-key
	// pass fixes the emission order.
	fold := cases.Fold()
	sort.SliceStable(order, func(i, j int) bool {
		return fold.String(order[i]) < fold.String(order[j])
	})

	entries := make([]AuthorEntry, 0, len(order))
	for _, key := range order {
		songs := groups[key]
		sort.SliceStable(songs, func(i, j int) bool {
			return songNumber(songs[i].Number) < songNumber(songs[j].Number)
		})
		entries = append(entries, AuthorEntry{Key: key, Songs: songs})
	}
	return entries
}

// authorKey derives the index key for one name token. The "~" space
// marker only protects a name from the separator split; here it maps back
// to a literal space before the words are counted. Two or more words
// become "<last>, <given names>"; a single word is the key itself.
func authorKey(token string) string {
	fields := strings.Fields(strings.ReplaceAll(token, "~", " "))
	switch {
	case len(fields) >= 2:
		return fields[len(fields)-1] + ", " + strings.Join(fields[:len(fields)-1], " ")
	case len(fields) == 1:
		return fields[0]
	default:
		return ""
	}
}

// songNumber parses a song number for ordering. The intermediate files are
// machine-produced, so a non-numeric value only shows up in hand-edited
// input; it sorts as zero.
func songNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		logging.Debug("non-numeric song number in index data", "value", s)
		return 0
	}
	return n
}

// RenderAuthorIndex emits the author index: one idxblock containing one
// line per author, with multiple song links joined by a continuation
// separator.
func RenderAuthorIndex(entries []AuthorEntry) string {
	var b strings.Builder
	b.WriteString("\\begin{idxblock}{}\n")
	for _, entry := range entries {
		b.WriteString("\\idxentry{")
		b.WriteString(entry.Key)
		b.WriteString("}{")
		for i, song := range entry.Songs {
			if i > 0 {
				b.WriteString("\\\\")
			}
			b.WriteString("\\songlink{")
			b.WriteString(song.Link)
			b.WriteString("}{")
			b.WriteString(song.Number)
			b.WriteString("}")
		}
		b.WriteString("}\n")
	}
	b.WriteString("\\end{idxblock}\n")
	return b.String()
}
