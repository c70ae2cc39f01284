package index

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/openlyricstools/olbook/internal/logging"
)

// leadingArticles are the only words relocated from the front of a title.
// The match is case-sensitive per token; internationalized or unusually
// cased variants are intentionally left in place.
var leadingArticles = map[string]bool{
	"a": true, "an": true, "the": true,
	"A": true, "An": true, "The": true,
}

// TitleEntry is one title line of the index.
type TitleEntry struct {
	Title      string
	SongNumber string
	Link       string
	// Alt marks an alternate title (flagged with a leading "*" in the
	// index data), rendered with a distinct macro.
	Alt bool
}

// BuildTitleIndex normalizes and sorts the records' titles: the alternate
// marker is stripped into a flag, a leading article moves to the end, and
// only the first character is capitalized. Entries are ordered by case
// folding of the display title.
func BuildTitleIndex(records []Record) []TitleEntry {
	entries := make([]TitleEntry, 0, len(records))
	for _, rec := range records {
		title := rec.Key
		alt := false
		if strings.HasPrefix(title, "*") {
			title = strings.TrimLeft(title, "*")
			alt = true
		}
		title = relocateArticle(title)
		if title == "" {
			logging.Warn("discarding index record with empty title", "link", rec.Link)
			continue
		}
		entries = append(entries, TitleEntry{
			Title:      capitalizeFirst(title),
			SongNumber: rec.SongNumber,
			Link:       rec.Link,
			Alt:        alt,
		})
	}

	fold := cases.Fold()
	sort.SliceStable(entries, func(i, j int) bool {
		return fold.String(entries[i].Title) < fold.String(entries[j].Title)
	})
	return entries
}

// relocateArticle moves a leading article to the end of the title:
// "The Rose" becomes "Rose, The". Single-word titles pass through.
func relocateArticle(title string) string {
	i := strings.IndexFunc(title, unicode.IsSpace)
	if i < 0 {
		return title
	}
	begin := title[:i]
	rest := strings.TrimLeftFunc(title[i:], unicode.IsSpace)
	if leadingArticles[begin] && rest != "" {
		return rest + ", " + begin
	}
	return title
}

// capitalizeFirst uppercases only the first character, leaving the rest
// of the title unchanged.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RenderTitleIndex emits the title index. In grouped mode entries are
// wrapped in letter blocks: a new block opens whenever the first character
// changes, case-insensitively, keyed by the uppercased character. In flat
// mode the entries are emitted as a plain list.
func RenderTitleIndex(entries []TitleEntry, grouped bool) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	var section string
	if grouped {
		section = firstChar(entries[0].Title)
		b.WriteString("\\begin{idxblock}{")
		b.WriteString(section)
		b.WriteString("}\n")
	}
	for _, entry := range entries {
		if grouped && !strings.EqualFold(firstChar(entry.Title), section) {
			b.WriteString("\\end{idxblock}\n")
			section = strings.ToUpper(firstChar(entry.Title))
			b.WriteString("\\begin{idxblock}{")
			b.WriteString(section)
			b.WriteString("}\n")
		}
		macro := "\\idxentry{"
		if entry.Alt {
			macro = "\\idxaltentry{"
		}
		b.WriteString(macro)
		b.WriteString(entry.Title)
		b.WriteString("}{\\songlink{")
		b.WriteString(entry.Link)
		b.WriteString("}{")
		b.WriteString(entry.SongNumber)
		b.WriteString("}}\n")
	}
	if grouped {
		b.WriteString("\\end{idxblock}\n")
	}
	return b.String()
}

// firstChar returns the first character of a title as a string.
func firstChar(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return s[:size]
}
