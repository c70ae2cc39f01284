// Package latex renders the song model into songs-package markup.
//
// One song becomes one entry: a \beginsong opener with optional metadata
// clauses, the rendered verse and chorus blocks with interleaved chords and
// annotations, and a closing \endsong. The package also emits the section
// wrapper a book file puts around the entries of one chapter.
package latex

import (
	"strings"

	"github.com/openlyricstools/olbook/core/errors"
	"github.com/openlyricstools/olbook/core/openlyrics"
)

// Transcode parses an OpenLyrics document and renders its entry markup.
func Transcode(data []byte) (string, error) {
	song, err := openlyrics.Parse(data)
	if err != nil {
		return "", err
	}
	return RenderSong(song)
}

// RenderSong renders one parsed song as a complete entry.
func RenderSong(song *openlyrics.Song) (string, error) {
	var b strings.Builder

	renderOpener(&b, &song.Header)

	for _, comment := range song.PreVerseComments {
		b.WriteString("\\textnote{")
		b.WriteString(comment)
		b.WriteString("}\n\n")
	}

	order, err := renderOrder(song)
	if err != nil {
		return "", err
	}
	for _, verse := range order {
		renderVerse(&b, verse)
	}

	b.WriteString("\\endsong\n\n")
	return b.String(), nil
}

// renderOpener writes the \beginsong marker and the optional metadata
// clauses. Absent fields are omitted entirely, in the fixed order
// by, index, cr, tune.
func renderOpener(b *strings.Builder, h *openlyrics.Header) {
	b.WriteString("\\beginsong{")
	b.WriteString(h.Titles[0])
	b.WriteString("}[\n")
	if len(h.Authors) > 0 {
		b.WriteString("by={")
		b.WriteString(strings.Join(h.Authors, ", "))
		b.WriteString("},\n")
	}
	if len(h.Keywords) > 0 {
		b.WriteString("index={")
		b.WriteString(strings.Join(h.Keywords, ", "))
		b.WriteString("},\n")
	}
	if h.Copyright != "" {
		b.WriteString("cr={")
		b.WriteString(h.Copyright)
		b.WriteString("},\n")
	}
	if h.Tune != "" {
		b.WriteString("tune={")
		b.WriteString(h.Tune)
		b.WriteString("},\n")
	}
	b.WriteString("]\n\n")
}

// renderOrder resolves the verses to render, in order. With a verseOrder
// the tokens are used verbatim; a token naming a verse that is absent from
// the document fails the whole song with UnknownVerseError.
func renderOrder(song *openlyrics.Song) ([]*openlyrics.Verse, error) {
	if len(song.Header.VerseOrder) == 0 {
		return song.Verses, nil
	}
	order := make([]*openlyrics.Verse, 0, len(song.Header.VerseOrder))
	for _, name := range song.Header.VerseOrder {
		verse := song.VerseByName(name)
		if verse == nil {
			return nil, errors.NewUnknownVerse(name)
		}
		order = append(order, verse)
	}
	return order, nil
}

// renderVerse wraps the rendered lines in the block markers for the
// verse's kind.
func renderVerse(b *strings.Builder, verse *openlyrics.Verse) {
	if verse.Kind == openlyrics.KindChorus {
		b.WriteString("\\beginchorus\n")
	} else {
		b.WriteString("\\beginverse\n")
	}

	for _, line := range verse.Lines {
		renderLine(b, line)
	}

	if verse.Kind == openlyrics.KindChorus {
		b.WriteString("\n\\endchorus\n")
	} else {
		b.WriteString("\n\\endverse\n")
	}
}

// renderLine emits the segments of one line in document order.
func renderLine(b *strings.Builder, line openlyrics.Line) {
	for _, seg := range line.Segments {
		switch seg.Kind {
		case openlyrics.SegText:
			b.WriteString(seg.Text)
		case openlyrics.SegComment:
			b.WriteString("\\textnote{")
			b.WriteString(seg.Text)
			b.WriteString("}")
		case openlyrics.SegChord:
			b.WriteString(" \\[")
			b.WriteString(ChordToken(seg.Root, seg.Structure))
			b.WriteString("]")
		case openlyrics.SegBreak:
			b.WriteString("\n")
		}
	}
}

// ChordToken builds the chord marker text from an OpenLyrics chord.
// The "&" flat encoding becomes "b", and the optional structure suffix
// is appended, so root "A&" with structure "m7" renders as "Abm7".
func ChordToken(root, structure string) string {
	return strings.ReplaceAll(root, "&", "b") + structure
}
