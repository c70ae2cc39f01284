package openlyrics

import (
	"strings"

	"github.com/openlyricstools/olbook/core/errors"
	"github.com/openlyricstools/olbook/core/xml"
	"github.com/openlyricstools/olbook/internal/logging"
)

// multiTags are header tags whose child elements each contribute one value.
var multiTags = map[string]bool{
	"titles":   true,
	"authors":  true,
	"keywords": true,
	"themes":   true,
}

// singleTags are header tags whose text content is stored as-is.
var singleTags = map[string]bool{
	"ccliNo":     true,
	"verseOrder": true,
	"copyright":  true,
	"tune":       true,
}

// Parse parses an OpenLyrics document into a Song.
//
// A document without a properties node fails with MissingPropertiesError;
// one without any titles fails with MissingTitleError. Both are expected to
// be non-fatal to a book build: the caller skips the song and continues.
func Parse(data []byte) (*Song, error) {
	doc, err := xml.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing song document")
	}

	song := &Song{}

	if err := parseHeader(doc, &song.Header); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root != nil {
		song.PreVerseComments = collectPreVerseComments(root)
	}

	verses, err := doc.XPath("//*[local-name()='verse']")
	if err != nil {
		return nil, errors.Wrap(err, "selecting verses")
	}
	for _, v := range verses {
		song.Verses = append(song.Verses, parseVerse(v))
	}

	return song, nil
}

// parseHeader extracts the song header from the properties node.
func parseHeader(doc *xml.Document, h *Header) error {
	props, err := doc.XPathFirst("//*[local-name()='properties']")
	if err != nil {
		return errors.Wrap(err, "selecting properties")
	}
	if props == nil {
		return errors.NewMissingProperties("")
	}

	for _, child := range props.Children() {
		tag := child.Name()
		switch {
		case multiTags[tag]:
			var values []string
			for _, item := range child.Children() {
				values = append(values, item.Text())
			}
			switch tag {
			case "titles":
				h.Titles = append(h.Titles, values...)
			case "authors":
				h.Authors = append(h.Authors, values...)
			case "keywords":
				h.Keywords = append(h.Keywords, values...)
			case "themes":
				h.Themes = append(h.Themes, values...)
			}
		case singleTags[tag]:
			text := child.Text()
			switch tag {
			case "ccliNo":
				h.CCLINo = text
			case "verseOrder":
				h.VerseOrder = strings.Fields(text)
			case "copyright":
				h.Copyright = text
			case "tune":
				h.Tune = text
			}
		default:
			logging.Debug("unknown tag in song header", "tag", tag)
		}
	}

	if len(h.Titles) == 0 {
		return errors.NewMissingTitle("")
	}
	return nil
}

// collectPreVerseComments gathers comment elements that appear before the
// first verse, in document order.
func collectPreVerseComments(root *xml.Node) []string {
	var comments []string
	for _, child := range root.Children() {
		switch child.Name() {
		case "verse":
			return comments
		case "comment":
			comments = append(comments, child.Text())
		}
	}
	return comments
}

// parseVerse builds a Verse from a verse element.
func parseVerse(node *xml.Node) *Verse {
	name := node.Attr("name")
	verse := &Verse{
		Name: name,
		Kind: classifyVerse(name),
	}

	for _, child := range node.Children() {
		if child.Name() != "lines" {
			continue
		}
		verse.Lines = append(verse.Lines, parseLine(child))
	}
	return verse
}

// parseLine turns the interleaved children of a lines element into segments.
//
// Whitespace rules: the text run before the first inline element is trimmed
// on both sides. Text runs that follow an element ("tails") are trimmed per
// run; a tail containing an embedded newline marks a stanza break, so it
// becomes a break segment followed by the trimmed text.
func parseLine(node *xml.Node) Line {
	var line Line
	seenElement := false

	for _, child := range node.ChildNodes() {
		switch child.Kind() {
		case xml.KindText:
			trimmed := strings.TrimSpace(child.Text())
			if !seenElement {
				if trimmed != "" {
					line.Segments = append(line.Segments, Segment{Kind: SegText, Text: trimmed})
				}
				continue
			}
			if trimmed == "" {
				continue
			}
			if strings.Contains(child.Text(), "\n") {
				line.Segments = append(line.Segments, Segment{Kind: SegBreak})
			}
			line.Segments = append(line.Segments, Segment{Kind: SegText, Text: trimmed})

		case xml.KindElement:
			seenElement = true
			switch child.Name() {
			case "comment":
				line.Segments = append(line.Segments, Segment{Kind: SegComment, Text: child.Text()})
			case "chord":
				line.Segments = append(line.Segments, Segment{
					Kind:      SegChord,
					Root:      child.Attr("root"),
					Structure: child.Attr("structure"),
				})
			case "br":
				line.Segments = append(line.Segments, Segment{Kind: SegBreak})
			default:
				// Unrecognized inline elements are skippable; their
				// following text runs are still handled as tails.
			}
		}
	}
	return line
}
