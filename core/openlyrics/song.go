// Package openlyrics parses OpenLyrics song documents into an in-memory model.
//
// The model carries everything the markup renderers need: the song header
// with its controlled vocabulary, pre-verse comments, and the verses with
// their interleaved text, chord, comment, and line-break segments. Entities
// are built fresh per document and are not mutated after parsing.
package openlyrics

import "strings"

// Namespace is the OpenLyrics XML namespace.
const Namespace = "http://openlyrics.info/namespace/2009/song"

// Header holds the song metadata extracted from the properties node.
type Header struct {
	// Titles is ordered; the first entry is the display title.
	Titles   []string
	Authors  []string
	Keywords []string
	Themes   []string

	Copyright string
	Tune      string
	CCLINo    string

	// VerseOrder lists verse names in render order. Empty means
	// document order.
	VerseOrder []string
}

// VerseKind distinguishes verses from choruses. It is decided once at
// parse time from the verse name and carried on the entity.
type VerseKind int

const (
	// KindVerse is a regular verse.
	KindVerse VerseKind = iota
	// KindChorus is a chorus (verse name starts with "c", case-insensitively).
	KindChorus
)

// SegmentKind classifies one inline segment of a lyric line.
type SegmentKind int

const (
	// SegText is a plain text run.
	SegText SegmentKind = iota
	// SegChord is an inline chord marker.
	SegChord
	// SegComment is an inline annotation.
	SegComment
	// SegBreak is an explicit line break.
	SegBreak
)

// Segment is one inline unit of a Line. Text is set for SegText and
// SegComment; Root and Structure are set for SegChord.
type Segment struct {
	Kind      SegmentKind
	Text      string
	Root      string
	Structure string
}

// Line is an ordered run of segments.
type Line struct {
	Segments []Segment
}

// Verse is a named block of lines.
type Verse struct {
	Name  string
	Kind  VerseKind
	Lines []Line
}

// Song is one parsed OpenLyrics document.
type Song struct {
	Header Header

	// PreVerseComments are comment elements that precede the first verse,
	// e.g. "Interlude" notes.
	PreVerseComments []string

	// Verses in document order.
	Verses []*Verse
}

// VerseByName returns the verse with the given name, or nil.
func (s *Song) VerseByName(name string) *Verse {
	for _, v := range s.Verses {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// classifyVerse maps a verse name to its kind.
func classifyVerse(name string) VerseKind {
	if strings.HasPrefix(strings.ToLower(name), "c") {
		return KindChorus
	}
	return KindVerse
}
