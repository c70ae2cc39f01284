// Package errors provides standardized error types and helpers for the olbook codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// MissingPropertiesError indicates a song document has no properties node.
// The song cannot be transcoded; callers skip it and continue the build.
type MissingPropertiesError struct {
	Path string // Source file, if known
}

func (e *MissingPropertiesError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("song %s has no properties node", e.Path)
	}
	return "song has no properties node"
}

func (e *MissingPropertiesError) Unwrap() error {
	return ErrInvalidInput
}

// MissingTitleError indicates a song document declares no titles.
type MissingTitleError struct {
	Path string // Source file, if known
}

func (e *MissingTitleError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("song %s has no title", e.Path)
	}
	return "song has no title"
}

func (e *MissingTitleError) Unwrap() error {
	return ErrInvalidInput
}

// UnknownVerseError indicates a verseOrder token references a verse name
// that is absent from the document.
type UnknownVerseError struct {
	Name string // The verse name that failed to resolve
}

func (e *UnknownVerseError) Error() string {
	return fmt.Sprintf("verse %q listed in verseOrder not found in document", e.Name)
}

func (e *UnknownVerseError) Unwrap() error {
	return ErrNotFound
}

// UnknownIndexKindError indicates an index data file whose header line
// matches neither AUTHOR nor TITLE.
type UnknownIndexKindError struct {
	Kind string // The raw header line
}

func (e *UnknownIndexKindError) Error() string {
	return fmt.Sprintf("unknown index kind %q", e.Kind)
}

func (e *UnknownIndexKindError) Unwrap() error {
	return ErrUnsupported
}

// MalformedRecordError indicates an index data file that ended mid-record.
type MalformedRecordError struct {
	Record  int    // 1-based record number
	Missing string // Which field the stream ended on
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("index data truncated in record %d: missing %s line", e.Record, e.Missing)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewMissingProperties creates a MissingPropertiesError
func NewMissingProperties(path string) *MissingPropertiesError {
	return &MissingPropertiesError{Path: path}
}

// NewMissingTitle creates a MissingTitleError
func NewMissingTitle(path string) *MissingTitleError {
	return &MissingTitleError{Path: path}
}

// NewUnknownVerse creates an UnknownVerseError
func NewUnknownVerse(name string) *UnknownVerseError {
	return &UnknownVerseError{Name: name}
}

// NewUnknownIndexKind creates an UnknownIndexKindError
func NewUnknownIndexKind(kind string) *UnknownIndexKindError {
	return &UnknownIndexKindError{Kind: kind}
}

// NewMalformedRecord creates a MalformedRecordError
func NewMalformedRecord(record int, missing string) *MalformedRecordError {
	return &MalformedRecordError{Record: record, Missing: missing}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
