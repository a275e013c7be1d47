package files

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mergexml/internal/config"
	apperrors "mergexml/internal/errors"
)

// Entry represents a discovered file at the moment of a listing
type Entry struct {
	Path string
	Name string
}

// Collect filters entries to those whose name ends with suffix (exact,
// case-sensitive match) and enforces the inclusive [minCount, maxCount]
// bounds on the number of matches. Matches are accumulated in encounter
// order. The moment the running count exceeds maxCount the collection stops
// pulling from the sequence and fails with OutOfBoundsCountError; the same
// error kind is returned when the completed accumulation holds fewer than
// minCount matches. On success the result satisfies
// minCount <= len <= maxCount by construction.
func Collect(entries iter.Seq[Entry], suffix string, minCount, maxCount int) ([]Entry, error) {
	var matched []Entry
	for entry := range entries {
		if !strings.HasSuffix(entry.Name, suffix) {
			continue
		}
		matched = append(matched, entry)
		if len(matched) > maxCount {
			return nil, &apperrors.OutOfBoundsCountError{
				Suffix: suffix,
				Min:    minCount,
				Max:    maxCount,
				Actual: len(matched),
			}
		}
	}

	if len(matched) < minCount {
		return nil, &apperrors.OutOfBoundsCountError{
			Suffix: suffix,
			Min:    minCount,
			Max:    maxCount,
			Actual: len(matched),
		}
	}
	return matched, nil
}

// ListXML lists the XML files in location and enforces the
// [minCount, maxCount] bounds. A bound violation surfaces as
// WrongFileCountError carrying the configured maximum; a directory read
// failure is wrapped and propagated as-is.
func ListXML(location string, minCount, maxCount int) ([]Entry, error) {
	entries, err := readDir(location)
	if err != nil {
		return nil, err
	}

	matched, err := Collect(entrySeq(location, entries), config.XMLExtension, minCount, maxCount)
	if err != nil {
		var oob *apperrors.OutOfBoundsCountError
		if errors.As(err, &oob) {
			return nil, &apperrors.WrongFileCountError{Max: maxCount}
		}
		return nil, err
	}

	slog.Debug("Listed xml files",
		slog.String("location", location),
		slog.Int("count", len(matched)))
	return matched, nil
}

// XSD returns the single XSD file in location. Any other count surfaces as
// WrongXsdCountError; a directory read failure is wrapped and propagated
// as-is.
func XSD(location string) (Entry, error) {
	entries, err := readDir(location)
	if err != nil {
		return Entry{}, err
	}

	matched, err := Collect(entrySeq(location, entries), config.XSDExtension, config.XSDFileCount, config.XSDFileCount)
	if err != nil {
		var oob *apperrors.OutOfBoundsCountError
		if errors.As(err, &oob) {
			return Entry{}, &apperrors.WrongXsdCountError{Actual: oob.Actual}
		}
		return Entry{}, err
	}

	slog.Debug("Found xsd file",
		slog.String("location", location),
		slog.String("name", matched[0].Name))
	return matched[0], nil
}

// readDir reads the flat listing of immediate children of location.
// Subdirectories are not treated specially; the suffix filter in Collect
// excludes them unless named to match.
func readDir(location string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", location, err)
	}
	return entries, nil
}

// entrySeq adapts a directory listing to the sequence Collect consumes
func entrySeq(location string, entries []os.DirEntry) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, entry := range entries {
			e := Entry{
				Path: filepath.Join(location, entry.Name()),
				Name: entry.Name(),
			}
			if !yield(e) {
				return
			}
		}
	}
}
