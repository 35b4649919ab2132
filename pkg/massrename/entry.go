package massrename

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Entry is one file in the rename list.
type Entry struct {
	// Text is the path as shown to the user.
	Text string
	// Malformed reports that the path was not valid UTF-8 and Text had
	// replacement characters substituted for the invalid bytes.
	Malformed bool
}

// NewEntry creates the entry for a path.
func NewEntry(path string) Entry {
	if utf8.ValidString(path) {
		return Entry{Text: path}
	}

	// The decoder substitutes U+FFFD for invalid bytes and never fails.
	text, _ := unicode.UTF8.NewDecoder().String(path)
	return Entry{Text: text, Malformed: true}
}

func newEntries(paths []string) []Entry {
	entries := make([]Entry, len(paths))
	for i, p := range paths {
		entries[i] = NewEntry(p)
	}
	return entries
}
