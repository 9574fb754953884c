package text

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Position is the resolution of a linear offset into line coordinates.
type Position struct {
	Line   int // line index, 0-based
	Start  int // rune offset of the line's first character
	Length int // line length in runes, excluding the separator
}

// Store holds a document as an ordered sequence of lines.
//
// Lines carry no terminator characters. The cached length counts one
// separator per line except after the last, so it equals the rune length of
// the flattened document. Both caches are maintained by every mutation.
type Store struct {
	lines  []string
	length int
	count  int
}

// Load reads UTF-8 text from r and builds a store.
// CRLF and lone CR terminators are normalized to LF before splitting.
func Load(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data)), nil
}

// LoadFile opens path and loads its contents.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// FromString builds a store from already-loaded text.
func FromString(s string) *Store {
	s = normalizeLineEndings(s)

	st := &Store{}
	if s == "" {
		return st
	}

	lines := strings.Split(s, "\n")
	// A trailing newline does not start an extra empty line.
	if strings.HasSuffix(s, "\n") {
		lines = lines[:len(lines)-1]
	}

	length := 0
	for _, l := range lines {
		length += utf8.RuneCountInString(l) + 1
	}

	st.lines = lines
	st.count = len(lines)
	st.length = length - 1 // no separator after the last line
	return st
}

// Len returns the total document length in runes.
func (s *Store) Len() int {
	return s.length
}

// LineCount returns the number of lines.
func (s *Store) LineCount() int {
	return s.count
}

// LineText returns the text of line index, without a terminator.
// The index must be valid.
func (s *Store) LineText(index int) string {
	return s.lines[index]
}

// Resolve maps a linear rune offset to line coordinates.
//
// The owning line is the first one with offset <= start+length, so an offset
// sitting on the separator resolves to the line it terminates. The scan is
// O(line count). An empty store resolves everything to the zero Position.
func (s *Store) Resolve(offset int) Position {
	var line, start, length int
	for _, l := range s.lines {
		length = utf8.RuneCountInString(l)
		if offset <= start+length {
			break
		}
		start += length + 1
		line++
	}
	return Position{Line: line, Start: start, Length: length}
}

// DeleteLine removes line index from the store and updates the cached totals.
// Index validity is the caller's responsibility; an out-of-range index is a
// defect and panics.
func (s *Store) DeleteLine(index int) {
	if index < 0 || index >= s.count {
		panic(fmt.Sprintf("text: delete of line %d out of range [0,%d)", index, s.count))
	}

	if s.count == 1 {
		s.length = 0
	} else {
		s.length -= utf8.RuneCountInString(s.lines[index]) + 1
	}
	s.count--
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
}

// Insert is a reserved extension point for character-level editing.
// It is not implemented in this core; calling it is a defect.
func (s *Store) Insert(offset int, text string) {
	panic("text: Insert is not implemented")
}

// Delete is a reserved extension point for character-level editing.
// It is not implemented in this core; calling it is a defect.
func (s *Store) Delete(offset, count int) {
	panic("text: Delete is not implemented")
}

// normalizeLineEndings converts CRLF and CR terminators to LF so that length
// accounting can assume single-rune separators.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
