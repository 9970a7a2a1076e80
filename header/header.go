/*
Package header reads the metadata lines that open a content file.

A header is an HTML comment holding a single key and value:

	<!-- title: Hello, World -->
	<!-- tag: misc -->
	<p>The body starts after the last header.</p>

Headers must appear before anything else in the file; the first line that is not a
header ends the block. Comments without a colon, such as the section markers used by
reading entries ("<!-- note -->"), are not headers.
*/
package header

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Header is one key/value pair read from a header line.
type Header struct {
	Key   string
	Value string
	End   int // offset just past the header and the white space following it
}

const (
	openMark  = "<!--"
	closeMark = "-->"
)

// Parse returns the headers found at text[pos:], stopping at the first
// line that is not a header.
func Parse(text string, pos int) iter.Seq[Header] {
	return func(yield func(Header) bool) {
		for i := pos; i < len(text); {
			h, ok := scan(text, i)
			if !ok || !yield(h) {
				return
			}
			i = h.End
		}
	}
}

// Collect reads all headers at text[pos:] into a map and returns it along with
// the offset where the body begins. When there are no headers, end is pos.
func Collect(text string, pos int) (headers map[string]string, end int) {
	headers = make(map[string]string)
	end = pos
	for h := range Parse(text, pos) {
		headers[h.Key] = h.Value
		end = h.End
	}
	return headers, end
}

// Next returns the offset of the next header at or after pos, including any white
// space immediately before it, or -1 if there is none. Unlike Parse, the header
// does not need to start the text.
func Next(text string, pos int) int {
	if pos < 0 || pos > len(text) {
		return -1
	}
	for i := pos; i < len(text); {
		j := strings.Index(text[i:], openMark)
		if j < 0 {
			return -1
		}
		at := i + j
		start := at
		for start > pos {
			r, size := utf8.DecodeLastRuneInString(text[pos:start])
			if !unicode.IsSpace(r) {
				break
			}
			start -= size
		}
		if _, ok := scan(text, start); ok {
			return start
		}
		i = at + len(openMark)
	}
	return -1
}

// scan reads a single header starting at pos, after optional white space.
func scan(text string, pos int) (Header, bool) {
	start := skipSpace(text, pos)
	if !strings.HasPrefix(text[start:], openMark) {
		return Header{}, false
	}
	body := start + len(openMark)
	n := strings.Index(text[body:], closeMark)
	if n < 0 {
		return Header{}, false
	}
	inner := text[body : body+n]
	if strings.Contains(inner, "\n") {
		return Header{}, false
	}
	key, value, found := strings.Cut(inner, ":")
	if !found {
		return Header{}, false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return Header{}, false
	}
	return Header{
		Key:   key,
		Value: value,
		End:   skipSpace(text, body+n+len(closeMark)),
	}, true
}

// skipSpace returns the offset of the first non-space rune at or after pos.
func skipSpace(text string, pos int) int {
	i := strings.IndexFunc(text[pos:], func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return len(text)
	}
	return pos + i
}
