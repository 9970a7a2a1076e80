package content

import (
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Section kinds in a reading entry.
const (
	SectionNote  = "note"
	SectionQuote = "quote"
)

// Sections holds the excerpts and notes of a reading entry, in file order.
type Sections struct {
	Quotes []string
	Notes  []string
}

// ParseSections splits a reading entry body at "<!-- quote -->" and
// "<!-- note -->" markers. Text before the first marker is ignored. Every section
// except the last gets a trailing newline.
func ParseSections(text string) Sections {
	var (
		s     Sections
		kind  string
		begin = -1
	)
	add := func(kind, body string) {
		if kind == SectionQuote {
			s.Quotes = append(s.Quotes, body)
		} else {
			s.Notes = append(s.Notes, body)
		}
	}
	for pos := 0; ; {
		k, start, end, ok := nextMarker(text, pos)
		if !ok {
			break
		}
		if begin != -1 {
			add(kind, text[begin:start]+"\n")
		}
		kind, begin, pos = k, end, end
	}
	if begin != -1 {
		add(kind, text[begin:])
	}
	return s
}

// nextMarker finds the next section marker at or after pos, returning its kind
// and its extent including the white space around it.
func nextMarker(text string, pos int) (kind string, start, end int, ok bool) {
	for i := pos; i < len(text); {
		j := strings.Index(text[i:], "<!--")
		if j < 0 {
			return "", 0, 0, false
		}
		at := i + j
		k := strings.Index(text[at+4:], "-->")
		if k < 0 {
			return "", 0, 0, false
		}
		inner := strings.TrimSpace(text[at+4 : at+4+k])
		if inner != SectionNote && inner != SectionQuote {
			i = at + 4
			continue
		}
		start = at
		for start > pos {
			r, size := utf8.DecodeLastRuneInString(text[pos:start])
			if !unicode.IsSpace(r) {
				break
			}
			start -= size
		}
		end = at + 4 + k + 3
		if n := strings.IndexFunc(text[end:], func(r rune) bool { return !unicode.IsSpace(r) }); n >= 0 {
			end += n
		} else {
			end = len(text)
		}
		return inner, start, end, true
	}
	return "", 0, 0, false
}

// ExtraLinks renders the pdf and url headers of a reading entry as a row of links.
// The URLs are HTML-escaped.
func ExtraLinks(r Record) string {
	var sb strings.Builder
	for _, l := range []struct{ key, label string }{
		{"pdf", "PDF"},
		{"url", "url"},
	} {
		if u, ok := r[l.key]; ok {
			fmt.Fprintf(&sb, ` [<a href="%s" class="basic">%s</a>]`, html.EscapeString(u), l.label)
		}
	}
	return sb.String()
}
