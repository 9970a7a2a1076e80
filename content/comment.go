package content

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"slices"
	"strings"

	"github.com/ancientlore/makesite/header"
)

// Comment record keys.
const (
	KeyName          = "name"
	KeyURL           = "url"
	KeySource        = "source"
	KeyCommenter     = "commenter"
	KeyCommenterType = "commenter_type"
)

// ErrMissingHeader is returned when a record lacks a required header.
var ErrMissingHeader = errors.New("missing header")

// ReadComments reads a comment file holding one or more comments, each starting
// with its own headers. It returns the slug of the post the comments belong to and
// the comments ordered by date, oldest first. Comments named author are marked as
// written by the site author.
func (r *Reader) ReadComments(name, author string) (string, []Record, error) {
	b, err := fs.ReadFile(r.FS, name)
	if err != nil {
		return "", nil, fmt.Errorf("ReadComments: %w", err)
	}
	_, slug, err := ParseName(name)
	if err != nil {
		return "", nil, fmt.Errorf("ReadComments: %w", err)
	}
	var (
		text     = string(b)
		comments []Record
	)
	for pos := 0; pos != -1; {
		var c Record
		c, pos, err = readComment(text, pos, author)
		if err != nil {
			return "", nil, fmt.Errorf("ReadComments %q: comment %d: %w", name, len(comments)+1, err)
		}
		comments = append(comments, c)
	}
	slices.SortStableFunc(comments, func(a, b Record) int {
		return strings.Compare(a.Date(), b.Date())
	})
	return slug, comments, nil
}

// readComment reads the comment at text[pos:] and returns the offset of the next
// comment, or -1 after the last one.
func readComment(text string, pos int, author string) (Record, int, error) {
	headers, end := header.Collect(text, pos)
	c := Record(headers)

	next := header.Next(text, end)
	if next >= 0 {
		c[KeyContent] = text[end:next]
	} else {
		c[KeyContent] = text[end:]
	}

	name, ok := c[KeyName]
	if !ok {
		return nil, -1, fmt.Errorf("%w %q", ErrMissingHeader, KeyName)
	}
	if _, ok := c[KeyDate]; !ok {
		return nil, -1, fmt.Errorf("%w %q", ErrMissingHeader, KeyDate)
	}
	commenter := name
	if u, ok := c[KeyURL]; ok {
		commenter = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(u), name)
	}
	commenterType := "guest"
	if name == author {
		commenterType = "author"
	}
	simple, err := SimpleDate(c.Date())
	if err != nil {
		return nil, -1, err
	}
	c[KeyCommenter] = commenter
	c[KeyCommenterType] = commenterType
	c[KeySimpleDate] = simple
	return c, next, nil
}
