/*
Package content turns content files into records.

A content file starts with optional header lines (see package header) followed by
a body in HTML, or in Markdown when the file has a Markdown extension:

	<!-- title: Hello, World -->
	<!-- tag: misc -->
	<p>The body.</p>

The file name carries the date and slug of the record. "2021-03-01-hello.html"
has the date "2021-03-01" and the slug "hello"; a name without a date prefix
gets the date DefaultDate.
*/
package content

import "github.com/ancientlore/makesite/render"

// Well known record keys.
const (
	KeyDate        = "date"
	KeySlug        = "slug"
	KeyContent     = "content"
	KeyTitle       = "title"
	KeyTag         = "tag"
	KeyImport      = "import"
	KeyList        = "list"
	KeyRender      = "render"
	KeyBasename    = "basename"
	KeyRFC2822Date = "rfc_2822_date"
	KeySimpleDate  = "simple_date"
)

// Record holds the headers and body of one content file. Any header found in the
// file is kept under its own name; date, slug and content are always present on
// records returned by a Reader.
type Record map[string]string

// Date returns the date of the record in yyyy-mm-dd form.
func (r Record) Date() string { return r[KeyDate] }

// Slug returns the URL name of the record.
func (r Record) Slug() string { return r[KeySlug] }

// Content returns the body of the record.
func (r Record) Content() string { return r[KeyContent] }

// Title returns the title header.
func (r Record) Title() string { return r[KeyTitle] }

// Tag returns the tag header and whether it is set.
func (r Record) Tag() (string, bool) {
	t, ok := r[KeyTag]
	return t, ok
}

// Listed reports whether the record should appear in lists; a "list: no"
// header hides it.
func (r Record) Listed() bool { return r[KeyList] != "no" }

// Params returns the record as render parameters.
func (r Record) Params() render.Params {
	return render.Strings(r)
}
