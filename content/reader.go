package content

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/ancientlore/makesite/header"
	"github.com/ancientlore/makesite/markdown"
	"go.uber.org/zap"
)

// Reader reads content files from a file system.
type Reader struct {
	FS       fs.FS
	Markdown markdown.Converter // nil when Markdown support is unavailable
	Logger   *zap.Logger
}

func (r *Reader) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Read reads the named file into a record. Headers override the date taken from
// the file name. Markdown files are converted to HTML when a converter is set;
// otherwise the source is kept and a warning is logged.
func (r *Reader) Read(name string) (Record, error) {
	b, err := fs.ReadFile(r.FS, name)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	date, slug, err := ParseName(name)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	rec := Record{
		KeyDate: date,
		KeySlug: slug,
	}
	text := string(b)
	headers, end := header.Collect(text, 0)
	for k, v := range headers {
		rec[k] = v
	}
	body := text[end:]
	if markdown.IsMarkdown(name) {
		body = r.convert(name, body)
	}
	rec[KeyContent] = body
	if err = addDates(rec); err != nil {
		return nil, fmt.Errorf("Read %q: %w", name, err)
	}
	return rec, nil
}

// convert renders a Markdown body, falling back to the source text.
func (r *Reader) convert(name, body string) string {
	if r.Markdown == nil {
		r.logger().Warn("Cannot render Markdown",
			zap.String("file", name),
			zap.String("reason", "no Markdown converter available"))
		return body
	}
	out, err := r.Markdown.Convert([]byte(body))
	if err != nil {
		r.logger().Warn("Cannot render Markdown", zap.String("file", name), zap.Error(err))
		return body
	}
	return string(out)
}

func addDates(rec Record) error {
	rfc, err := RFC2822Date(rec.Date())
	if err != nil {
		return err
	}
	simple, err := SimpleDate(rec.Date())
	if err != nil {
		return err
	}
	rec[KeyRFC2822Date] = rfc
	rec[KeySimpleDate] = simple
	return nil
}

// Glob returns the sorted, de-duplicated names matching any of the patterns.
func (r *Reader) Glob(patterns ...string) ([]string, error) {
	var names []string
	for _, pat := range patterns {
		m, err := fs.Glob(r.FS, pat)
		if err != nil {
			return nil, fmt.Errorf("Glob %q: %w", pat, err)
		}
		names = append(names, m...)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// ReadAll reads every file matching the patterns, in name order.
func (r *Reader) ReadAll(patterns ...string) ([]Record, error) {
	names, err := r.Glob(patterns...)
	if err != nil {
		return nil, err
	}
	recs := make([]Record, 0, len(names))
	for _, name := range names {
		rec, err := r.Read(name)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadFiles reads plain files for directory listings. Each record also gets its
// base name and a title taken from the first line of the body.
func (r *Reader) ReadFiles(patterns ...string) ([]Record, error) {
	names, err := r.Glob(patterns...)
	if err != nil {
		return nil, err
	}
	recs := make([]Record, 0, len(names))
	for _, name := range names {
		rec, err := r.Read(name)
		if err != nil {
			return nil, err
		}
		rec[KeyBasename] = path.Base(name)
		first, _, _ := strings.Cut(rec.Content(), "\n")
		rec[KeyTitle] = strings.TrimSuffix(first, "\r")
		recs = append(recs, rec)
	}
	return recs, nil
}
