// Package markdown converts Markdown content to HTML.
//
// The converter is chosen once, when the generator starts. Choosing the engine
// "none" yields a nil Converter, which callers treat as Markdown support being
// unavailable: the source text is kept as is.
package markdown

import (
	"bytes"
	"fmt"
	"path"
	"slices"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/russross/blackfriday/v2"
	fences "github.com/stefanfritsch/goldmark-fences"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Engine names accepted by New.
const (
	Blackfriday = "blackfriday"
	Goldmark    = "goldmark"
	None        = "none"
)

// DefaultCodeStyle is the chroma style used for fenced code by the goldmark engine.
const DefaultCodeStyle = "github"

// Extensions lists the file extensions treated as Markdown.
var Extensions = []string{".md", ".mkd", ".mkdn", ".mdown", ".markdown"}

// A Converter renders Markdown source to HTML.
type Converter interface {
	Convert(src []byte) ([]byte, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(src []byte) ([]byte, error)

// Convert calls f(src).
func (f ConverterFunc) Convert(src []byte) ([]byte, error) {
	return f(src)
}

// New returns the converter for the named engine. An empty name selects
// blackfriday. The "none" engine returns a nil Converter and no error.
func New(engine, codeStyle string) (Converter, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", Blackfriday:
		return blackfridayConverter{}, nil
	case Goldmark:
		return newGoldmark(codeStyle), nil
	case None:
		return nil, nil
	default:
		return nil, fmt.Errorf("markdown: unknown engine %q", engine)
	}
}

// IsMarkdown reports whether name has one of the Markdown file extensions.
func IsMarkdown(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(path.Ext(name)))
}

type blackfridayConverter struct{}

// Convert renders src with the common extensions and footnotes enabled.
func (blackfridayConverter) Convert(src []byte) ([]byte, error) {
	return blackfriday.Run(src, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)), nil
}

type goldmarkConverter struct {
	md goldmark.Markdown
}

func newGoldmark(codeStyle string) goldmarkConverter {
	if codeStyle == "" {
		codeStyle = DefaultCodeStyle
	}
	return goldmarkConverter{
		md: goldmark.New(
			goldmark.WithParserOptions(
				parser.WithAttribute(),
			),
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				highlighting.NewHighlighting(
					highlighting.WithStyle(codeStyle),
					highlighting.WithFormatOptions(chromahtml.TabWidth(2)),
				),
				&fences.Extender{},
			),
			goldmark.WithRendererOptions(
				goldmarkhtml.WithUnsafe(),
			),
		),
	}
}

// Convert renders src as GitHub flavored Markdown.
func (c goldmarkConverter) Convert(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}
	return buf.Bytes(), nil
}
