package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, engine := range []string{"", "blackfriday", "Goldmark", " goldmark "} {
		c, err := New(engine, "")
		require.NoError(t, err, engine)
		require.NotNil(t, c, engine)
	}

	c, err := New("none", "")
	require.NoError(t, err)
	require.Nil(t, c)

	_, err = New("commonmark.py", "")
	require.Error(t, err)
}

func TestConvert(t *testing.T) {
	src := []byte("# Title\n\nSome *emphasis* and a [link](https://example.com).\n")
	for _, engine := range []string{Blackfriday, Goldmark} {
		t.Run(engine, func(t *testing.T) {
			c, err := New(engine, "")
			require.NoError(t, err)

			out, err := c.Convert(src)
			require.NoError(t, err)
			html := string(out)
			require.True(t, strings.Contains(html, "<h1"), html)
			require.Contains(t, html, "<em>emphasis</em>")
			require.Contains(t, html, `<a href="https://example.com">link</a>`)
		})
	}
}

func TestConvert_GoldmarkKeepsRawHTML(t *testing.T) {
	c, err := New(Goldmark, "")
	require.NoError(t, err)

	out, err := c.Convert([]byte("<div class=\"x\">raw</div>\n"))
	require.NoError(t, err)
	require.Contains(t, string(out), `<div class="x">raw</div>`)
}

func TestConverterFunc(t *testing.T) {
	boom := errors.New("boom")
	var c Converter = ConverterFunc(func([]byte) ([]byte, error) { return nil, boom })
	_, err := c.Convert(nil)
	require.ErrorIs(t, err, boom)
}

func TestIsMarkdown(t *testing.T) {
	for _, name := range []string{"a.md", "a.MKD", "x/y.mkdn", "a.mdown", "a.markdown"} {
		require.True(t, IsMarkdown(name), name)
	}
	for _, name := range []string{"a.html", "a.txt", "md", "a.md.html"} {
		require.False(t, IsMarkdown(name), name)
	}
}
