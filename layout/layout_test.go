package layout

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func testSet() *Set {
	return New(fstest.MapFS{
		"page.html":      {Data: []byte("<title>{{ title }}</title><main>{{ content }}</main>")},
		"blog/post.html": {Data: []byte("<h1>{{ title }}</h1>{{ content }}")},
		"blog/feed.xml":  {Data: []byte("<rss>{{ content }}</rss>")},
	}, 1<<20)
}

func TestRead(t *testing.T) {
	s := testSet()

	text, err := s.Read("blog/feed.xml")
	require.NoError(t, err)
	require.Equal(t, "<rss>{{ content }}</rss>", text)

	// Second read is served from the cache and must match.
	again, err := s.Read("blog/feed.xml")
	require.NoError(t, err)
	require.Equal(t, text, again)

	_, err = s.Read("missing.html")
	require.Error(t, err)
}

func TestWrap(t *testing.T) {
	s := testSet()
	page, err := s.Read(Page)
	require.NoError(t, err)

	wrapped, err := s.Wrap(page, "blog/post.html")
	require.NoError(t, err)
	require.Equal(t, "<title>{{ title }}</title><main><h1>{{ title }}</h1>{{ content }}</main>", wrapped)

	_, err = s.Wrap(page, "nope.html")
	require.Error(t, err)
}

func TestReadAll(t *testing.T) {
	s := testSet()
	m, err := s.ReadAll("page.html", "blog/feed.xml")
	require.NoError(t, err)
	require.Len(t, m, 2)

	_, err = s.ReadAll("page.html", "nope.html")
	require.Error(t, err)
}

func TestNew_Independent(t *testing.T) {
	a := New(fstest.MapFS{"page.html": {Data: []byte("a")}}, 1<<20)
	b := New(fstest.MapFS{"page.html": {Data: []byte("b")}}, 1<<20)

	ta, err := a.Read(Page)
	require.NoError(t, err)
	tb, err := b.Read(Page)
	require.NoError(t, err)
	require.Equal(t, "a", ta)
	require.Equal(t, "b", tb)
}
