package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	text := "<!-- title: Hello -->\n<!-- tag: misc -->\n\n<p>Body</p>\n"

	var got []Header
	for h := range Parse(text, 0) {
		got = append(got, h)
	}

	require.Len(t, got, 2)
	require.Equal(t, "title", got[0].Key)
	require.Equal(t, "Hello", got[0].Value)
	require.Equal(t, "tag", got[1].Key)
	require.Equal(t, "misc", got[1].Value)
	require.Equal(t, "<p>Body</p>\n", text[got[1].End:])
}

func TestParse_StopsAtFirstNonHeader(t *testing.T) {
	text := "<!-- a: 1 -->\nbody\n<!-- b: 2 -->\n"

	headers, end := Collect(text, 0)
	require.Equal(t, map[string]string{"a": "1"}, headers)
	require.Equal(t, "body\n<!-- b: 2 -->\n", text[end:])
}

func TestParse_ValueKeepsLaterColons(t *testing.T) {
	headers, _ := Collect("<!-- url: https://example.com/a:b -->", 0)
	require.Equal(t, "https://example.com/a:b", headers["url"])
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"no colon":          "<!-- note -->\ntext",
		"empty key":         "<!-- : value -->",
		"empty value":       "<!-- key: -->",
		"unterminated":      "<!-- key: value",
		"split across line": "<!-- key:\nvalue -->",
		"plain text":        "hello <!-- key: value -->",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			headers, end := Collect(text, 0)
			require.Empty(t, headers)
			require.Zero(t, end)
		})
	}
}

func TestParse_EmptyValueEndsBlock(t *testing.T) {
	text := "<!-- title: Hello -->\n<!-- subtitle:   -->\n<!-- tag: misc -->\nbody"

	headers, end := Collect(text, 0)
	require.Equal(t, map[string]string{"title": "Hello"}, headers)
	require.Equal(t, "<!-- subtitle:   -->\n<!-- tag: misc -->\nbody", text[end:])
	// A later block still starts at the next valid header.
	require.Equal(t, strings.Index(text, "\n<!-- tag:"), Next(text, end))
}

func TestParse_FromOffset(t *testing.T) {
	text := "ignored<!-- k: v -->rest"

	headers, end := Collect(text, len("ignored"))
	require.Equal(t, map[string]string{"k": "v"}, headers)
	require.Equal(t, "rest", text[end:])
}

func TestParse_EarlyBreak(t *testing.T) {
	n := 0
	for range Parse("<!-- a: 1 --><!-- b: 2 --><!-- c: 3 -->", 0) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestNext(t *testing.T) {
	text := "<!-- name: A -->\nfirst <!-- note --> comment\n\n<!-- name: B -->\nsecond\n"
	_, end := Collect(text, 0)

	next := Next(text, end)
	require.Equal(t, "first <!-- note --> comment", text[end:next])
	require.Equal(t, "\n\n<!-- name: B -->\nsecond\n", text[next:])

	_, end = Collect(text, next)
	require.Equal(t, -1, Next(text, end))
}

func TestNext_OutOfRange(t *testing.T) {
	require.Equal(t, -1, Next("abc", -1))
	require.Equal(t, -1, Next("abc", 10))
	require.Equal(t, -1, Next("", 0))
}
