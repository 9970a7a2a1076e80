package site

import (
	"testing"

	"github.com/ancientlore/makesite/content"
	"github.com/stretchr/testify/require"
)

func TestMakeTags_Order(t *testing.T) {
	g, out := testGenerator(t, testSite(), nil, nil)
	posts := []content.Record{
		{"slug": "p1", "tag": "beta", "content": "one"},
		{"slug": "p2", "tag": "alpha", "content": "two"},
		{"slug": "p3", "tag": "gamma", "content": "three"},
		{"slug": "p4", "tag": "alpha", "content": "four"},
	}
	tpl := TagTemplates{
		Page:   "{{ header }}|{{ content }}",
		Header: "[{{ tag }} {{ count }}]",
		Group:  "<{{ tag_title }} {{ post_label }}>{{ content }}",
		Item:   "{{ slug }}={{ summary }};",
	}

	require.NoError(t, g.MakeTags(posts, "tags.html", tpl, testParams()))
	require.Equal(t,
		"[alpha 2][gamma 1][beta 1]|<Alpha posts>p2=two;p4=four;<Gamma post>p3=three;<Beta post>p1=one;",
		readOutput(t, out, "tags.html"))
}

func TestMakeTags_MissingTag(t *testing.T) {
	g, _ := testGenerator(t, testSite(), nil, nil)
	posts := []content.Record{{"slug": "untagged"}}

	err := g.MakeTags(posts, "tags.html", TagTemplates{}, testParams())
	require.ErrorIs(t, err, ErrMissingTag)
}

func TestMakeList_Callback(t *testing.T) {
	g, out := testGenerator(t, testSite(), nil, nil)
	g.settings.SummaryWords = 2
	posts := []content.Record{
		{"slug": "a", "content": "<p>one two three</p>"},
		{"slug": "b", "content": "four"},
	}
	mark := func(rec content.Record) { rec["mark"] = "*" + rec.Slug() }

	err := g.MakeList(posts, "{{ section }}/list.html", "{{ count }} {{ post_label }}:{{ content }}",
		"{{ mark }}({{ summary }})", testParams().With(map[string]any{"section": "x"}), mark)
	require.NoError(t, err)
	require.Equal(t, "2 posts:*a(one two)*b(four)", readOutput(t, out, "x/list.html"))
	require.Equal(t, "*a", posts[0]["mark"])
}

func TestMakePages_SortedNewestFirst(t *testing.T) {
	fsys := testSite()
	fsys["pages/2020-01-01-b.html"] = file("b")
	fsys["pages/2022-01-01-a.html"] = file("a")
	fsys["pages/c.html"] = file("c")
	g, out := testGenerator(t, fsys, nil, nil)

	recs, err := g.MakePages([]string{"pages/*.html"}, "p/{{ slug }}.html", "{{ slug }}:{{ content }}", testParams(), nil)
	require.NoError(t, err)
	var slugs []string
	for _, r := range recs {
		slugs = append(slugs, r.Slug())
	}
	require.Equal(t, []string{"a", "b", "c"}, slugs)
	require.Equal(t, "a:a", readOutput(t, out, "p/a.html"))
	require.Equal(t, "c:c", readOutput(t, out, "p/c.html"))
}
