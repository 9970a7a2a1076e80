package site

import (
	"fmt"

	"github.com/ancientlore/makesite/content"
	"github.com/ancientlore/makesite/render"
)

// MakeBlog renders the blog posts, the blog index, the tag page and the RSS feed.
// Posts with a "list: no" header get a page but appear in no list. The posts are
// returned newest first.
func (g *Generator) MakeBlog(patterns []string, page string, params render.Params) ([]content.Record, error) {
	wrapped := make(map[string]string)
	for _, name := range []string{"blog/post.html", "blog/list.html", "blog/tags.html"} {
		text, err := g.layouts.Wrap(page, name)
		if err != nil {
			return nil, fmt.Errorf("MakeBlog: %w", err)
		}
		wrapped[name] = text
	}
	raw, err := g.layouts.ReadAll("blog/tagh.html", "blog/tagl.html", "blog/item.html", "blog/feed.xml", "blog/item.xml")
	if err != nil {
		return nil, fmt.Errorf("MakeBlog: %w", err)
	}

	root := params.String("root")
	posts, err := g.MakePages(patterns, "blog/{{ slug }}/index.html", wrapped["blog/post.html"],
		params.With(map[string]any{"root": root + "../", "blog": "blog", content.KeyRender: "yes"}), nil)
	if err != nil {
		return nil, fmt.Errorf("MakeBlog: %w", err)
	}

	var listed []content.Record
	for _, post := range posts {
		if post.Listed() {
			listed = append(listed, post)
		}
	}

	section := map[string]any{"blog": "blog", content.KeyTitle: g.settings.BlogTitle}
	err = g.MakeList(listed, "index.html", wrapped["blog/list.html"], raw["blog/item.html"],
		params.With(section, map[string]any{"root": "./"}), nil)
	if err != nil {
		return nil, fmt.Errorf("MakeBlog: %w", err)
	}
	err = g.MakeTags(listed, "blog/index.html", TagTemplates{
		Page:   wrapped["blog/tags.html"],
		Header: raw["blog/tagh.html"],
		Group:  raw["blog/tagl.html"],
		Item:   raw["blog/item.html"],
	}, params.With(section))
	if err != nil {
		return nil, fmt.Errorf("MakeBlog: %w", err)
	}
	err = g.MakeList(listed, "blog/rss.xml", raw["blog/feed.xml"], raw["blog/item.xml"], params.With(section), nil)
	if err != nil {
		return nil, fmt.Errorf("MakeBlog: %w", err)
	}
	return posts, nil
}
