package site

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ancientlore/makesite/content"
	"github.com/ancientlore/makesite/render"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Callback may add parameters to a record before it is rendered.
type Callback func(content.Record)

// MakePages renders one page per content file matching patterns. dst is itself
// rendered to get the output path of each page. A page whose params hold
// "render: yes" has its own content rendered first, so posts can use
// placeholders. The records are returned newest first.
func (g *Generator) MakePages(patterns []string, dst, tpl string, params render.Params, callback Callback) ([]content.Record, error) {
	names, err := g.reader.Glob(patterns...)
	if err != nil {
		return nil, fmt.Errorf("MakePages: %w", err)
	}
	items := make([]content.Record, 0, len(names))
	for _, name := range names {
		rec, err := g.reader.Read(name)
		if err != nil {
			return nil, fmt.Errorf("MakePages: %w", err)
		}
		if callback != nil {
			callback(rec)
		}
		p := params.With(rec.Params())
		if p.String(content.KeyRender) == "yes" {
			text := render.Render(rec.Content(), p)
			rec[content.KeyContent] = text
			p[content.KeyContent] = text
		}
		if err = withImports(p); err != nil {
			return nil, fmt.Errorf("MakePages %q: %w", name, err)
		}
		items = append(items, rec)

		out := render.Render(dst, p)
		g.setCanonical(p, out)
		g.log.Info("rendering", zap.String("slug", rec.Slug()), zap.String("dst", out))
		if err = g.write(out, render.Render(tpl, p)); err != nil {
			return nil, fmt.Errorf("MakePages: %w", err)
		}
	}
	sortNewest(items)
	return items, nil
}

// MakeList renders a list page holding one item per post, each with a summary
// of the post content.
func (g *Generator) MakeList(posts []content.Record, dst, listTpl, itemTpl string, params render.Params, callback Callback) error {
	var items strings.Builder
	for _, post := range posts {
		if callback != nil {
			callback(post)
		}
		p := params.With(post.Params(), map[string]any{
			"summary": content.Summary(post.Content(), g.settings.SummaryWords),
		})
		items.WriteString(render.Render(itemTpl, p))
	}
	p := params.With(map[string]any{
		content.KeyContent: items.String(),
		"count":            len(posts),
		"post_label":       label(len(posts), "post", "posts"),
	})
	if err := withImports(p); err != nil {
		return fmt.Errorf("MakeList: %w", err)
	}
	out := render.Render(dst, p)
	g.setCanonical(p, out)
	g.log.Info("rendering", zap.String("list", out), zap.Int("count", len(posts)))
	if err := g.write(out, render.Render(listTpl, p)); err != nil {
		return fmt.Errorf("MakeList: %w", err)
	}
	return nil
}

// TagTemplates are the layouts of a tag page.
type TagTemplates struct {
	Page   string // whole page; gets "header" and "content"
	Header string // one entry of the header strip per tag
	Group  string // one block per tag; gets the rendered items as "content"
	Item   string // one entry per post
}

type tagGroup struct {
	tag   string
	posts []content.Record
}

// MakeTags renders a page grouping posts by their tag. Larger groups come first;
// groups of equal size are ordered by tag name, descending.
func (g *Generator) MakeTags(posts []content.Record, dst string, tpl TagTemplates, params render.Params) error {
	var groups []*tagGroup
	index := make(map[string]*tagGroup)
	for _, post := range posts {
		tag, ok := post.Tag()
		if !ok {
			return fmt.Errorf("MakeTags: %w: post %q", ErrMissingTag, post.Slug())
		}
		grp := index[tag]
		if grp == nil {
			grp = &tagGroup{tag: tag}
			index[tag] = grp
			groups = append(groups, grp)
		}
		grp.posts = append(grp.posts, post)
	}
	slices.SortFunc(groups, func(a, b *tagGroup) int {
		if c := cmp.Compare(len(b.posts), len(a.posts)); c != 0 {
			return c
		}
		return strings.Compare(b.tag, a.tag)
	})

	caser := cases.Title(language.English)
	var header, blocks strings.Builder
	for _, grp := range groups {
		var items strings.Builder
		for _, post := range grp.posts {
			p := params.With(post.Params(), map[string]any{
				"summary": content.Summary(post.Content(), g.settings.SummaryWords),
			})
			items.WriteString(render.Render(tpl.Item, p))
		}
		p := params.With(map[string]any{
			content.KeyContent: items.String(),
			content.KeyTag:     grp.tag,
			"count":            len(grp.posts),
			"post_label":       label(len(grp.posts), "post", "posts"),
			"tag_title":        caser.String(grp.tag),
		})
		header.WriteString(render.Render(tpl.Header, p))
		blocks.WriteString(render.Render(tpl.Group, p))
	}

	p := params.With(map[string]any{
		"header":           header.String(),
		content.KeyContent: blocks.String(),
	})
	if err := withImports(p); err != nil {
		return fmt.Errorf("MakeTags: %w", err)
	}
	out := render.Render(dst, p)
	g.setCanonical(p, out)
	g.log.Info("rendering", zap.String("tags", out), zap.Int("groups", len(groups)))
	if err := g.write(out, render.Render(tpl.Page, p)); err != nil {
		return fmt.Errorf("MakeTags: %w", err)
	}
	return nil
}
