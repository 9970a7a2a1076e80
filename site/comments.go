package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/ancientlore/makesite/content"
	"github.com/ancientlore/makesite/render"
	"go.uber.org/zap"
)

const commentsDst = "{{ blog }}/{{ slug }}/comments/index.html"

// MakeComments renders a comments page for every post. Posts without a comment
// file get the "no comments" page.
func (g *Generator) MakeComments(patterns []string, posts []content.Record, page string, params render.Params) error {
	var tpl [2]string
	for i, name := range []string{"comments/none.html", "comments/list.html"} {
		text, err := g.layouts.Wrap(page, name)
		if err != nil {
			return fmt.Errorf("MakeComments: %w", err)
		}
		tpl[i] = text
	}
	noneTpl, listTpl := tpl[0], tpl[1]
	itemTpl, err := g.layouts.Read("comments/item.html")
	if err != nil {
		return fmt.Errorf("MakeComments: %w", err)
	}

	names, err := g.reader.Glob(patterns...)
	if err != nil {
		return fmt.Errorf("MakeComments: %w", err)
	}
	bySlug := make(map[string][]content.Record, len(names))
	for _, name := range names {
		slug, comments, err := g.reader.ReadComments(name, params.String("author"))
		if err != nil {
			return fmt.Errorf("MakeComments: %w", err)
		}
		bySlug[slug] = comments
	}

	p := params.With(map[string]any{"blog": "blog"})
	for _, post := range posts {
		if comments, ok := bySlug[post.Slug()]; ok {
			err = g.makeCommentList(post, comments, listTpl, itemTpl, p)
		} else {
			err = g.makeCommentNone(post, noneTpl, p)
		}
		if err != nil {
			return fmt.Errorf("MakeComments: %w", err)
		}
	}
	return nil
}

func (g *Generator) makeCommentList(post content.Record, comments []content.Record, listTpl, itemTpl string, params render.Params) error {
	title, err := postTitle(post)
	if err != nil {
		return err
	}
	count := len(comments)
	var items strings.Builder
	for i, c := range comments {
		p := params.With(map[string]any{"index": i + 1}, c.Params(), map[string]any{
			"count":         count,
			"comment_label": label(count, "comment", "comments"),
			"retrieved":     "",
		})
		if src := c[content.KeySource]; src != "" {
			src = html.EscapeString(src)
			p["retrieved"] = fmt.Sprintf(`<div class="meta">(Retrieved from <a href="%s">%s</a>)</div>`, src, src)
		}
		items.WriteString(render.Render(itemTpl, p))
	}

	p := params.With(map[string]any{
		content.KeyContent: items.String(),
		content.KeySlug:    post.Slug(),
		content.KeyTitle:   "Comments on " + title,
		"post_title":       title,
		"count":            count,
		"comment_label":    label(count, "comment", "comments"),
	})
	imports, err := HeadImports(strings.TrimSpace("comment.css "+post[content.KeyImport]), p.String("root"))
	if err != nil {
		return fmt.Errorf("post %q: %w", post.Slug(), err)
	}
	p["imports"] = imports
	out := render.Render(commentsDst, p)
	g.setCanonical(p, out)
	g.log.Info("rendering", zap.String("slug", post.Slug()), zap.String("dst", out), zap.Int("comments", count))
	return g.write(out, render.Render(listTpl, p))
}

func (g *Generator) makeCommentNone(post content.Record, tpl string, params render.Params) error {
	title, err := postTitle(post)
	if err != nil {
		return err
	}
	p := params.With(map[string]any{
		content.KeySlug:  post.Slug(),
		content.KeyTitle: "Comments on " + title,
		"post_title":     title,
	})
	out := render.Render(commentsDst, p)
	g.setCanonical(p, out)
	g.log.Info("rendering", zap.String("slug", post.Slug()), zap.String("dst", out))
	return g.write(out, render.Render(tpl, p))
}

func postTitle(post content.Record) (string, error) {
	title, ok := post[content.KeyTitle]
	if !ok {
		return "", fmt.Errorf("post %q: %w %q", post.Slug(), content.ErrMissingHeader, content.KeyTitle)
	}
	return title, nil
}
