package site

import (
	"fmt"
	"strings"

	"github.com/ancientlore/makesite/config"
	"github.com/ancientlore/makesite/content"
	"github.com/ancientlore/makesite/render"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type readingEntry struct {
	rec      content.Record
	sections content.Sections
}

// MakeReading renders the reading log: one block per configured tag holding the
// entries of that tag, newest first, plus a table of contents. All entries are
// read before anything is written, so an entry with an unknown tag leaves no
// reading page behind.
func (g *Generator) MakeReading(patterns []string, page string, params render.Params) error {
	readTpl, err := g.layouts.Wrap(page, "reading/read.html")
	if err != nil {
		return fmt.Errorf("MakeReading: %w", err)
	}
	raw, err := g.layouts.ReadAll("reading/tagl.html", "reading/tagi.html", "reading/tocl.html", "reading/toci.html")
	if err != nil {
		return fmt.Errorf("MakeReading: %w", err)
	}

	known := make(map[string]bool, len(g.settings.ReadingTags))
	for _, t := range g.settings.ReadingTags {
		known[t.Name] = true
	}
	recs, err := g.reader.ReadAll(patterns...)
	if err != nil {
		return fmt.Errorf("MakeReading: %w", err)
	}
	byTag := make(map[string][]content.Record)
	for _, rec := range recs {
		tag, _ := rec.Tag()
		if !known[tag] {
			return fmt.Errorf("MakeReading: %w %q in entry %q", ErrUnknownTag, tag, rec.Slug())
		}
		byTag[tag] = append(byTag[tag], rec)
	}

	var toc, blocks strings.Builder
	for _, t := range g.settings.ReadingTags {
		recs := byTag[t.Name]
		if len(recs) == 0 {
			continue
		}
		sortNewest(recs)
		tocItems, tagItems := readingItems(recs, raw["reading/toci.html"], raw["reading/tagi.html"], params)
		p := tagParams(t, len(recs), params)
		toc.WriteString(render.Render(raw["reading/tocl.html"], p.With(map[string]any{content.KeyContent: tocItems})))
		blocks.WriteString(render.Render(raw["reading/tagl.html"], p.With(map[string]any{content.KeyContent: tagItems})))
	}

	p := params.With(map[string]any{
		content.KeyContent: blocks.String(),
		"toc":              toc.String(),
		content.KeyTitle:   g.settings.ReadingTitle,
	})
	imports, err := HeadImports("reading.css tex.js", p.String("root"))
	if err != nil {
		return fmt.Errorf("MakeReading: %w", err)
	}
	p["imports"] = imports
	const out = "reading/index.html"
	g.setCanonical(p, out)
	g.log.Info("rendering", zap.String("dst", out), zap.Int("entries", len(recs)))
	if err = g.write(out, render.Render(readTpl, p)); err != nil {
		return fmt.Errorf("MakeReading: %w", err)
	}
	return nil
}

func readingItems(recs []content.Record, tocTpl, itemTpl string, params render.Params) (string, string) {
	var toc, items strings.Builder
	for _, rec := range recs {
		s := content.ParseSections(rec.Content())
		var quotes strings.Builder
		for _, q := range s.Quotes {
			fmt.Fprintf(&quotes, "<blockquote>\n%s</blockquote>\n", q)
		}
		p := params.With(rec.Params(), map[string]any{
			"quotes":      quotes.String(),
			"notes":       strings.Join(s.Notes, ""),
			"quote_title": label(len(s.Quotes), "An Excerpt", "Some Excerpts"),
			"extra":       content.ExtraLinks(rec),
		})
		items.WriteString(render.Render(itemTpl, p))
		toc.WriteString(render.Render(tocTpl, p))
	}
	return toc.String(), items.String()
}

func tagParams(t config.ReadingTag, count int, params render.Params) render.Params {
	title := t.Title
	if title == "" {
		title = cases.Title(language.English).String(t.Name)
	}
	return params.With(map[string]any{
		content.KeyTag: t.Name,
		"tag_title":    title,
		"count":        count,
		"tag_label":    label(count, t.Singular, t.Plural),
	})
}
