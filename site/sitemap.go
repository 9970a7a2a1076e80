package site

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/ancientlore/makesite/render"
	"go.uber.org/zap"
)

// SitemapLayout is the optional layout of the site map. It gets the page URLs,
// one per line, as "content". Without it the site map is the bare list.
const SitemapLayout = "sitemap.txt"

// MakeSitemap writes sitemap.txt listing the canonical URL of every HTML page
// written so far, in sorted order. Pages hidden from lists with "list: no" are
// included since they are still reachable.
func (g *Generator) MakeSitemap(params render.Params) error {
	urls := slices.Clone(g.urls)
	slices.Sort(urls)
	urls = slices.Compact(urls)

	var sb strings.Builder
	for _, u := range urls {
		sb.WriteString(u)
		sb.WriteByte('\n')
	}
	text := sb.String()

	tpl, err := g.layouts.Read(SitemapLayout)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("MakeSitemap: %w", err)
	default:
		text = render.Render(tpl, params.With(map[string]any{"content": text, "count": len(urls)}))
	}

	g.log.Info("rendering", zap.String("dst", SitemapLayout), zap.Int("urls", len(urls)))
	if err = g.write(SitemapLayout, text); err != nil {
		return fmt.Errorf("MakeSitemap: %w", err)
	}
	return nil
}
