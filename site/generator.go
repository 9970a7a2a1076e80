/*
Package site generates a static web site from a folder of content files.

A site folder holds:

	content/          pages; content/blog, content/comments, content/music and
	                  content/reading hold the entries of those sections
	layout/           layouts with "{{ name }}" placeholders (see package layout)
	static/           files copied as is into the output
	params.json       optional placeholder values (see package config)
	makesite.cfg      optional generator settings

Run deletes the output folder and writes every page again; there is no
incremental build.
*/
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ancientlore/makesite/config"
	"github.com/ancientlore/makesite/content"
	"github.com/ancientlore/makesite/layout"
	"github.com/ancientlore/makesite/markdown"
	"github.com/ancientlore/makesite/render"
	"go.uber.org/zap"
)

// Generator writes the pages of one site.
type Generator struct {
	src      fs.FS
	out      string
	settings config.Settings
	layouts  *layout.Set
	reader   *content.Reader
	log      *zap.Logger
	urls     []string // canonical URLs of the pages written so far
}

// New returns a Generator reading the site from src and writing to the out
// folder of the local file system. md may be nil when Markdown is unavailable.
func New(src fs.FS, out string, settings config.Settings, md markdown.Converter, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	layouts, err := fs.Sub(src, "layout")
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return &Generator{
		src:      src,
		out:      out,
		settings: settings,
		layouts:  layout.New(layouts, settings.CacheBytes),
		reader:   &content.Reader{FS: src, Markdown: md, Logger: logger},
		log:      logger,
	}, nil
}

// contentPatterns returns glob patterns for the HTML and Markdown files matching prefix.
func contentPatterns(prefix string) []string {
	patterns := []string{prefix + ".html"}
	for _, ext := range markdown.Extensions {
		patterns = append(patterns, prefix+ext)
	}
	return patterns
}

// Check makes sure every comment file belongs to a blog post.
func (g *Generator) Check() error {
	posts, err := g.reader.Glob(contentPatterns("content/blog/*")...)
	if err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	stems := make(map[string]bool, len(posts))
	for _, p := range posts {
		stems[content.Stem(p)] = true
	}
	comments, err := g.reader.Glob("content/comments/*.html")
	if err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	for _, c := range comments {
		if !stems[content.Stem(c)] {
			return fmt.Errorf("Check: %w: %s", ErrMissingPost, c)
		}
	}
	g.log.Debug("comment files checked", zap.Int("posts", len(posts)), zap.Int("comments", len(comments)))
	return nil
}

// Run generates the whole site.
func (g *Generator) Run(params render.Params) error {
	g.urls = nil
	if err := g.reset(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	page, err := g.layouts.Read(layout.Page)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	sub := params.With(map[string]any{"root": "../"})
	_, err = g.MakePages(contentPatterns("content/[^_]*"), "{{ slug }}/index.html", page,
		sub.With(map[string]any{content.KeyRender: "yes"}), nil)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	posts, err := g.MakeBlog(contentPatterns("content/blog/*"), page, sub)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	err = g.MakeComments([]string{"content/comments/*.html"}, posts, page,
		params.With(map[string]any{"root": "../../../"}))
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	if err = g.MakeMusic(contentPatterns("content/music/*"), page, sub); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	if err = g.MakeReading(contentPatterns("content/reading/*"), page, sub); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	for _, dir := range g.settings.TextDirs {
		if err = g.MakeTextDir(dir, page, sub); err != nil {
			return fmt.Errorf("Run: %w", err)
		}
	}
	if err = g.MakeSitemap(params); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	return nil
}

// reset recreates the output folder holding a copy of the static folder.
func (g *Generator) reset() error {
	clean := filepath.Clean(g.out)
	if g.out == "" || clean == "." || clean == string(filepath.Separator) {
		return fmt.Errorf("%w %q", ErrUnsafeOutput, g.out)
	}
	if err := os.RemoveAll(clean); err != nil {
		return err
	}
	static := g.settings.Static
	if static == "" {
		static = "."
	}
	if _, err := fs.Stat(g.src, static); errors.Is(err, fs.ErrNotExist) {
		g.log.Warn("no static folder", zap.String("static", static))
		return os.MkdirAll(clean, 0o755)
	}
	sfs, err := fs.Sub(g.src, static)
	if err != nil {
		return err
	}
	return os.CopyFS(clean, sfs)
}

// write stores text at the slash separated path dst below the output folder.
func (g *Generator) write(dst, text string) error {
	name := filepath.Join(g.out, filepath.FromSlash(dst))
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// canonical returns the absolute URL of the page written to dst.
func canonical(params render.Params, dst string) string {
	return params.String("site_url") + strings.ReplaceAll(dst, "index.html", "")
}

// setCanonical sets the canonical_url parameter for the page written to dst and
// remembers HTML pages for the site map.
func (g *Generator) setCanonical(p render.Params, dst string) {
	u := canonical(p, dst)
	p["canonical_url"] = u
	if path.Ext(dst) == ".html" {
		g.urls = append(g.urls, u)
	}
}

// label returns one for a count of one and many otherwise.
func label(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// sortNewest orders records by date, newest first, keeping the order of equal dates.
func sortNewest(recs []content.Record) {
	slices.SortStableFunc(recs, func(a, b content.Record) int {
		return strings.Compare(b.Date(), a.Date())
	})
}

// withImports expands the import parameter of p, if any, into head tags.
func withImports(p render.Params) error {
	if !p.Has(content.KeyImport) {
		return nil
	}
	imports, err := HeadImports(p.String(content.KeyImport), p.String("root"))
	if err != nil {
		return err
	}
	p["imports"] = imports
	return nil
}
