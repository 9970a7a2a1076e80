package site

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/ancientlore/makesite/content"
	"github.com/ancientlore/makesite/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MakeTextDir lists the .txt files of the folder dir below the static folder on
// dir/index.html, newest file name first. The files themselves reach the output
// with the rest of the static folder.
func (g *Generator) MakeTextDir(dir, page string, params render.Params) error {
	listTpl, err := g.layouts.Wrap(page, "textdir/list.html")
	if err != nil {
		return fmt.Errorf("MakeTextDir: %w", err)
	}
	itemTpl, err := g.layouts.Read("textdir/item.html")
	if err != nil {
		return fmt.Errorf("MakeTextDir: %w", err)
	}
	dir = strings.Trim(dir, "/")
	files, err := g.reader.ReadFiles(path.Join(g.settings.Static, dir, "*.txt"))
	if err != nil {
		return fmt.Errorf("MakeTextDir: %w", err)
	}
	slices.SortStableFunc(files, func(a, b content.Record) int {
		return strings.Compare(b[content.KeyBasename], a[content.KeyBasename])
	})
	p := params.With(map[string]any{
		content.KeyImport: "extra.css",
		content.KeyTitle:  cases.Title(language.English).String(path.Base(dir)) + " Files",
		"dirname":         dir,
	})
	if err = g.MakeList(files, dir+"/index.html", listTpl, itemTpl, p, nil); err != nil {
		return fmt.Errorf("MakeTextDir: %w", err)
	}
	return nil
}

// MakeMusic renders the music posts and the music index. Every entry gets a
// "widget" parameter rendered from the widget layout, using the root of the page
// the entry appears on.
func (g *Generator) MakeMusic(patterns []string, page string, params render.Params) error {
	listTpl, err := g.layouts.Wrap(page, "music/list.html")
	if err != nil {
		return fmt.Errorf("MakeMusic: %w", err)
	}
	postTpl, err := g.layouts.Wrap(page, "music/post.html")
	if err != nil {
		return fmt.Errorf("MakeMusic: %w", err)
	}
	raw, err := g.layouts.ReadAll("music/item.html", "music/widget.html")
	if err != nil {
		return fmt.Errorf("MakeMusic: %w", err)
	}

	root := params.String("root")
	music := params.With(map[string]any{content.KeyImport: "music.css", "root": root + "../"})
	widget := func(rec content.Record) {
		rec["widget"] = render.Render(raw["music/widget.html"], music.With(rec.Params()))
	}

	posts, err := g.MakePages(patterns, "music/{{ slug }}/index.html", postTpl,
		music.With(map[string]any{"blog": "music", content.KeyRender: "yes"}), widget)
	if err != nil {
		return fmt.Errorf("MakeMusic: %w", err)
	}

	music = music.With(map[string]any{"root": root})
	err = g.MakeList(posts, "music/index.html", listTpl, raw["music/item.html"],
		music.With(map[string]any{"blog": "music", content.KeyTitle: g.settings.MusicTitle}), widget)
	if err != nil {
		return fmt.Errorf("MakeMusic: %w", err)
	}
	return nil
}
