/*
Package layout loads the layout files that pages are rendered with.

Layouts are plain text files holding "{{ name }}" placeholders, stored under the
"layout" folder of a site:

	layout/page.html          the wrapper every HTML page is rendered into
	layout/blog/post.html     a fragment placed into the wrapper's {{ content }}
	layout/blog/feed.xml      a complete document used as is

Several sections read the same files during one run, so reads go through a
read-only groupcache-backed file system (see github.com/ancientlore/cachefs).
*/
package layout

import (
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/makesite/render"
)

// Page is the name of the page wrapper layout.
const Page = "page.html"

// groupSeq keeps groupcache group names unique; groupcache panics when a name
// is registered twice.
var groupSeq atomic.Int64

// Set reads layouts from a file system.
type Set struct {
	fs fs.FS
}

// New returns a Set reading layouts from fsys through a cache of sizeInBytes.
func New(fsys fs.FS, sizeInBytes int64) *Set {
	name := fmt.Sprintf("layouts-%d", groupSeq.Add(1))
	return &Set{
		fs: cachefs.New(fsys, &cachefs.Config{GroupName: name, SizeInBytes: sizeInBytes}),
	}
}

// Read returns the text of the named layout.
func (s *Set) Read(name string) (string, error) {
	b, err := fs.ReadFile(s.fs, name)
	if err != nil {
		return "", fmt.Errorf("layout %q: %w", name, err)
	}
	return string(b), nil
}

// Wrap places the named fragment into page at its {{ content }} placeholder.
// Other placeholders of page are left for later rendering.
func (s *Set) Wrap(page, name string) (string, error) {
	fragment, err := s.Read(name)
	if err != nil {
		return "", err
	}
	return render.Render(page, render.Params{"content": fragment}), nil
}

// ReadAll reads several layouts at once, keyed by name.
func (s *Set) ReadAll(names ...string) (map[string]string, error) {
	m := make(map[string]string, len(names))
	for _, name := range names {
		text, err := s.Read(name)
		if err != nil {
			return nil, err
		}
		m[name] = text
	}
	return m, nil
}
