// Package export writes the landing page as a static site.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nfrund/cloudx/internal/landing"
	"github.com/nfrund/cloudx/web"
)

// ErrNeedsServer is returned for a page that calls fragment endpoints, which
// a static host cannot answer. Render the page with landing.Options.Static.
var ErrNeedsServer = errors.New("page references server fragments")

// Renderable is anything that can write itself as HTML, such as a
// gomponents node or a rendered page.
type Renderable interface {
	Render(w io.Writer) error
}

// WriteSite renders page to dir/index.html and copies the embedded static
// assets to dir/static. Existing files are overwritten. Pages that reference
// fragment endpoints are rejected before anything is written.
func WriteSite(fsys afero.Fs, dir string, page Renderable) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if bytes.Contains(buf.Bytes(), []byte(landing.FragmentPrefix)) {
		return ErrNeedsServer
	}

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	index := filepath.Join(dir, "index.html")
	if err := afero.WriteFile(fsys, index, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", index, err)
	}

	return CopyStatic(fsys, filepath.Join(dir, "static"))
}

// CopyStatic copies the embedded static assets into dst.
func CopyStatic(fsys afero.Fs, dst string) error {
	return fs.WalkDir(web.FS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel("static", filepath.FromSlash(p))
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return fsys.MkdirAll(target, 0o755)
		}
		raw, err := web.FS.ReadFile(path.Clean(p))
		if err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, target, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		return nil
	})
}
