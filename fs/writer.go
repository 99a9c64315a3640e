// Package fs writes converted posts as Markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wxr2md"
)

// Ensure Writer implements wxr2md.PostWriter at compile time.
var _ wxr2md.PostWriter = (*Writer)(nil)

// Writer writes rendered posts under a blog's output directory.
// Published posts go to posts/, drafts to drafts/.
type Writer struct {
	dir string // <outdir>/<blog-title>
}

// NewWriter creates a Writer for one blog. Output lands under
// outDir/<blog-title>. Call Prepare before writing posts.
func NewWriter(outDir string, blog *wxr2md.Blog) *Writer {
	return &Writer{dir: filepath.Join(outDir, blog.Title)}
}

// Dir returns the blog's output directory.
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) postsDir() string {
	return filepath.Join(w.dir, "posts")
}

func (w *Writer) draftsDir() string {
	return filepath.Join(w.dir, "drafts")
}

// Prepare creates the posts/ and drafts/ directories.
func (w *Writer) Prepare() error {
	for _, dir := range []string{w.postsDir(), w.draftsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Filename returns the output file name for a post: drafts and posts
// without a parseable publish date are named by ID, published posts by
// date and slug.
func Filename(p *wxr2md.Post) string {
	if p.Draft || p.Date.IsZero() {
		return p.ID + ".md"
	}
	return p.Date.Format("2006-01-02") + "-" + p.Name + ".md"
}

// WritePost renders a post to Markdown and writes it to disk.
func (w *Writer) WritePost(ctx context.Context, post *wxr2md.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := post.Validate(); err != nil {
		return err
	}

	dir := w.postsDir()
	if post.Draft {
		dir = w.draftsDir()
	}

	path := filepath.Join(dir, Filename(post))
	return os.WriteFile(path, []byte(post.Markdown()), 0644)
}
