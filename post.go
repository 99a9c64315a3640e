package wxr2md

import (
	"context"
	"time"
)

// Post types accepted from a WXR export. Items with any other
// wp:post_type (attachments, nav menu items, revisions) are dropped
// during loading.
const (
	TypePost = "post"
	TypePage = "page"
)

// Post represents a single blog post or page from a WXR export,
// immutable once constructed. Optional fields stay at their zero values
// when the export omits them or when parsing fails.
type Post struct {
	ID     string
	Title  string // YAML-safe quoted, see SafeYAMLValue
	Name   string // URL slug
	Author string // resolved display name, "" when unresolved

	Content string // Markdown, "" when the export had no content

	// Date is the publish timestamp, zero when absent or unparseable.
	// DateStr keeps the pre-quoted textual form for front matter
	// emission, e.g. `"2020-01-05 10:00:00"`, and is "" when Date is
	// zero.
	Date    time.Time
	DateStr string

	Modified    time.Time
	ModifiedStr string

	Categories []string // document order
	Tags       []string // document order; nicenames when so configured

	Type  string // TypePost or TypePage
	Draft bool   // wp:status was exactly "draft"
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "post ID required")
	}
	if p.Type != TypePost && p.Type != TypePage {
		return Errorf(EINVALID, "unsupported post type %q", p.Type)
	}
	return nil
}

// PostWriter stores rendered posts for one blog.
type PostWriter interface {
	// Prepare creates the output directory layout. Call once before
	// writing posts.
	Prepare() error

	// WritePost renders a post to Markdown and stores it.
	WritePost(ctx context.Context, post *Post) error
}
