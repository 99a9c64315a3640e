package wxr2md

import "io"

// Blog represents a WordPress site parsed from a WXR export. It holds the
// channel-level metadata, summary counts, and every post and page found in
// the export, in document order. A Blog is built once per conversion run
// and is not modified afterwards.
type Blog struct {
	Title       string
	Description string
	URL         string

	NumPosts      int
	NumPages      int
	NumTags       int
	NumCategories int

	Posts []*Post
}

// BlogParser loads a Blog from WXR XML.
type BlogParser interface {
	// Parse reads a complete WXR document and returns the Blog it
	// describes. Returns EINVALID if the XML cannot be parsed or the
	// channel element is missing. Missing per-item fields do not fail
	// the load; the affected Post fields stay at their zero values.
	Parse(r io.Reader) (*Blog, error)
}
