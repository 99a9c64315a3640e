// Package wxr parses WordPress eXtended RSS (WXR) export files.
package wxr

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/wxr2md"
	"github.com/goliatone/go-slug"
)

// Ensure Parser implements wxr2md.BlogParser at compile time.
var _ wxr2md.BlogParser = (*Parser)(nil)

// Namespaces maps logical namespace names to URIs. The logical names are
// the conventional WXR prefixes; the actual prefixes used by a document
// are resolved from its xmlns declarations at parse time.
type Namespaces map[string]string

// DefaultNamespaces returns the namespaces of the WXR 1.2 export format.
func DefaultNamespaces() Namespaces {
	return Namespaces{
		"content": "http://purl.org/rss/1.0/modules/content/",
		"wp":      "http://wordpress.org/export/1.2/",
		"excerpt": "http://wordpress.org/export/1.2/excerpt/",
		"wfw":     "http://wellformedweb.org/CommentAPI/",
		"dc":      "http://purl.org/dc/elements/1.1/",
	}
}

// Options control how items are mapped to posts.
type Options struct {
	// NicenameTags renders tags using their nicename (slug) attribute
	// instead of their display text.
	NicenameTags bool
}

// Parser loads Blogs from WXR XML documents.
type Parser struct {
	Namespaces Namespaces
	Options    Options
	Converter  wxr2md.Converter
}

// NewParser creates a Parser with the default WXR namespaces.
func NewParser(conv wxr2md.Converter, opts Options) *Parser {
	return &Parser{
		Namespaces: DefaultNamespaces(),
		Options:    opts,
		Converter:  conv,
	}
}

// Parse reads a complete WXR document and returns the Blog it describes.
//
// Malformed XML or a missing channel element fail the whole load with
// EINVALID. Missing channel scalars and missing per-item fields are
// tolerated uniformly: the affected field stays at its zero value.
func (p *Parser) Parse(r io.Reader) (*wxr2md.Blog, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, wxr2md.Errorf(wxr2md.EINVALID, "malformed WXR XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, wxr2md.Errorf(wxr2md.EINVALID, "empty WXR document")
	}

	channel := root.SelectElement("channel")
	if channel == nil {
		return nil, wxr2md.Errorf(wxr2md.EINVALID, "WXR document has no channel element")
	}

	px := p.resolvePrefixes(root)

	blog := &wxr2md.Blog{
		Title:       text(channel, "title"),
		Description: text(channel, "description"),
		URL:         text(channel, "link"),
	}

	authors := collectAuthors(channel, px)

	blog.NumTags = len(channel.SelectElements(px.qual("wp", "tag")))
	blog.NumCategories = len(channel.SelectElements(px.qual("wp", "category")))

	// Posts and the post/page counts come from the same filtered pass,
	// so they cannot drift apart.
	for _, item := range channel.SelectElements("item") {
		post := p.mapPost(item, px, authors)
		if post == nil {
			continue
		}
		switch post.Type {
		case wxr2md.TypePost:
			blog.NumPosts++
		case wxr2md.TypePage:
			blog.NumPages++
		}
		blog.Posts = append(blog.Posts, post)
	}

	return blog, nil
}

// prefixes maps logical namespace names to the prefixes a particular
// document declares for them.
type prefixes map[string]string

func (px prefixes) qual(name, tag string) string {
	return px[name] + ":" + tag
}

// resolvePrefixes reads the xmlns declarations on the root element and
// maps each configured namespace URI to its document prefix. Namespaces
// the document does not declare fall back to their conventional prefix.
func (p *Parser) resolvePrefixes(root *etree.Element) prefixes {
	byURI := make(map[string]string)
	for _, a := range root.Attr {
		if a.Space == "xmlns" {
			byURI[a.Value] = a.Key
		}
	}

	px := make(prefixes, len(p.Namespaces))
	for name, uri := range p.Namespaces {
		if pre, ok := byURI[uri]; ok {
			px[name] = pre
		} else {
			px[name] = name
		}
	}
	return px
}

// collectAuthors builds the login → display name roster from the
// channel's wp:author elements. The first record for a login wins.
func collectAuthors(channel *etree.Element, px prefixes) map[string]string {
	authors := make(map[string]string)
	for _, a := range channel.SelectElements(px.qual("wp", "author")) {
		login := text(a, px.qual("wp", "author_login"))
		if login == "" {
			continue
		}
		if _, ok := authors[login]; ok {
			continue
		}
		authors[login] = text(a, px.qual("wp", "author_display_name"))
	}
	return authors
}

// mapPost builds a Post from one item element, or returns nil for post
// types that are not "post" or "page".
func (p *Parser) mapPost(item *etree.Element, px prefixes, authors map[string]string) *wxr2md.Post {
	postType := text(item, px.qual("wp", "post_type"))
	if postType != wxr2md.TypePost && postType != wxr2md.TypePage {
		return nil
	}

	title := text(item, "title")

	post := &wxr2md.Post{
		ID:     text(item, px.qual("wp", "post_id")),
		Title:  wxr2md.SafeYAMLValue(title),
		Type:   postType,
		Author: authors[text(item, px.qual("dc", "creator"))],
		Draft:  text(item, px.qual("wp", "status")) == "draft",
	}

	post.Name = text(item, px.qual("wp", "post_name"))
	if post.Name == "" {
		post.Name = slugFromTitle(title, post.ID)
	}

	post.Date, post.DateStr = parseDate(text(item, px.qual("wp", "post_date")))
	post.Modified, post.ModifiedStr = parseDate(text(item, px.qual("wp", "post_modified")))

	// Conversion failures are treated like any other field parse
	// failure: the content stays absent and the load continues.
	if html := rawText(item, px.qual("content", "encoded")); strings.TrimSpace(html) != "" {
		if md, err := p.Converter.Convert(html); err == nil {
			post.Content = collapseBlankLines(md)
		}
	}

	for _, c := range item.SelectElements("category") {
		switch c.SelectAttrValue("domain", "") {
		case "category":
			post.Categories = append(post.Categories, c.Text())
		case "post_tag":
			tag := c.Text()
			if p.Options.NicenameTags {
				if nice := c.SelectAttrValue("nicename", ""); nice != "" {
					tag = nice
				}
			}
			post.Tags = append(post.Tags, tag)
		}
	}

	return post
}

// WXR exports write timestamps as "2006-01-02 15:04:05"; some exporters
// use a T separator instead.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseDate parses a WXR timestamp and returns it together with its
// pre-quoted front matter form. Unparseable input yields a zero time and
// an empty string.
func parseDate(s string) (time.Time, string) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, `"` + t.Format("2006-01-02 15:04:05") + `"`
		}
	}
	return time.Time{}, ""
}

var blankRun = regexp.MustCompile(`\n\s*\n`)

// collapseBlankLines reduces any run of blank (or whitespace-only) lines
// to a single blank line.
func collapseBlankLines(s string) string {
	return blankRun.ReplaceAllString(s, "\n\n")
}

// slugFromTitle derives a URL slug for items that carry no wp:post_name.
// Falls back to the post ID when the title normalizes to nothing.
func slugFromTitle(title, id string) string {
	if title != "" {
		if s, err := slug.Normalize(title); err == nil && s != "" {
			return s
		}
	}
	return id
}

// text returns the trimmed inner text of the first child element
// matching path, or "" when absent.
func text(parent *etree.Element, path string) string {
	if el := parent.SelectElement(path); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// rawText is like text but preserves surrounding whitespace, which is
// significant inside CDATA content blocks.
func rawText(parent *etree.Element, path string) string {
	if el := parent.SelectElement(path); el != nil {
		return el.Text()
	}
	return ""
}
