package wxr2md

import "strings"

// bodyDateFormat is the layout for the optional italic date line in the
// rendered body, e.g. "Sun 05 Jan 2020, 10:00".
const bodyDateFormat = "Mon 02 Jan 2006, 03:04"

// FrontMatter renders the post's YAML front matter, fenced by "---"
// lines. Key order is fixed: id, layout, title, author, date, modified,
// then categories and tags only when non-empty, then a draft marker only
// for drafts. Absent dates render as empty values so the key order stays
// stable.
func (p *Post) FrontMatter() string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: " + p.ID + "\n")
	b.WriteString("layout: post\n")
	b.WriteString("title: " + p.Title + "\n")
	b.WriteString("author: " + p.Author + "\n")
	b.WriteString("date: " + p.DateStr + "\n")
	b.WriteString("modified: " + p.ModifiedStr + "\n")
	if len(p.Categories) > 0 {
		b.WriteString("categories:\n")
		b.WriteString(blockList(p.Categories))
	}
	if len(p.Tags) > 0 {
		b.WriteString("tags:\n")
		b.WriteString(blockList(p.Tags))
	}
	if p.Draft {
		b.WriteString("draft: true\n")
	}
	b.WriteString("---\n")
	return b.String()
}

// blockList renders values as a YAML block list, one "  - value" line
// per entry.
func blockList(values []string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString("  - " + v + "\n")
	}
	return b.String()
}

// Body renders the Markdown body. The title heading and the formatted
// date line are optional capabilities; the default rendering includes
// neither. Each present section is followed by a blank line except the
// trailing content block.
func (p *Post) Body(includeTitle, includeDate bool) string {
	var b strings.Builder
	if includeTitle && p.Title != "" {
		b.WriteString("# " + p.Title + "\n\n")
	}
	if includeDate && !p.Date.IsZero() {
		b.WriteString("_" + p.Date.Format(bodyDateFormat) + "_\n\n")
	}
	if p.Content != "" {
		b.WriteString(p.Content + "\n")
	}
	return b.String()
}

// Markdown renders the complete output document: front matter
// immediately followed by the default body.
func (p *Post) Markdown() string {
	return p.FrontMatter() + p.Body(false, false)
}
