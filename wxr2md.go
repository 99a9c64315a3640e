// Package wxr2md converts WordPress WXR export files into Markdown
// documents with YAML front matter, suitable for static site generators.
// It is a one-shot batch converter: a WXR file is parsed into a Blog, and
// each post or page is rendered to one Markdown file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., wxr/, htmltomarkdown/, fs/).
package wxr2md
