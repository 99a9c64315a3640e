package wxr2md

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is the raw post body HTML as found in the export.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
