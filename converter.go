package kamar

// Converter converts clean HTML into line-oriented text.
type Converter interface {
	// Convert transforms HTML content into text with one block element
	// (heading, paragraph, list item) per line.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
