package interfaces

// ParseOptions controls how generated markdown is rendered to HTML for
// previews.
type ParseOptions struct {
	// Extensions selects goldmark extensions by name (gfm, linkify, ...).
	Extensions []string
	// HardWraps renders single newlines as <br> tags.
	HardWraps bool
	// SafeMode suppresses raw HTML in the output.
	SafeMode bool
}

// MarkdownParser renders markdown source into HTML.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}
