package parameter

// Blog content defaults
const (
	// BlogWordsPerMinute drives derived read time
	BlogWordsPerMinute = 200

	BlogDefaultTitle     = "Untitled"
	BlogDefaultThumbnail = "/blog/thumbnails/default.jpg"

	// BlogDateLayout is the date format of frontmatter dates and defaults
	BlogDateLayout = "2006-01-02"

	// BlogFileExt is the markdown source extension
	BlogFileExt = ".md"

	// FrontmatterDelimiter opens and closes the header block
	FrontmatterDelimiter = "---"
)
