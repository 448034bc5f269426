package webscraper

// Format identifies an output file format.
type Format string

// Supported output formats.
const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user-supplied format name.
// Returns EINVALID for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatXLSX, FormatMarkdown:
		return Format(s), nil
	}
	return "", Errorf(EINVALID, "invalid output format %q: must be one of json, csv, xlsx, markdown", s)
}

// Ext returns the file extension for the format, without the leading dot.
func (f Format) Ext() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// ResultWriter persists scraped pages to a file.
type ResultWriter interface {
	// Write saves the pages to the given path, creating parent directories
	// as needed. An empty page slice still produces a valid file.
	Write(path string, pages []*Page) error
}
