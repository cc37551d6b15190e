package prizeconfig

import (
	"mime"
	"path"
	"strings"
)

// Format is the encoding of a prize document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Payload is a fetched document and how it is encoded
type Payload struct {
	// Data is the raw document body
	Data []byte

	// Format tells the loader how to decode Data
	Format Format

	// Origin is the file path, URL or key the data was read from
	Origin string
}

// FormatFromExtension picks a format from a file name or URL path.
// Anything that is not .yaml/.yml is treated as JSON.
func FormatFromExtension(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FormatFromContentType maps a Content-Type header to a format. The second
// return is false when the header says nothing useful.
func FormatFromContentType(contentType string) (Format, bool) {
	if contentType == "" {
		return "", false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return FormatJSON, true
	case strings.Contains(mediaType, "yaml"):
		return FormatYAML, true
	default:
		return "", false
	}
}
