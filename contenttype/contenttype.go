// Package contenttype classifies MIME types into the broad categories the
// pipeline cares about: JSON bodies are parsed and folded into example
// pools, textual bodies are skipped, and binary payloads get a fixed
// file-upload schema.
package contenttype

import (
	"mime"
	"strings"
)

type Category string

const (
	JSON   Category = "json"
	Form   Category = "form"
	Text   Category = "text"
	Binary Category = "binary"
)

// Classify returns the category for a content-type header value. Parameters
// (charset, boundary) are stripped before matching; a malformed value falls
// back to a lowercase comparison of the raw string. Empty means binary.
func Classify(contentType string) Category {
	if contentType == "" {
		return Binary
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	switch {
	case strings.Contains(mediaType, "json"):
		return JSON
	case mediaType == "application/x-www-form-urlencoded":
		return Form
	case strings.HasPrefix(mediaType, "text/"),
		strings.Contains(mediaType, "xml"),
		strings.Contains(mediaType, "yaml"):
		return Text
	default:
		return Binary
	}
}
