package utils

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// RenderMarkdown converts admin-entered text to HTML. Raw HTML in the source
// is dropped by goldmark's default renderer.
func RenderMarkdown(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
