package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
)

// RenderHTML converts session notes to an HTML fragment.
// Raw HTML in the notes is not passed through.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderDocument wraps the rendered notes in a standalone HTML page
func RenderDocument(title, md string) (string, error) {
	body, err := RenderHTML(md)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), body), nil
}
