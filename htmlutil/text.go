// Package htmlutil provides HTML processing utilities for page-text extraction.
package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// Text extracts the visible text of an HTML document. Script, style and
// noscript subtrees are skipped, text nodes are joined with single spaces,
// and runs of whitespace collapse to one space. When maxChars > 0 the
// result is truncated to at most maxChars bytes.
func Text(htmlContent string, maxChars int) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var b strings.Builder
	collectText(doc, &b)

	text := strings.Join(strings.Fields(b.String()), " ")
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}
	return text
}

var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && skipElements[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
