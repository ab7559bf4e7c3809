// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Text renders the tree as plain text: all tags stripped, space runs
// collapsed to one space, blank-line runs collapsed to one blank line.
func Text(root *html.Node) string {
	var b strings.Builder
	textWalk(root, &b)
	return normalize(collapseSpaces(b.String()))
}

// textWalk appends the text content of n, inserting line breaks after
// block-level elements so paragraphs stay separated.
func textWalk(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			return
		case "br":
			b.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textWalk(c, b)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "table", "blockquote":
			b.WriteString("\n\n")
		case "td", "th":
			b.WriteString(" ")
		}
	}
}

// plainText returns the raw text content of n without any separators,
// used for code blocks where whitespace is significant.
func plainText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

// collapseSpaces folds runs of spaces and tabs (not newlines) into a
// single space and drops them at line edges.
func collapseSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// normalize trims trailing whitespace per line, collapses runs of three
// or more newlines to exactly one blank line, and trims the result.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	s = strings.Join(lines, "\n")

	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(s)
}
