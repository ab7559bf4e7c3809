// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns cleaned HTML trees into Markdown and plain text.
// Both renderers are pure functions of the tree; malformed input has
// already been repaired by the HTML parser, so there are no error paths.
package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Markdown renders the tree as Markdown, preserving headings, links,
// images, emphasis, lists, and tables. Lines are never wrapped. Table
// rows come out as single pipe-joined lines, which is what the section
// extractor downstream keys on.
func Markdown(root *html.Node) string {
	var blocks []string
	markdownBlocks(root, &blocks)
	return normalize(strings.Join(blocks, "\n\n"))
}

// markdownBlocks walks block-level elements, appending one Markdown
// block per element to out.
func markdownBlocks(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		if text := collapseInline(n.Data); text != "" {
			*out = append(*out, text)
		}
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		if text := inlineMarkdown(n); text != "" {
			*out = append(*out, strings.Repeat("#", level)+" "+text)
		}
		return
	case "p":
		if text := inlineMarkdown(n); text != "" {
			*out = append(*out, text)
		}
		return
	case "ul", "ol":
		if block := listMarkdown(n, n.Data == "ol"); block != "" {
			*out = append(*out, block)
		}
		return
	case "table":
		if block := tableMarkdown(n); block != "" {
			*out = append(*out, block)
		}
		return
	case "blockquote":
		if text := inlineMarkdown(n); text != "" {
			var quoted []string
			for _, line := range strings.Split(text, "\n") {
				quoted = append(quoted, "> "+line)
			}
			*out = append(*out, strings.Join(quoted, "\n"))
		}
		return
	case "pre":
		if text := plainText(n); strings.TrimSpace(text) != "" {
			*out = append(*out, "```\n"+strings.TrimRight(text, "\n")+"\n```")
		}
		return
	case "hr":
		*out = append(*out, "---")
		return
	case "script", "style":
		return
	}

	// div, body, semantic containers, and anything unrecognized: treat
	// children as blocks.
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		markdownBlocks(c, out)
	}
}

// listMarkdown renders a ul/ol element, one item per line.
func listMarkdown(n *html.Node, ordered bool) string {
	var items []string
	num := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		text := inlineMarkdown(c)
		if text == "" {
			continue
		}
		num++
		if ordered {
			items = append(items, intPrefix(num)+text)
		} else {
			items = append(items, "- "+text)
		}
	}
	return strings.Join(items, "\n")
}

func intPrefix(n int) string {
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits + ". "
}

// tableMarkdown renders each table row as one pipe-joined line, with a
// separator rule after a header row.
func tableMarkdown(n *html.Node) string {
	var lines []string
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			cells, header := rowCells(node)
			if len(cells) == 0 {
				return
			}
			lines = append(lines, strings.Join(cells, "|"))
			if header {
				var seps []string
				for range cells {
					seps = append(seps, "---")
				}
				lines = append(lines, strings.Join(seps, "|"))
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(lines, "\n")
}

// rowCells renders the td/th children of a tr. header is true when the
// row consists of th cells.
func rowCells(tr *html.Node) (cells []string, header bool) {
	header = true
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		if c.Data != "th" {
			header = false
		}
		cells = append(cells, inlineMarkdown(c))
	}
	if len(cells) == 0 {
		header = false
	}
	return cells, header
}

// inlineMarkdown renders the inline content of n: links, images, and
// emphasis survive as Markdown constructs; whitespace runs collapse to
// a single space.
func inlineMarkdown(n *html.Node) string {
	var b strings.Builder
	inlineWalk(n, &b)
	return collapseInline(b.String())
}

func inlineWalk(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(c.Data)
		case c.Type != html.ElementNode:
		case c.Data == "a":
			text := inlineMarkdown(c)
			if href := attr(c, "href"); href != "" {
				b.WriteString("[" + text + "](" + href + ")")
			} else {
				b.WriteString(text)
			}
		case c.Data == "img":
			b.WriteString("![" + attr(c, "alt") + "](" + attr(c, "src") + ")")
		case c.Data == "b" || c.Data == "strong":
			if text := inlineMarkdown(c); text != "" {
				b.WriteString("**" + text + "**")
			}
		case c.Data == "i" || c.Data == "em":
			if text := inlineMarkdown(c); text != "" {
				b.WriteString("*" + text + "*")
			}
		case c.Data == "br":
			b.WriteString(" ")
		case c.Data == "script" || c.Data == "style":
		default:
			inlineWalk(c, b)
		}
	}
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// collapseInline folds whitespace runs into single spaces and trims.
func collapseInline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
