// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmlclean strips Microsoft Office artifacts from parsed HTML
// trees. Word exports carry vendor CSS, namespaced elements, and empty
// placeholder paragraphs that would otherwise leak into the converted
// Markdown.
package htmlclean

import (
	"strings"

	"golang.org/x/net/html"
)

// attrMarkers flag attribute values that carry Office-specific markup.
var attrMarkers = []string{"mso-", "microsoft", "word", "office"}

// classMarkers flag individual class names. The class list is filtered
// element-wise, so the bare "mso" prefix is enough here.
var classMarkers = []string{"mso", "microsoft", "word", "office"}

// styleMarkers flag <style> blocks that only exist to carry Office CSS.
var styleMarkers = []string{"mso-", "microsoft", "word"}

// nsPrefixes are the Office XML namespaces (<o:p>, <v:shape>, <w:...>).
var nsPrefixes = []string{"o:", "v:", "w:"}

// Clean locates the body of doc (the whole tree when there is none) and
// applies the cleanup passes in place, returning the cleaned root.
// Clean is idempotent: re-applying it to cleaned input is a no-op.
func Clean(doc *html.Node) *html.Node {
	root := FindElement(doc, "body")
	if root == nil {
		root = doc
	}

	removeComments(root)
	stripMsoAttributes(root)
	removeNamespacedElements(root)
	removeMsoStyleBlocks(root)
	removeScriptsAndStyles(root)
	removeEmptyBlocks(root)

	return root
}

// FindElement returns the first element named tag in depth-first order,
// or nil.
func FindElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// walk visits every node under n, including n itself.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// removeMatching detaches every node under root for which match returns
// true. Candidates are collected first so removal does not disturb the
// traversal.
func removeMatching(root *html.Node, match func(*html.Node) bool) {
	var doomed []*html.Node
	walk(root, func(n *html.Node) {
		if n != root && match(n) {
			doomed = append(doomed, n)
		}
	})
	for _, n := range doomed {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

func removeComments(root *html.Node) {
	removeMatching(root, func(n *html.Node) bool {
		return n.Type == html.CommentNode
	})
}

// stripMsoAttributes drops attributes whose value contains an Office
// marker. Class attributes are filtered class-by-class so non-Office
// classes survive.
func stripMsoAttributes(root *html.Node) {
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || len(n.Attr) == 0 {
			return
		}
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if a.Key == "class" {
				if filtered := filterClasses(a.Val); filtered != "" {
					a.Val = filtered
					kept = append(kept, a)
				}
				continue
			}
			if containsAny(strings.ToLower(a.Val), attrMarkers) {
				continue
			}
			kept = append(kept, a)
		}
		n.Attr = kept
	})
}

// filterClasses removes Office class names from a space-separated class
// list, returning the remainder (possibly empty).
func filterClasses(val string) string {
	var kept []string
	for _, cls := range strings.Fields(val) {
		if containsAny(strings.ToLower(cls), classMarkers) {
			continue
		}
		kept = append(kept, cls)
	}
	return strings.Join(kept, " ")
}

func removeNamespacedElements(root *html.Node) {
	removeMatching(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, prefix := range nsPrefixes {
			if strings.HasPrefix(n.Data, prefix) {
				return true
			}
		}
		return false
	})
}

func removeMsoStyleBlocks(root *html.Node) {
	removeMatching(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "style" {
			return false
		}
		return containsAny(strings.ToLower(textContent(n)), styleMarkers)
	})
}

func removeScriptsAndStyles(root *html.Node) {
	removeMatching(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style")
	})
}

// removeEmptyBlocks drops <p> and <div> elements with no visible text.
func removeEmptyBlocks(root *html.Node) {
	removeMatching(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || (n.Data != "p" && n.Data != "div") {
			return false
		}
		return strings.TrimSpace(textContent(n)) == ""
	})
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
