// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the Word-HTML-to-Markdown conversion
// pipeline: decode the legacy-encoded export, strip Office artifacts,
// and write UTF-8 Markdown and plain-text renditions.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/pdiddy/litsift/internal/charset"
	"github.com/pdiddy/litsift/internal/htmlclean"
	"github.com/pdiddy/litsift/internal/render"
	"github.com/pdiddy/litsift/pkg/types"
)

// Result summarizes one conversion run.
type Result struct {
	Encoding      string
	InputChars    int
	MarkdownChars int
	MarkdownLines int
	TextChars     int
	TextLines     int
	MarkdownPath  string
	TextPath      string
}

// Run converts cfg.InputPath and writes <base>.md and <base>.txt under
// cfg.DocsDir. Per-step progress goes to w.
func Run(cfg types.ConvertConfig, w io.Writer) (Result, error) {
	content, encoding, err := charset.ReadFile(cfg.InputPath, cfg.Encodings)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "read %d characters (encoding: %s)\n", len([]rune(content)), encoding)

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return Result{}, fmt.Errorf("parsing HTML: %w", err)
	}
	body := htmlclean.Clean(doc)

	markdown := render.Markdown(body)
	text := render.Text(body)
	fmt.Fprintf(w, "rendered markdown (%d chars) and text (%d chars)\n",
		len([]rune(markdown)), len([]rune(text)))

	if cfg.Frontmatter {
		markdown = addFrontmatter(cfg.InputPath, encoding, markdown)
	}

	if err := os.MkdirAll(cfg.DocsDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(cfg.InputPath), filepath.Ext(cfg.InputPath))
	mdPath := filepath.Join(cfg.DocsDir, base+".md")
	txtPath := filepath.Join(cfg.DocsDir, base+".txt")

	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing markdown: %w", err)
	}
	fmt.Fprintf(w, "wrote %s\n", mdPath)

	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing text: %w", err)
	}
	fmt.Fprintf(w, "wrote %s\n", txtPath)

	return Result{
		Encoding:      encoding,
		InputChars:    len([]rune(content)),
		MarkdownChars: len([]rune(markdown)),
		MarkdownLines: strings.Count(markdown, "\n") + 1,
		TextChars:     len([]rune(text)),
		TextLines:     strings.Count(text, "\n") + 1,
		MarkdownPath:  mdPath,
		TextPath:      txtPath,
	}, nil
}

// addFrontmatter prepends a YAML frontmatter block recording provenance.
func addFrontmatter(source, encoding, body string) string {
	ts := time.Now().UTC().Format(time.RFC3339)
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "source: %q\n", filepath.Base(source))
	fmt.Fprintf(&b, "source_encoding: %q\n", encoding)
	fmt.Fprintf(&b, "converted_at: %q\n", ts)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String()
}
