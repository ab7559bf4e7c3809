// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers turns a located Markdown section into PaperRecords.
// The section is one large converted table in which every paper row
// begins with a Markdown link; splitting is line-oriented and field
// extraction is a chain of best-effort regex rules.
package papers

import (
	"regexp"
	"strings"

	"github.com/pdiddy/litsift/pkg/types"
)

// linkPattern matches a row's leading [title](url) construct.
var linkPattern = regexp.MustCompile(`^\[([^\]]+)\]\(([^)]+)\)`)

// headerLabelPattern matches the bolded column-header row of the table.
var headerLabelPattern = regexp.MustCompile(`^\*\*文章\*\*`)

// SplitRows emits one PaperRecord per qualifying line of sectionText, in
// order of appearance. A line qualifies when, after trimming, it is
// non-empty, is not a table separator or header-label row, and starts
// with a Markdown link. RawRow is always the verbatim trimmed line.
func SplitRows(sectionText string) []types.PaperRecord {
	var records []types.PaperRecord

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isSeparator(line) || headerLabelPattern.MatchString(line) {
			continue
		}

		m := linkPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		records = append(records, types.PaperRecord{
			Number: len(records) + 1,
			Title:  m[1],
			URL:    m[2],
			RawRow: line,
		})
	}

	return records
}

// isSeparator reports whether the line is a table separator rule like
// ---|---|--- (possibly pipe-led).
func isSeparator(line string) bool {
	return strings.HasPrefix(line, "---|") || strings.HasPrefix(line, "|---")
}
