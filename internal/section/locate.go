// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package section finds a titled section inside converted Markdown.
// Word exports mangle headings in several ways, so location is a chain
// of increasingly loose patterns tried in order, with a keyword scan as
// the last resort.
package section

import (
	"fmt"
	"regexp"
	"strings"
)

// Section is a located line range within the source Markdown.
type Section struct {
	// StartLine is the 0-based index of the matched line.
	StartLine int

	// EndLine is the exclusive 0-based index of the first line after the
	// section.
	EndLine int

	// Level is the heading depth of the start line (0 when the match was
	// not a heading line; such a section runs to end of document).
	Level int

	// Pattern names the matcher that found the section.
	Pattern string

	// Text is lines[StartLine:EndLine] joined back with newlines.
	Text string
}

// matcher pairs a name with a compiled-per-title line pattern. Matchers
// are evaluated in order; the first one that hits any line wins.
type matcher struct {
	name    string
	pattern func(title string) *regexp.Regexp
}

// decompositionPattern matches the target title even when the export
// broke it up with stray formatting between the keywords.
var decompositionPattern = regexp.MustCompile(`^#+\s*.*复杂.*自然.*过程.*机理.*揭示.*$`)

// headingLine accepts headings without a space after the hashes; Word
// exports sometimes drop it, and the location matchers tolerate the
// no-space form too, so depth counting must agree with them.
var headingLine = regexp.MustCompile(`^(#+)`)

// matchers is the location chain, strictest first.
var matchers = []matcher{
	{"exact heading", func(title string) *regexp.Regexp {
		return regexp.MustCompile(`^#+\s*` + regexp.QuoteMeta(title) + `\s*$`)
	}},
	{"heading contains title", func(title string) *regexp.Regexp {
		return regexp.MustCompile(`^#+\s*.*` + regexp.QuoteMeta(title) + `.*$`)
	}},
	{"keyword decomposition", func(string) *regexp.Regexp {
		return decompositionPattern
	}},
	{"any line contains title", func(title string) *regexp.Regexp {
		return regexp.MustCompile(`.*` + regexp.QuoteMeta(title) + `.*`)
	}},
}

// sectionKeywords mark blocks that belong to the target section when no
// title match succeeds at all.
var sectionKeywords = []string{"复杂", "自然过程", "机理", "揭示", "地幔", "地震", "流体", "火山"}

// Locate finds the section titled title. The section ends at the next
// heading whose level is less than or equal to the start heading's, or
// at end of document.
func Locate(content, title string) (Section, bool) {
	lines := strings.Split(content, "\n")

	start := -1
	pattern := ""
	for _, m := range matchers {
		re := m.pattern(title)
		for i, line := range lines {
			if re.MatchString(strings.TrimSpace(line)) {
				start = i
				pattern = m.name
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return Section{}, false
	}

	level := headingDepth(lines[start])
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if d := headingDepth(strings.TrimSpace(lines[i])); d > 0 && d <= level {
			end = i
			break
		}
	}

	return Section{
		StartLine: start,
		EndLine:   end,
		Level:     level,
		Pattern:   pattern,
		Text:      strings.Join(lines[start:end], "\n"),
	}, true
}

// headingDepth returns the number of leading '#' of a heading line, or 0
// for non-heading lines.
func headingDepth(line string) int {
	m := headingLine.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	return len(m[1])
}

// FallbackByKeywords scans the document in heading-delimited blocks and
// returns the first block whose body mentions any section keyword. A
// false return means the caller should treat the whole document as the
// section.
func FallbackByKeywords(content string) (string, bool) {
	lines := strings.Split(content, "\n")

	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
		}
		current = nil
	}

	for _, line := range lines {
		if headingDepth(strings.TrimSpace(line)) > 0 {
			flush()
		}
		current = append(current, line)
	}
	flush()

	for _, block := range blocks {
		for _, kw := range sectionKeywords {
			if strings.Contains(block, kw) {
				return block, true
			}
		}
	}
	return "", false
}

// Describe returns a one-line human summary for progress output.
func (s Section) Describe() string {
	return fmt.Sprintf("lines %d-%d (level %d, via %s)", s.StartLine+1, s.EndLine, s.Level, s.Pattern)
}
