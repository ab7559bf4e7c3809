// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package section

import (
	"strings"
	"testing"
)

const doc = `# 文献分析

前言内容。

## 复杂自然过程机理揭示

[论文A](http://a) | 问题 | 来源
[论文B](http://b) | 问题 | 来源

### 子节

子节内容。

## 其他方向

别的内容。`

func TestLocateExactHeading(t *testing.T) {
	sec, ok := Locate(doc, "复杂自然过程机理揭示")
	if !ok {
		t.Fatal("section not found")
	}

	lines := strings.Split(doc, "\n")
	if got := lines[sec.StartLine]; got != "## 复杂自然过程机理揭示" {
		t.Errorf("start line = %q", got)
	}
	if sec.Level != 2 {
		t.Errorf("level = %d, want 2", sec.Level)
	}
	// The deeper ### heading stays inside; the next ## ends the section.
	if !strings.Contains(sec.Text, "### 子节") {
		t.Errorf("nested subsection excluded:\n%s", sec.Text)
	}
	if strings.Contains(sec.Text, "其他方向") {
		t.Errorf("section ran past the next same-level heading:\n%s", sec.Text)
	}
	if got := lines[sec.EndLine]; got != "## 其他方向" {
		t.Errorf("end boundary = %q", got)
	}
	if sec.Pattern != "exact heading" {
		t.Errorf("pattern = %q", sec.Pattern)
	}
}

func TestLocateHeadingContainsTitle(t *testing.T) {
	content := "## 一、复杂自然过程机理揭示（附表）\n\nrow\n\n## 下一节\n"
	sec, ok := Locate(content, "复杂自然过程机理揭示")
	if !ok {
		t.Fatal("section not found")
	}
	if sec.StartLine != 0 {
		t.Errorf("start = %d, want 0", sec.StartLine)
	}
	if sec.Pattern != "heading contains title" {
		t.Errorf("pattern = %q", sec.Pattern)
	}
}

func TestLocateKeywordDecomposition(t *testing.T) {
	content := "## 复杂的自然过程及其机理的揭示\n\nrow\n"
	sec, ok := Locate(content, "复杂自然过程机理揭示")
	if !ok {
		t.Fatal("section not found")
	}
	if sec.Pattern != "keyword decomposition" {
		t.Errorf("pattern = %q", sec.Pattern)
	}
}

func TestLocateHeadingWithoutSpace(t *testing.T) {
	content := "# 文档\n\n##复杂自然过程机理揭示\n\n[论文A](http://a) | 问题 | 来源\n\n## 下一节\n\n别的内容。"
	sec, ok := Locate(content, "复杂自然过程机理揭示")
	if !ok {
		t.Fatal("section not found")
	}
	// Depth counting must agree with the matchers on the no-space form,
	// or the section would silently run to end of document.
	if sec.Level != 2 {
		t.Errorf("level = %d, want 2", sec.Level)
	}
	if got := strings.Split(content, "\n")[sec.EndLine]; got != "## 下一节" {
		t.Errorf("end boundary = %q", got)
	}
	if strings.Contains(sec.Text, "别的内容") {
		t.Errorf("section ran past the next same-level heading:\n%s", sec.Text)
	}
}

func TestLocateNonHeadingMatchRunsToEOF(t *testing.T) {
	content := "intro\n表头：复杂自然过程机理揭示\nrow1\n\n## 后面的标题\nrow2"
	sec, ok := Locate(content, "复杂自然过程机理揭示")
	if !ok {
		t.Fatal("section not found")
	}
	if sec.Level != 0 {
		t.Errorf("level = %d, want 0", sec.Level)
	}
	if sec.EndLine != len(strings.Split(content, "\n")) {
		t.Errorf("non-heading match should run to end of document, end = %d", sec.EndLine)
	}
}

func TestLocateNotFound(t *testing.T) {
	if _, ok := Locate("# 别的\n\n内容\n", "复杂自然过程机理揭示"); ok {
		t.Error("unexpected match")
	}
}

func TestFallbackByKeywords(t *testing.T) {
	content := "# 概述\n\n没有相关词。\n\n## 某节\n\n讨论了地幔对流与地震活动。\n\n## 又一节\n\n别的。"
	block, ok := FallbackByKeywords(content)
	if !ok {
		t.Fatal("fallback found nothing")
	}
	if !strings.Contains(block, "地幔") {
		t.Errorf("wrong block: %q", block)
	}
	if strings.Contains(block, "又一节") {
		t.Errorf("block not delimited at next heading: %q", block)
	}
}

func TestFallbackByKeywordsNone(t *testing.T) {
	if _, ok := FallbackByKeywords("# 无关\n\n内容。"); ok {
		t.Error("fallback matched keyword-free document")
	}
}
