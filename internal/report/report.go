// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report formats extracted paper records into the analysis
// report and the raw record dump.
package report

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litsift/pkg/types"
)

const (
	noEntrySentinel   = "未在源文中找到明确的研究切入口描述"
	noMethodsSentinel = "未在源文中找到明确的数据挖掘方法描述"
)

// Render produces the analysis report as Markdown. Every quoted value
// comes from the records untouched; a record with no extracted text for
// a field gets the sentinel line instead. An empty record list still
// renders a complete report with zero totals.
func Render(sectionTitle string, records []types.PaperRecord, sourcePath string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - 论文分析报告\n\n", sectionTitle)
	fmt.Fprintf(&b, "本报告分析了 %d 篇相关论文，提取了每篇论文的研究切入口和数据挖掘分析方法。\n\n", len(records))
	b.WriteString("## 分析方法说明\n\n")
	fmt.Fprintf(&b, "- 数据来源：%s\n", sourcePath)
	b.WriteString("- 提取标准：基于论文内容中明确提及的研究方法和切入点\n")
	b.WriteString("- 引用格式：保持原文引用，标注来源位置\n\n")
	b.WriteString("---\n\n")

	for _, rec := range records {
		fmt.Fprintf(&b, "## 论文 %d\n\n", rec.Number)

		if rec.URL != "" {
			fmt.Fprintf(&b, "### 标题：[%s](%s)\n\n", rec.Title, rec.URL)
		} else {
			fmt.Fprintf(&b, "### 标题：%s\n\n", rec.Title)
		}

		b.WriteString("#### 研究切入口：\n")
		entry := rec.ResearchEntryPoint
		if entry == "" {
			entry = rec.CoreProblem
		}
		if entry != "" {
			fmt.Fprintf(&b, "> %s\n\n", entry)
			fmt.Fprintf(&b, "*来源：%s*\n\n", sourcePath)
		} else {
			fmt.Fprintf(&b, "> %s\n\n", noEntrySentinel)
		}

		b.WriteString("#### 数据挖掘及分析方法：\n")
		if rec.Methods != "" {
			fmt.Fprintf(&b, "> %s\n\n", rec.Methods)
			fmt.Fprintf(&b, "*来源：%s*\n\n", sourcePath)
		} else {
			fmt.Fprintf(&b, "> %s\n\n", noMethodsSentinel)
		}

		if rec.Conclusion != "" {
			b.WriteString("#### 主要结论：\n")
			fmt.Fprintf(&b, "> %s\n\n", rec.Conclusion)
		}

		b.WriteString("---\n\n")
	}

	b.WriteString("## 总结\n\n")
	fmt.Fprintf(&b, "本次分析共处理了 %d 篇论文。", len(records))

	if len(records) > 0 {
		entries, methods := 0, 0
		for _, rec := range records {
			if rec.HasEntryPoint() {
				entries++
			}
			if rec.HasMethods() {
				methods++
			}
		}
		b.WriteString("其中：\n")
		fmt.Fprintf(&b, "- %d 篇论文提取到了研究切入口信息\n", entries)
		fmt.Fprintf(&b, "- %d 篇论文提取到了数据挖掘方法信息\n\n", methods)
	}

	b.WriteString("所有引用内容均来源于转换后的Markdown文件，确保零编造性。\n")

	return b.String()
}

// WriteRecords dumps the raw records as YAML, for downstream tooling
// that wants the fields without the report prose.
func WriteRecords(path string, records []types.PaperRecord) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
