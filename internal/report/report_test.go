// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litsift/pkg/types"
)

func TestRender(t *testing.T) {
	records := []types.PaperRecord{
		{
			Number:             1,
			Title:              "地幔对流研究",
			URL:                "http://a.example",
			ResearchEntryPoint: "对流驱动机制",
			Methods:            "深度学习反演",
			Conclusion:         "存在分层对流",
		},
		{
			Number: 2,
			Title:  "无字段论文",
			URL:    "http://b.example",
		},
	}

	got := Render("复杂自然过程机理揭示", records, "docs/文献分析.md")

	for _, want := range []string{
		"# 复杂自然过程机理揭示 - 论文分析报告",
		"本报告分析了 2 篇相关论文",
		"## 论文 1",
		"### 标题：[地幔对流研究](http://a.example)",
		"> 对流驱动机制",
		"> 深度学习反演",
		"#### 主要结论：\n> 存在分层对流",
		"## 论文 2",
		"> 未在源文中找到明确的研究切入口描述",
		"> 未在源文中找到明确的数据挖掘方法描述",
		"- 1 篇论文提取到了研究切入口信息",
		"- 1 篇论文提取到了数据挖掘方法信息",
		"确保零编造性",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}

	// The second record has no conclusion, so exactly one 主要结论 block.
	if got := strings.Count(got, "#### 主要结论："); got != 1 {
		t.Errorf("主要结论 blocks = %d, want 1", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := Render("复杂自然过程机理揭示", nil, "docs/文献分析.md")

	if !strings.Contains(got, "本报告分析了 0 篇相关论文") {
		t.Errorf("zero-record intro missing:\n%s", got)
	}
	if !strings.Contains(got, "本次分析共处理了 0 篇论文。") {
		t.Errorf("zero-record summary missing:\n%s", got)
	}
	if strings.Contains(got, "## 论文") {
		t.Errorf("unexpected per-paper block in empty report:\n%s", got)
	}
	if !strings.Contains(got, "## 总结") {
		t.Errorf("summary section missing:\n%s", got)
	}
}

func TestRenderEntryPointFallsBackToCoreProblem(t *testing.T) {
	records := []types.PaperRecord{{Number: 1, Title: "T", URL: "u", CoreProblem: "核心问题文本"}}
	got := Render("节", records, "src.md")

	if !strings.Contains(got, "> 核心问题文本") {
		t.Errorf("core problem not used as entry point:\n%s", got)
	}
}

func TestWriteRecords(t *testing.T) {
	records := []types.PaperRecord{
		{Number: 1, Title: "T", URL: "http://x", RawRow: "[T](http://x)|a|b|c|d|e", CoreProblem: "a"},
	}
	path := filepath.Join(t.TempDir(), "records.yaml")

	if err := WriteRecords(path, records); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var restored []types.PaperRecord
	if err := yaml.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshaling dump: %v", err)
	}
	if len(restored) != 1 || restored[0] != records[0] {
		t.Errorf("round trip mismatch: %+v", restored)
	}
}
