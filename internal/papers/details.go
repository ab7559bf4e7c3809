// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"regexp"

	"github.com/pdiddy/litsift/pkg/types"
)

// The first extraction pass is positional and unreliable for irregular
// rows, so this second pass re-derives the research entry point and
// methods from the raw row with prioritized label patterns. Values the
// first pass already populated always win over re-parsing.

// entryRules find the research entry point, strongest label first.
var entryRules = []*regexp.Regexp{
	regexp.MustCompile(`研究切入口[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`核心问题[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`研究目标[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`主要问题[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`\*\*([^*]+问题[^*]*)\*\*`),
}

// methodLabelRules find labeled method descriptions.
var methodLabelRules = []*regexp.Regexp{
	regexp.MustCompile(`数据挖掘及分析方法[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`方法[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`分析方法[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`技术[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
	regexp.MustCompile(`\*\*方法[^*]*\*\*[：:]\s*([^|]+?)(?:\s*\||\s*$)`),
}

// techRules are the bare keyword fallback when no label matched.
var techRules = []*regexp.Regexp{
	regexp.MustCompile(`(机器学习[^|]*)`),
	regexp.MustCompile(`(深度学习[^|]*)`),
	regexp.MustCompile(`(数据挖掘[^|]*)`),
	regexp.MustCompile(`(统计分析[^|]*)`),
	regexp.MustCompile(`(模型[^|]*)`),
	regexp.MustCompile(`(算法[^|]*)`),
	regexp.MustCompile(`(分析[^|]*方法[^|]*)`),
}

// ExtractResearchDetails fills ResearchEntryPoint and Methods on rec.
// Each target is resolved independently: first non-empty source wins,
// in the order existing field, labeled rules, keyword fallback.
func ExtractResearchDetails(rec *types.PaperRecord) {
	entry := rec.CoreProblem
	if entry == "" {
		entry = firstMatch(entryRules, rec.RawRow)
	}
	rec.ResearchEntryPoint = entry

	if rec.Methods == "" {
		rec.Methods = firstMatch(methodLabelRules, rec.RawRow)
	}
	if rec.Methods == "" {
		rec.Methods = firstMatch(techRules, rec.RawRow)
	}
}

// firstMatch returns the cleaned first capture group of the first rule
// that matches s, or "".
func firstMatch(rules []*regexp.Regexp, s string) string {
	for _, re := range rules {
		if m := re.FindStringSubmatch(s); m != nil {
			return cleanField(m[1])
		}
	}
	return ""
}
