// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"regexp"
	"strings"

	"github.com/pdiddy/litsift/pkg/types"
)

// columnSplit splits a row into table columns. Pipes inside bold or
// link spans are not escaped in the source, so rows containing them can
// mis-split; that is an accepted limitation of the format, and such
// rows fall through to the labeled-field rules below.
var columnSplit = regexp.MustCompile(`\s*\|\s*`)

// problemRules locate the core-problem field when the column split
// fails, tried in order with the first match winning.
var problemRules = []*regexp.Regexp{
	// After a （N） date marker and its cell, before the next pipe.
	regexp.MustCompile(`（\d+）[^|]*\|\s*([^|]+?)\s*\|`),
	// A bolded span mentioning a problem keyword.
	regexp.MustCompile(`\*\*([^*]*(?:问题|原因|机制)[^*]*)\*\*`),
}

// methodRules locate the methods field the same way. The first rule
// collects every bolded method span on the row; the second falls back
// to a bare technique name.
var methodRules = []*regexp.Regexp{
	regexp.MustCompile(`(\*\*[^*]*(?:方法|分析|模型|算法)[^*]*\*\*[^|]*)`),
	regexp.MustCompile(`((?:机器学习|深度学习|数据挖掘|统计分析)[^|]*)`),
}

// ExtractFields fills rec's table-column fields from RawRow. When the
// pipe split yields at least 6 columns, columns 1-5 map positionally to
// core problem, data source, methods, conclusion, and summary.
// Otherwise each field is tried against its rule chain independently; a
// miss leaves the field empty, never an error.
func ExtractFields(rec *types.PaperRecord) {
	parts := columnSplit.Split(rec.RawRow, -1)

	if len(parts) >= 6 {
		rec.CoreProblem = cleanField(parts[1])
		rec.DataSource = cleanField(parts[2])
		rec.Methods = cleanField(parts[3])
		rec.Conclusion = cleanField(parts[4])
		rec.Summary = cleanField(parts[5])
		return
	}

	for _, re := range problemRules {
		if m := re.FindStringSubmatch(rec.RawRow); m != nil {
			rec.CoreProblem = cleanField(m[1])
			break
		}
	}

	for _, re := range methodRules {
		matches := re.FindAllStringSubmatch(rec.RawRow, -1)
		if len(matches) == 0 {
			continue
		}
		var spans []string
		for _, m := range matches {
			spans = append(spans, m[1])
		}
		rec.Methods = cleanField(strings.Join(spans, " "))
		break
	}
}

// cleanField collapses whitespace runs to single spaces and strips bold
// markers.
func cleanField(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "**", "")
}
