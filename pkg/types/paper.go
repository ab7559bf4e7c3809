// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord holds the fields extracted for one paper row in the source
// table. Every field except Number is a plain string; a missed match
// during extraction leaves a field empty rather than raising an error.
type PaperRecord struct {
	// Number is the 1-based ordinal of the record within its section,
	// assigned in order of appearance.
	Number int `json:"number" yaml:"number"`

	// Title is the link text of the row's leading Markdown link.
	Title string `json:"title" yaml:"title"`

	// URL is the link target of the row's leading Markdown link.
	URL string `json:"url" yaml:"url"`

	// RawRow is the full trimmed source line the record was built from.
	// It is always a verbatim substring of the converted Markdown.
	RawRow string `json:"raw_row" yaml:"raw_row"`

	// CoreProblem is the 核心问题 table column or labeled field.
	CoreProblem string `json:"core_problem,omitempty" yaml:"core_problem,omitempty"`

	// DataSource is the 数据来源 table column.
	DataSource string `json:"data_source,omitempty" yaml:"data_source,omitempty"`

	// Methods is the 数据挖掘及分析方法 table column or labeled field.
	Methods string `json:"methods,omitempty" yaml:"methods,omitempty"`

	// Conclusion is the 主要结论 table column.
	Conclusion string `json:"conclusion,omitempty" yaml:"conclusion,omitempty"`

	// Summary is the 总结 table column.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// ResearchEntryPoint is the 研究切入口 derived by the second
	// extraction pass; it prefers CoreProblem when that is populated.
	ResearchEntryPoint string `json:"research_entry_point,omitempty" yaml:"research_entry_point,omitempty"`
}

// HasEntryPoint reports whether the record carries entry-point text from
// either extraction pass.
func (p PaperRecord) HasEntryPoint() bool {
	return p.ResearchEntryPoint != "" || p.CoreProblem != ""
}

// HasMethods reports whether the record carries methods text.
func (p PaperRecord) HasMethods() bool {
	return p.Methods != ""
}
