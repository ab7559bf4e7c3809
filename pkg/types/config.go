// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the HTML-to-Markdown conversion stage.
type ConvertConfig struct {
	// InputPath is the Word-exported HTML file to convert.
	InputPath string `json:"input_path" yaml:"input_path"`

	// DocsDir is the directory that receives the Markdown and plain-text
	// outputs (created if missing).
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	// Encodings is the ordered candidate list tried when decoding the
	// input. Empty means the default list (cp936, gb2312, gbk, utf-8,
	// iso-8859-1).
	Encodings []string `json:"encodings" yaml:"encodings"`

	// Frontmatter controls whether the Markdown output is prefixed with
	// a YAML frontmatter block recording source and encoding.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`
}

// ExtractConfig holds settings for the section extraction stage.
type ExtractConfig struct {
	// InputPath is the converted Markdown file to analyze.
	InputPath string `json:"input_path" yaml:"input_path"`

	// SectionTitle is the heading text of the section to extract.
	SectionTitle string `json:"section_title" yaml:"section_title"`

	// AnalysisDir is the directory that receives the analysis report
	// (created if missing).
	AnalysisDir string `json:"analysis_dir" yaml:"analysis_dir"`

	// RecordsPath, when non-empty, is where the raw extracted records are
	// dumped as YAML alongside the report.
	RecordsPath string `json:"records_path,omitempty" yaml:"records_path,omitempty"`

	// Index controls whether extracted records are also written to the
	// SQLite record index under AnalysisDir.
	Index bool `json:"index" yaml:"index"`
}

// IndexConfig holds settings for the optional SQLite record index.
type IndexConfig struct {
	// AnalysisDir is the base directory containing index/records.db.
	AnalysisDir string `json:"analysis_dir" yaml:"analysis_dir"`

	// MaxResults is the default maximum number of search results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
