// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract drives the section extraction pipeline: locate the
// target section in converted Markdown, split it into paper records,
// fill record fields, and write the analysis report.
package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/litsift/internal/papers"
	"github.com/pdiddy/litsift/internal/report"
	"github.com/pdiddy/litsift/internal/section"
	"github.com/pdiddy/litsift/internal/store"
	"github.com/pdiddy/litsift/pkg/types"
)

// reportFile is the report name under the analysis directory.
const reportFile = "论文分析报告.md"

// Result summarizes one extraction run.
type Result struct {
	// Scope describes how the section text was obtained: a located
	// section range, the keyword fallback, or the whole document.
	Scope string

	Records     []types.PaperRecord
	ReportPath  string
	RecordsPath string
	Indexed     bool
}

// Run extracts paper records from cfg.InputPath and writes the analysis
// report under cfg.AnalysisDir. Per-step progress goes to w. Extraction
// misses are never errors; only I/O failures are.
func Run(ctx context.Context, cfg types.ExtractConfig, w io.Writer) (Result, error) {
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", cfg.InputPath, err)
	}
	content := string(data)

	text, scope := sectionText(content, cfg.SectionTitle, w)

	records := papers.SplitRows(text)
	for i := range records {
		papers.ExtractFields(&records[i])
		papers.ExtractResearchDetails(&records[i])
	}
	fmt.Fprintf(w, "extracted %d paper records\n", len(records))

	if err := os.MkdirAll(cfg.AnalysisDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating analysis directory: %w", err)
	}

	reportPath := filepath.Join(cfg.AnalysisDir, reportFile)
	rendered := report.Render(cfg.SectionTitle, records, cfg.InputPath)
	if err := os.WriteFile(reportPath, []byte(rendered), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(w, "wrote %s\n", reportPath)

	res := Result{
		Scope:      scope,
		Records:    records,
		ReportPath: reportPath,
	}

	if cfg.RecordsPath != "" {
		if err := report.WriteRecords(cfg.RecordsPath, records); err != nil {
			return Result{}, fmt.Errorf("writing records: %w", err)
		}
		fmt.Fprintf(w, "wrote %s\n", cfg.RecordsPath)
		res.RecordsPath = cfg.RecordsPath
	}

	if cfg.Index {
		if err := indexRecords(ctx, cfg, records); err != nil {
			return Result{}, fmt.Errorf("indexing records: %w", err)
		}
		fmt.Fprintf(w, "indexed %d records under %s\n", len(records), cfg.AnalysisDir)
		res.Indexed = true
	}

	return res, nil
}

// sectionText resolves the text to extract from, loosening in three
// steps: title location chain, keyword fallback, whole document.
func sectionText(content, title string, w io.Writer) (string, string) {
	if sec, ok := section.Locate(content, title); ok {
		fmt.Fprintf(w, "located section %s\n", sec.Describe())
		return sec.Text, "section " + sec.Describe()
	}

	if block, ok := section.FallbackByKeywords(content); ok {
		fmt.Fprintln(w, "section title not found, using keyword fallback block")
		return block, "keyword fallback block"
	}

	fmt.Fprintln(w, "section not found, scanning whole document")
	return content, "whole document"
}

func indexRecords(ctx context.Context, cfg types.ExtractConfig, records []types.PaperRecord) error {
	s, err := store.NewStore(types.IndexConfig{AnalysisDir: cfg.AnalysisDir})
	if err != nil {
		return err
	}
	defer s.Close()
	return s.ReplaceSection(ctx, cfg.SectionTitle, records)
}
