package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litsift/internal/store"
	"github.com/pdiddy/litsift/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search previously indexed paper records",
	Long: `Search runs a full-text query against the SQLite record index built by
"extract --index". Titles and raw source rows are searched; results are
ranked by relevance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("analysis-dir", "analysis", "analysis directory containing index/records.db")
	searchCmd.Flags().Int("limit", 20, "maximum number of results")

	viper.BindPFlag("search.analysis_dir", searchCmd.Flags().Lookup("analysis-dir"))
	viper.BindPFlag("search.max_results", searchCmd.Flags().Lookup("limit"))

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	s, err := store.NewStore(types.IndexConfig{
		AnalysisDir: viper.GetString("search.analysis_dir"),
		MaxResults:  viper.GetInt("search.max_results"),
	})
	if err != nil {
		return err
	}
	defer s.Close()

	hits, err := s.Search(cmd.Context(), query, 0)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(hits) == 0 {
		fmt.Fprintf(w, "no records match %q\n", query)
		return nil
	}

	for _, h := range hits {
		fmt.Fprintf(w, "[%s #%d] %s\n", h.Section, h.Record.Number, h.Record.Title)
		if h.Record.URL != "" {
			fmt.Fprintf(w, "  %s\n", h.Record.URL)
		}
		if h.Record.ResearchEntryPoint != "" {
			fmt.Fprintf(w, "  切入口: %s\n", h.Record.ResearchEntryPoint)
		}
		if h.Record.Methods != "" {
			fmt.Fprintf(w, "  方法: %s\n", h.Record.Methods)
		}
	}
	fmt.Fprintf(w, "%d result(s)\n", len(hits))
	return nil
}
