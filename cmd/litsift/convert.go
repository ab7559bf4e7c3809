package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litsift/internal/convert"
	"github.com/pdiddy/litsift/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.htm>",
	Short: "Convert a Word HTML export to Markdown and plain text",
	Long: `Convert decodes a Word-exported HTML file (trying legacy Chinese
encodings first), strips Microsoft Office artifacts, and writes UTF-8
Markdown and plain-text renditions into the docs directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("docs-dir", "docs", "output directory for converted files")
	convertCmd.Flags().StringSlice("encodings", nil, "candidate encodings tried in order (default: cp936,gb2312,gbk,utf-8,iso-8859-1)")
	convertCmd.Flags().Bool("frontmatter", false, "prefix the Markdown output with a YAML frontmatter block")

	viper.BindPFlag("convert.docs_dir", convertCmd.Flags().Lookup("docs-dir"))
	viper.BindPFlag("convert.encodings", convertCmd.Flags().Lookup("encodings"))
	viper.BindPFlag("convert.frontmatter", convertCmd.Flags().Lookup("frontmatter"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file not found: %s", input)
	}

	cfg := types.ConvertConfig{
		InputPath:   input,
		DocsDir:     viper.GetString("convert.docs_dir"),
		Encodings:   viper.GetStringSlice("convert.encodings"),
		Frontmatter: viper.GetBool("convert.frontmatter"),
	}

	res, err := convert.Run(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "converted %s (encoding %s): %d markdown lines, %d text lines\n",
		input, res.Encoding, res.MarkdownLines, res.TextLines)
	return nil
}
