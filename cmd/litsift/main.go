// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litsift CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the litsift CLI.
var rootCmd = &cobra.Command{
	Use:   "litsift",
	Short: "Sift literature review documents into structured analysis",
	Long: `litsift processes Word-exported literature review documents. The convert
stage decodes the legacy-encoded HTML export, strips Office artifacts, and
writes clean UTF-8 Markdown and plain text. The extract stage locates the
target section in the converted Markdown, splits it into paper records,
and writes a formatted analysis report.

Each stage is a subcommand: convert, extract, and search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litsift.yaml or ~/.config/litsift/litsift.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litsift")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litsift"))
		}
	}

	viper.SetEnvPrefix("LITSIFT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
