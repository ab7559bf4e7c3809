//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Convert builds the binary and converts every .htm/.html file in the
// current directory into docs/.
func Convert() error {
	mg.Deps(Build)

	matches, err := sourceDocuments(".")
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("[convert] No .htm or .html files found.")
		return nil
	}
	for _, input := range matches {
		if err := runBinary("convert", input); err != nil {
			return err
		}
	}
	return nil
}

// Extract builds the binary and extracts records from every converted
// Markdown file under docs/.
func Extract() error {
	mg.Deps(Build)

	matches, err := filepath.Glob(filepath.Join("docs", "*.md"))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("[extract] No converted Markdown files under docs/.")
		return nil
	}
	for _, input := range matches {
		if err := runBinary("extract", input); err != nil {
			return err
		}
	}
	return nil
}

func sourceDocuments(dir string) ([]string, error) {
	var matches []string
	for _, pattern := range []string{"*.htm", "*.html"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		matches = append(matches, m...)
	}
	return matches, nil
}

func runBinary(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("litsift %v: %w", args, err)
	}
	return nil
}
