package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"assay/internal/diag"
	"assay/internal/driver"
	"assay/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "Parse an assertion file and dump the expression trees",
	Long: `Parse parses every assertion line and prints the resulting tree as a
compact s-expression, one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	// #nosec G304 -- path comes from the command line
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	var failed bool

	for i, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "assume "))

		result := driver.ParseSource(fs, fmt.Sprintf("%s#%d", path, i+1), line)
		if !result.Root.IsValid() {
			failed = true
			result.Bag.Sort()
			fmt.Fprintln(os.Stderr, diag.Format(result.Bag, fs))
			continue
		}
		fmt.Printf("%s:%d: %s\n", path, i+1, result.Exprs.Dump(result.Root))
	}

	if failed {
		cmd.SilenceUsage = true
		return fmt.Errorf("parse errors")
	}
	return nil
}
