package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"assay/internal/diag"
	"assay/internal/driver"
	"assay/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize an assertion file",
	Long:  `Tokenize breaks an assertion file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	result, err := driver.Tokenize(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		fmt.Fprintln(os.Stderr, diag.Format(result.Bag, result.FileSet))
	}

	for _, tok := range result.Tokens {
		path, lc, ok := result.FileSet.Position(tok.Span)
		if !ok {
			continue
		}
		if tok.Kind == token.EOF {
			fmt.Printf("%s:%d:%d %s\n", path, lc.Line, lc.Col, tok.Kind)
			continue
		}
		fmt.Printf("%s:%d:%d %s %q\n", path, lc.Line, lc.Col, tok.Kind, tok.Text)
	}
	return nil
}
