// Package driver orchestrates the full pipeline: load assertion files, parse
// each expression, evaluate it under a bound environment, and collect the
// outcomes. It also owns the result disk cache and the parallel runner.
package driver

import (
	"assay/internal/ast"
	"assay/internal/diag"
	"assay/internal/lexer"
	"assay/internal/parser"
	"assay/internal/source"
	"assay/internal/token"
)

// maxDiagnostics bounds the bag per parsed expression; one line of input
// cannot usefully produce more.
const maxDiagnostics = 64

// TokenizeResult is the output of tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file into a flat token slice, EOF included.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// ParseResult is one parsed expression with its backing virtual file.
type ParseResult struct {
	File  *source.File
	Exprs *ast.Exprs
	Root  ast.ExprID
	Bag   *diag.Bag
}

// ParseSource parses one expression from in-memory text. The text is added to
// fs as a virtual file named name, so spans resolve against exactly the text
// the diagram will print.
func ParseSource(fs *source.FileSet, name string, text string) *ParseResult {
	fileID := fs.AddVirtual(name, []byte(text))
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	exprs := ast.NewExprs(0)
	p := parser.New(file, exprs, &diag.BagReporter{Bag: bag})
	root, ok := p.ParseExpression()
	if !ok {
		root = ast.NoExprID
	}

	return &ParseResult{
		File:  file,
		Exprs: exprs,
		Root:  root,
		Bag:   bag,
	}
}
