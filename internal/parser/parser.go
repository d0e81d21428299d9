// Package parser builds expression trees for the boolean assertion grammar:
// literals, identifiers, '!', binary combinators, calls, selections, sequence
// literals, parenthesized groups, and opaque '{...}' blocks.
package parser

import (
	"assay/internal/ast"
	"assay/internal/diag"
	"assay/internal/lexer"
	"assay/internal/source"
	"assay/internal/token"
)

type Parser struct {
	lx       *lexer.Lexer
	exprs    *ast.Exprs
	reporter diag.Reporter
	file     *source.File
}

// New creates a parser over file writing nodes into exprs. reporter may be
// nil; syntax errors are then dropped (the ok flags still signal failure).
func New(file *source.File, exprs *ast.Exprs, reporter diag.Reporter) *Parser {
	return &Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: reporter}),
		exprs:    exprs,
		reporter: reporter,
		file:     file,
	}
}

// ParseExpression parses one whole expression and requires EOF after it.
func (p *Parser) ParseExpression() (ast.ExprID, bool) {
	root, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if tok := p.lx.Peek(); tok.Kind != token.EOF {
		p.err(diag.SynTrailingInput, tok.Span, "unexpected input after expression")
		return ast.NoExprID, false
	}
	return root, true
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	diag.Error(p.reporter, code, sp, msg)
}
