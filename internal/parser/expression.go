package parser

import (
	"assay/internal/ast"
	"assay/internal/diag"
	"assay/internal/token"
)

// parseExpr is the entry point for expressions.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr implements Pratt parsing for binary operators.
// minPrec is the minimum precedence accepted at this level.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()

		prec := binaryPrec(tok.Kind)
		if prec < minPrec || prec < 0 {
			break
		}

		opTok := p.advance()

		// Left-associative: the right side must bind strictly tighter.
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, opTok.Span, "expected expression after binary operator")
			return ast.NoExprID, false
		}

		op := tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.exprs.Get(left).Span
		rightSpan := p.exprs.Get(right).Span
		finalSpan := leftSpan.Cover(rightSpan)

		left = p.exprs.NewBinary(finalSpan, op, opTok.Span, left, right)
	}

	return left, true
}

// parseUnaryExpr handles '!' prefixes.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.Bang {
		bangTok := p.advance()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			p.err(diag.SynExpectExpression, bangTok.Span, "expected expression after '!'")
			return ast.NoExprID, false
		}
		operandSpan := p.exprs.Get(operand).Span
		return p.exprs.NewNot(bangTok.Span.Cover(operandSpan), operand), true
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr handles selections and calls after a primary expression.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			newExpr, ok := p.parseSelectExpr(expr)
			if !ok {
				return ast.NoExprID, false
			}
			expr = newExpr

		case token.LParen:
			newExpr, ok := p.parseCallExpr(expr)
			if !ok {
				return ast.NoExprID, false
			}
			expr = newExpr

		default:
			return expr, true
		}
	}
}

// parseSelectExpr parses ".field" after target.
func (p *Parser) parseSelectExpr(target ast.ExprID) (ast.ExprID, bool) {
	dotTok := p.advance() // '.'
	nameTok := p.lx.Peek()
	if nameTok.Kind != token.Ident {
		p.err(diag.SynExpectIdentifier, dotTok.Span, "expected identifier after '.'")
		return ast.NoExprID, false
	}
	p.advance()

	targetSpan := p.exprs.Get(target).Span
	return p.exprs.NewSelect(targetSpan.Cover(nameTok.Span), target, nameTok.Text, nameTok.Span), true
}

// parseCallExpr parses "(args...)" after target. Only identifiers and
// selections are callable.
func (p *Parser) parseCallExpr(target ast.ExprID) (ast.ExprID, bool) {
	targetExpr := p.exprs.Get(target)
	if targetExpr.Kind != ast.ExprIdent && targetExpr.Kind != ast.ExprSelect {
		p.err(diag.SynExpectCallArgs, targetExpr.Span, "only functions and methods can be called")
		return ast.NoExprID, false
	}

	lparenTok := p.advance() // '('
	var args []ast.ExprID

	if p.lx.Peek().Kind != token.RParen {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				p.err(diag.SynExpectExpression, lparenTok.Span, "expected call argument")
				return ast.NoExprID, false
			}
			args = append(args, arg)

			if p.lx.Peek().Kind != token.Comma {
				break
			}
			p.advance() // ','
		}
	}

	closeTok := p.lx.Peek()
	if closeTok.Kind != token.RParen {
		p.err(diag.SynUnclosedParen, lparenTok.Span, "expected ')' to close call arguments")
		return ast.NoExprID, false
	}
	p.advance()

	targetSpan := p.exprs.Get(target).Span
	return p.exprs.NewCall(targetSpan.Cover(closeTok.Span), target, args), true
}

// parsePrimaryExpr parses atomic expressions.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch tok := p.lx.Peek(); tok.Kind {
	case token.Ident:
		p.advance()
		return p.exprs.NewIdent(tok.Span, tok.Text), true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.exprs.NewLiteral(tok.Span, ast.LitBool, tok.Text), true

	case token.IntLit:
		p.advance()
		return p.exprs.NewLiteral(tok.Span, ast.LitInt, tok.Text), true

	case token.FloatLit:
		p.advance()
		return p.exprs.NewLiteral(tok.Span, ast.LitFloat, tok.Text), true

	case token.StringLit:
		p.advance()
		return p.exprs.NewLiteral(tok.Span, ast.LitString, tok.Text), true

	case token.LParen:
		return p.parseGroupExpr()

	case token.LBracket:
		return p.parseSeqExpr()

	case token.LBrace:
		return p.parseBlockExpr()

	default:
		p.err(diag.SynExpectExpression, tok.Span, "expected expression")
		return ast.NoExprID, false
	}
}

// parseGroupExpr parses "(expr)". The group node is span-transparent: the
// inner expression keeps its own column in diagrams.
func (p *Parser) parseGroupExpr() (ast.ExprID, bool) {
	lparenTok := p.advance() // '('
	inner, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	closeTok := p.lx.Peek()
	if closeTok.Kind != token.RParen {
		p.err(diag.SynUnclosedParen, lparenTok.Span, "expected ')'")
		return ast.NoExprID, false
	}
	p.advance()
	return p.exprs.NewGroup(lparenTok.Span.Cover(closeTok.Span), inner), true
}

// parseSeqExpr parses "[elem, elem, ...]".
func (p *Parser) parseSeqExpr() (ast.ExprID, bool) {
	lbracketTok := p.advance() // '['
	var elems []ast.ExprID

	if p.lx.Peek().Kind != token.RBracket {
		for {
			elem, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			elems = append(elems, elem)

			if p.lx.Peek().Kind != token.Comma {
				break
			}
			p.advance() // ','
		}
	}

	closeTok := p.lx.Peek()
	if closeTok.Kind != token.RBracket {
		p.err(diag.SynUnclosedBracket, lbracketTok.Span, "expected ']'")
		return ast.NoExprID, false
	}
	p.advance()
	return p.exprs.NewSeq(lbracketTok.Span.Cover(closeTok.Span), elems), true
}

// parseBlockExpr consumes a balanced "{...}" as one opaque node. The engine
// never decomposes block internals; evaluation goes through the
// environment's block evaluator.
func (p *Parser) parseBlockExpr() (ast.ExprID, bool) {
	lbraceTok := p.advance() // '{'
	depth := 1
	span := lbraceTok.Span

	for depth > 0 {
		tok := p.advance()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		case token.EOF:
			p.err(diag.SynUnclosedBrace, lbraceTok.Span, "expected '}' to close block")
			return ast.NoExprID, false
		}
		span = span.Cover(tok.Span)
	}

	return p.exprs.NewBlock(span, p.file.Text(span), nil), true
}
