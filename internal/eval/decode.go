package eval

import (
	"fmt"
	"strconv"
	"strings"

	"assay/internal/ast"
)

// decodeLiteral turns raw literal source text into a value. '_' digit
// separators are stripped; string escapes are decoded here, not in the lexer.
func decodeLiteral(kind ast.ExprLitKind, text string) (Value, error) {
	switch kind {
	case ast.LitBool:
		switch text {
		case "true":
			return BoolVal(true), nil
		case "false":
			return BoolVal(false), nil
		}
		return Value{}, fmt.Errorf("%w: bool %q", ErrBadLiteral, text)

	case ast.LitInt:
		i, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: int %q: %w", ErrBadLiteral, text, err)
		}
		return IntVal(i), nil

	case ast.LitFloat:
		f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: float %q: %w", ErrBadLiteral, text, err)
		}
		return FloatVal(f), nil

	case ast.LitString:
		s, err := unquote(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: string %s: %w", ErrBadLiteral, text, err)
		}
		return StringVal(s), nil

	default:
		return Value{}, fmt.Errorf("%w: kind %d", ErrBadLiteral, kind)
	}
}

// unquote decodes a "..." literal with the escapes the lexer admits.
func unquote(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("missing quotes")
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("dangling escape")
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			return "", fmt.Errorf("unknown escape \\%c", body[i])
		}
	}
	return b.String(), nil
}
