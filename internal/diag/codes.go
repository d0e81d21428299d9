package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic
	SynUnexpectedToken   Code = 2001
	SynExpectExpression  Code = 2002
	SynUnclosedParen     Code = 2003
	SynUnclosedBracket   Code = 2004
	SynUnclosedBrace     Code = 2005
	SynExpectIdentifier  Code = 2006
	SynTrailingInput     Code = 2007
	SynExpectCallArgs    Code = 2008
)

// ID returns the stable textual identifier for the code, e.g. "SYN2001".
func (c Code) ID() string {
	switch {
	case c >= 2000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("DIA%04d", uint16(c))
	}
}

func (c Code) String() string {
	return c.ID()
}
