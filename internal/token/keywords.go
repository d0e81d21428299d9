package token

// Keywords are case-sensitive; only lowercase spellings match.
var keywords = map[string]Kind{
	"true":  KwTrue,
	"false": KwFalse,
}

// LookupKeyword reports whether text spells a keyword and which one.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
