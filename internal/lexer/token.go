package lexer

import "fmt"

// Token is a single lexical unit: a kind drawn from the closed TokenType
// set, and the literal (or canonical) text it was scanned from.
type Token struct {
	Kind TokenType
	Text string
}

// NewToken constructs a Token. It exists for parity with the rest of the
// corpus's NewXxx constructors; Token is small enough to build as a literal
// too.
func NewToken(kind TokenType, text string) Token {
	return Token{Kind: kind, Text: text}
}

// String renders a Token for debugging, e.g. Plus("+") or EOF_("").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind TokenType) bool {
	return t.Kind == kind
}
