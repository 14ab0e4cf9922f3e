package lexer

import "fmt"

// LexError is returned when the scanner cannot make progress: an
// unterminated string literal, a string literal that embeds a raw newline,
// or a character the lexer doesn't recognize.
type LexError struct {
	Message string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return e.Message
}

func newLexError(format string, args ...any) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...)}
}
