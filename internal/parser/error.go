package parser

import (
	"fmt"

	"github.com/ngreenwood/langfront/internal/lexer"
)

// ParseError is returned on the first malformed construct the parser
// encounters. The parser does not attempt recovery; a ParseError always
// ends the parse.
type ParseError struct {
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

func unexpectedToken(expected string, got lexer.Token) *ParseError {
	return newParseError("expected %s, got %s", expected, got.Kind)
}
