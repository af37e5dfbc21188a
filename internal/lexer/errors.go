package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrInvalidNumberLiteral = errors.New("invalid number literal")
	ErrInvalidIdentifier    = errors.New("invalid identifier")
)

// LexError is a fatal scanning error. Err is one of the sentinel errors
// above; Line and Column locate the start of the offending lexeme.
type LexError struct {
	Err    error
	Line   int
	Column int
	Lexeme string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Column, e.Err, e.Lexeme)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// UnknownSymbol is a non-fatal diagnostic for a character that starts no
// token. The character is skipped.
type UnknownSymbol struct {
	Char   rune
	Line   int
	Column int
}

func (u UnknownSymbol) String() string {
	return fmt.Sprintf("%d:%d: unknown symbol %q", u.Line, u.Column, u.Char)
}
