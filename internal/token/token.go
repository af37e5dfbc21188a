package token

import "fmt"

type TokenType string

const (
	EOF = "EOF"

	// Punctuation
	DOT           = "DOT"           // .
	COMMA         = "COMMA"         // ,
	AMPERSAND     = "AMPERSAND"     // &
	PIPE          = "PIPE"          // |
	SEMICOLON     = "SEMICOLON"     // ;
	LEFT_PAREN    = "LEFT_PAREN"    // (
	RIGHT_PAREN   = "RIGHT_PAREN"   // )
	LEFT_BRACKET  = "LEFT_BRACKET"  // [
	RIGHT_BRACKET = "RIGHT_BRACKET" // ]
	LEFT_BRACE    = "LEFT_BRACE"    // {
	RIGHT_BRACE   = "RIGHT_BRACE"   // }

	// Arithmetic and compound operators
	PLUS        = "PLUS"        // +
	MINUS       = "MINUS"       // -
	STAR        = "STAR"        // *
	SLASH       = "SLASH"       // /
	STAR_STAR   = "STAR_STAR"   // **
	SLASH_SLASH = "SLASH_SLASH" // //
	PLUS_EQUAL  = "PLUS_EQUAL"  // +=
	MINUS_EQUAL = "MINUS_EQUAL" // -=
	PLUS_PLUS   = "PLUS_PLUS"   // ++
	MINUS_MINUS = "MINUS_MINUS" // --

	// Comparison
	BANG          = "BANG"          // !
	BANG_EQUAL    = "BANG_EQUAL"    // !=
	EQUAL         = "EQUAL"         // =
	EQUAL_EQUAL   = "EQUAL_EQUAL"   // ==
	GREATER       = "GREATER"       // >
	GREATER_EQUAL = "GREATER_EQUAL" // >=
	LESS          = "LESS"          // <
	LESS_EQUAL    = "LESS_EQUAL"    // <=

	// Literals
	IDENT   = "IDENT"   // foo, _bar
	STRING  = "STRING"  // "foo" 'bar'
	INTEGER = "INTEGER" // 42
	FLOAT   = "FLOAT"   // 4.2

	// Keywords
	TRUE   = "TRUE"
	FALSE  = "FALSE"
	NIL    = "NIL"
	NOT    = "NOT"
	IS     = "IS"
	IN     = "IN"
	AND    = "AND"
	OR     = "OR"
	LET    = "LET"
	CONST  = "CONST"
	IF     = "IF"
	ELIF   = "ELIF"
	ELSE   = "ELSE"
	FOR    = "FOR"
	WHILE  = "WHILE"
	FUN    = "FUN"
	SWITCH = "SWITCH"
	CASE   = "CASE"
	RETURN = "RETURN"
)

// Span is a half-open [Start, End) range for columns and an inclusive
// range for lines.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Token is a single lexeme with its source position. Lines are 1-based;
// columns are byte offsets from the start of the line.
type Token struct {
	Type   TokenType `json:"type" yaml:"type"`
	Lexeme string    `json:"lexeme,omitempty" yaml:"lexeme,omitempty"`
	Line   Span      `json:"line" yaml:"line"`
	Column Span      `json:"column" yaml:"column"`
}

func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("Token<%s line: %d>", t.Type, t.Line.Start)
	}
	return fmt.Sprintf("Token<%s %q line: %d col: %d-%d>", t.Type, t.Lexeme, t.Line.Start, t.Column.Start, t.Column.End)
}

var keywords = map[string]TokenType{
	"true":   TRUE,
	"false":  FALSE,
	"nil":    NIL,
	"not":    NOT,
	"is":     IS,
	"in":     IN,
	"and":    AND,
	"or":     OR,
	"let":    LET,
	"const":  CONST,
	"if":     IF,
	"elif":   ELIF,
	"else":   ELSE,
	"for":    FOR,
	"while":  WHILE,
	"fun":    FUN,
	"switch": SWITCH,
	"case":   CASE,
	"return": RETURN,
}

// LookupIdent returns the reserved word type for ident, or IDENT.
// The lookup is case-sensitive.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words, used for REPL completion.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	return words
}

var symbols = map[TokenType]string{
	DOT:           ".",
	COMMA:         ",",
	AMPERSAND:     "&",
	PIPE:          "|",
	SEMICOLON:     ";",
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	STAR_STAR:     "**",
	SLASH_SLASH:   "//",
	PLUS_EQUAL:    "+=",
	MINUS_EQUAL:   "-=",
	PLUS_PLUS:     "++",
	MINUS_MINUS:   "--",
	BANG:          "!",
	BANG_EQUAL:    "!=",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
}

// Symbol returns the source spelling of t: the operator text for
// punctuation and operators, the keyword for reserved words, and the
// type name otherwise.
func Symbol(t TokenType) string {
	if s, ok := symbols[t]; ok {
		return s
	}
	for word, kw := range keywords {
		if kw == t {
			return word
		}
	}
	return string(t)
}
