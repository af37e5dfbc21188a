package lexer

import (
	"strconv"
	"unicode/utf8"

	"Plox/internal/logger"
	"Plox/internal/token"
)

type Lexer struct {
	input   string
	start   int // first byte of the current lexeme
	current int // next byte to read

	line       int // current line (1-indexed)
	lineOffset int // byte index where the current line starts

	startLine   int
	startOffset int

	tokens      []token.Token
	diagnostics []UnknownSymbol
	log         *logger.Logger
}

func New(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		log:   logger.Get("lexer"),
	}
}

// Tokenize scans source and returns its tokens terminated by EOF.
func Tokenize(source string) ([]token.Token, error) {
	return New(source).Tokenize()
}

// Tokenize scans the whole input. The first lexical error aborts the scan
// and no tokens are returned.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startOffset = l.lineOffset

		if err := l.scanToken(); err != nil {
			l.log.Error("Lexing failed: %v", err)
			return nil, err
		}
	}

	end := len(l.input) - l.lineOffset
	l.tokens = append(l.tokens, token.Token{
		Type:   token.EOF,
		Line:   token.Span{Start: l.line, End: l.line},
		Column: token.Span{Start: end, End: end},
	})

	l.log.Debug("Lexed %d tokens over %d lines", len(l.tokens), l.line)
	return l.tokens, nil
}

// Diagnostics returns the unknown symbols skipped during the last scan.
func (l *Lexer) Diagnostics() []UnknownSymbol {
	return l.diagnostics
}

type compound struct {
	next byte
	typ  token.TokenType
}

type operator struct {
	single token.TokenType
	pairs  []compound
}

var punctuation = map[byte]token.TokenType{
	'.': token.DOT,
	',': token.COMMA,
	'&': token.AMPERSAND,
	'|': token.PIPE,
	';': token.SEMICOLON,
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	'[': token.LEFT_BRACKET,
	']': token.RIGHT_BRACKET,
	'{': token.LEFT_BRACE,
	'}': token.RIGHT_BRACE,
}

// Two-character forms are tried before the single-character fallback.
var operators = map[byte]operator{
	'+': {token.PLUS, []compound{{'+', token.PLUS_PLUS}, {'=', token.PLUS_EQUAL}}},
	'-': {token.MINUS, []compound{{'-', token.MINUS_MINUS}, {'=', token.MINUS_EQUAL}}},
	'*': {token.STAR, []compound{{'*', token.STAR_STAR}}},
	'/': {token.SLASH, []compound{{'/', token.SLASH_SLASH}}},
	'=': {token.EQUAL, []compound{{'=', token.EQUAL_EQUAL}}},
	'>': {token.GREATER, []compound{{'=', token.GREATER_EQUAL}}},
	'<': {token.LESS, []compound{{'=', token.LESS_EQUAL}}},
	'!': {token.BANG, []compound{{'=', token.BANG_EQUAL}}},
}

func (l *Lexer) scanToken() error {
	ch := l.advance()

	switch {
	case isSpace(ch):
		for isSpace(l.peek()) {
			l.advance()
		}
	case ch == '\n':
		l.newline()
	case ch == '#':
		for l.peek() != '\n' && !l.isAtEnd() {
			l.advance()
		}
	case ch == '"' || ch == '\'':
		return l.readString(ch)
	case isDigit(ch):
		return l.readNumber(ch)
	case isLetter(ch):
		return l.readIdentifier()
	default:
		if typ, ok := punctuation[ch]; ok {
			l.addToken(typ)
			return nil
		}
		if op, ok := operators[ch]; ok {
			l.addToken(l.matchOperator(op))
			return nil
		}
		l.unknownSymbol()
	}

	return nil
}

func (l *Lexer) matchOperator(op operator) token.TokenType {
	next := l.peek()
	for _, c := range op.pairs {
		if next == c.next {
			l.advance()
			return c.typ
		}
	}
	return op.single
}

func (l *Lexer) readString(quote byte) error {
	for l.peek() != quote && !l.isAtEnd() {
		if l.advance() == '\n' {
			l.newline()
		}
	}

	if l.isAtEnd() {
		return l.errorAt(ErrUnterminatedString)
	}

	l.advance() // closing quote
	l.addToken(token.STRING)
	return nil
}

func (l *Lexer) readNumber(first byte) error {
	leadingZero := first == '0' && isDigit(l.peek())
	for isDigit(l.peek()) {
		l.advance()
	}
	if leadingZero {
		return l.errorAt(ErrInvalidNumberLiteral)
	}

	typ := token.TokenType(token.INTEGER)
	if l.peek() == '.' {
		if !isDigit(l.peekNext()) {
			l.advance()
			return l.errorAt(ErrInvalidNumberLiteral)
		}
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		typ = token.FLOAT

		if l.peek() == '.' {
			l.advance()
			return l.errorAt(ErrInvalidNumberLiteral)
		}
	}

	if typ == token.INTEGER {
		if _, err := strconv.ParseInt(l.lexeme(), 10, 64); err != nil {
			return l.errorAt(ErrInvalidNumberLiteral)
		}
	}

	l.addToken(typ)
	return nil
}

func (l *Lexer) readIdentifier() error {
	for isAlphanumeric(l.peek()) {
		l.advance()
	}

	ident := l.lexeme()
	for i := 0; i+1 < len(ident); i++ {
		if ident[i] == '_' && isDigit(ident[i+1]) {
			return l.errorAt(ErrInvalidIdentifier)
		}
	}

	l.addToken(token.LookupIdent(ident))
	return nil
}

func (l *Lexer) unknownSymbol() {
	r, size := utf8.DecodeRuneInString(l.input[l.start:])
	// advance already consumed the first byte
	l.current = l.start + size

	diag := UnknownSymbol{Char: r, Line: l.line, Column: l.start - l.lineOffset}
	l.diagnostics = append(l.diagnostics, diag)
	l.log.Warn("Skipping %s", diag)
}

func (l *Lexer) addToken(typ token.TokenType) {
	l.tokens = append(l.tokens, token.Token{
		Type:   typ,
		Lexeme: l.lexeme(),
		Line:   token.Span{Start: l.startLine, End: l.line},
		Column: token.Span{Start: l.start - l.startOffset, End: l.current - l.lineOffset},
	})
}

func (l *Lexer) errorAt(err error) *LexError {
	return &LexError{
		Err:    err,
		Line:   l.startLine,
		Column: l.start - l.startOffset,
		Lexeme: l.lexeme(),
	}
}

func (l *Lexer) lexeme() string {
	return l.input[l.start:l.current]
}

func (l *Lexer) newline() {
	l.line++
	l.lineOffset = l.current
}

func (l *Lexer) advance() byte {
	ch := l.input[l.current]
	l.current++
	return ch
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.input[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.input) {
		return 0
	}
	return l.input[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.input)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isAlphanumeric(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
