// Package parser builds an expression tree from a token stream by
// recursive descent, one rule per precedence level:
//
//	expression := equality
//	equality   := comparison (("==" | "!=") comparison)*
//	comparison := term ((">" | "<" | ">=" | "<=") term)*
//	term       := factor (("+" | "-") factor)*
//	factor     := unary (("*" | "/" | "**" | "//") unary)*
//	unary      := ("-" | "not" | "++" | "--") unary | primary
//	primary    := TRUE | FALSE | NIL | STRING | INTEGER | FLOAT
//	            | "(" expression ")"
//
// Parsing never fails. Where no rule matches, an ast.Invalid node is
// placed in the tree instead.
package parser

import (
	"Plox/internal/ast"
	"Plox/internal/logger"
	"Plox/internal/token"
)

type Parser struct {
	tokens  []token.Token
	current int
	log     *logger.Logger
}

func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens: tokens,
		log:    logger.Get("parser"),
	}
}

// Parse returns the expression tree for tokens.
func Parse(tokens []token.Token) ast.Node {
	return New(tokens).Parse()
}

func (p *Parser) Parse() ast.Node {
	expr := p.expression()

	if rest := p.Remaining(); len(rest) > 0 {
		p.log.Debug("Ignoring %d trailing tokens starting at %s", len(rest), rest[0])
	}

	return expr
}

// Remaining returns the tokens after the parsed expression, EOF excluded.
func (p *Parser) Remaining() []token.Token {
	var rest []token.Token
	for _, tok := range p.tokens[min(p.current, len(p.tokens)):] {
		if tok.Type == token.EOF {
			break
		}
		rest = append(rest, tok)
	}
	return rest
}

// match consumes the next token if it has one of the given types.
func (p *Parser) match(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.TokenType) bool {
	return !p.isAtEnd() && p.tokens[p.current].Type == t
}

func (p *Parser) advance() {
	if !p.isAtEnd() {
		p.current++
	}
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// isAtEnd treats a missing EOF token and an EOF token the same way.
func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Type == token.EOF
}
