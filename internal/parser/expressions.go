package parser

import (
	"strconv"

	"Plox/internal/ast"
	"Plox/internal/token"
)

func (p *Parser) expression() ast.Node {
	return p.equality()
}

func (p *Parser) equality() ast.Node {
	return p.binary(p.comparison, token.EQUAL_EQUAL, token.BANG_EQUAL)
}

func (p *Parser) comparison() ast.Node {
	return p.binary(p.term, token.GREATER, token.LESS, token.GREATER_EQUAL, token.LESS_EQUAL)
}

func (p *Parser) term() ast.Node {
	return p.binary(p.factor, token.PLUS, token.MINUS)
}

func (p *Parser) factor() ast.Node {
	return p.binary(p.unary, token.STAR, token.SLASH, token.STAR_STAR, token.SLASH_SLASH)
}

// binary parses a left-associative chain of operand (op operand)*.
func (p *Parser) binary(operand func() ast.Node, operators ...token.TokenType) ast.Node {
	expr := operand()
	for p.match(operators...) {
		operator := p.previous().Type
		right := operand()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Node {
	if p.match(token.MINUS, token.NOT, token.PLUS_PLUS, token.MINUS_MINUS) {
		operator := p.previous().Type
		return &ast.Unary{Operator: operator, Operand: p.unary()}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Node {
	switch {
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.STRING):
		return p.parseStringLiteral()
	case p.match(token.INTEGER):
		return p.parseIntegerLiteral()
	case p.match(token.FLOAT):
		return p.parseFloatLiteral()
	case p.match(token.LEFT_PAREN):
		inner := p.expression()
		if p.match(token.RIGHT_PAREN) {
			return &ast.Group{Inner: inner}
		}
		p.log.Debug("Missing closing parenthesis before %s", p.peekDescription())
		return &ast.Invalid{}
	}

	p.log.Debug("No expression matches %s", p.peekDescription())
	return &ast.Invalid{}
}

func (p *Parser) parseStringLiteral() ast.Node {
	lexeme := p.previous().Lexeme
	if len(lexeme) < 2 {
		return &ast.Invalid{}
	}
	return &ast.Literal{Value: lexeme[1 : len(lexeme)-1]}
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	value, err := strconv.ParseInt(p.previous().Lexeme, 10, 64)
	if err != nil {
		return &ast.Invalid{}
	}
	return &ast.Literal{Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Node {
	value, err := strconv.ParseFloat(p.previous().Lexeme, 64)
	if err != nil {
		return &ast.Invalid{}
	}
	return &ast.Literal{Value: value}
}

func (p *Parser) peekDescription() string {
	if p.isAtEnd() {
		return "end of input"
	}
	return p.tokens[p.current].String()
}
