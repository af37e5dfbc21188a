package frontend

import (
	"Plox/internal/ast"
	"Plox/internal/lexer"
	"Plox/internal/parser"
	"Plox/internal/printer"
	"Plox/internal/token"
)

// Result is everything the pipeline produces for one source text.
type Result struct {
	Tokens      []token.Token
	Diagnostics []lexer.UnknownSymbol
	Tree        ast.Node
	Trailing    []token.Token
	Rendered    string
}

// Run tokenizes, parses and renders source. Only lexical errors are
// returned; a malformed expression yields a tree containing Invalid nodes.
func Run(source string, opts ...printer.Option) (*Result, error) {
	l := lexer.New(source)
	tokens, err := l.Tokenize()
	if err != nil {
		return nil, err
	}

	p := parser.New(tokens)
	tree := p.Parse()

	return &Result{
		Tokens:      tokens,
		Diagnostics: l.Diagnostics(),
		Tree:        tree,
		Trailing:    p.Remaining(),
		Rendered:    printer.New(opts...).Render(tree),
	}, nil
}

func (r *Result) Valid() bool {
	return !ast.ContainsInvalid(r.Tree)
}
