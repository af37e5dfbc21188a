// Package printer renders an expression tree as indented text, one line
// per node. Binary nodes are written in-order: left operand, the
// [OPERATOR] line standing for the node itself, then the right operand.
package printer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"Plox/internal/ast"
	"Plox/internal/token"
)

const (
	branchGlyph   = "┣"
	terminalGlyph = "┗"
	depthGlyph    = "━"
)

// Styles colours the parts of a rendered line.
type Styles struct {
	Guide lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Guide: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
	}
}

type Printer struct {
	styles *Styles
}

type Option func(*Printer)

func WithStyles(s Styles) Option {
	return func(p *Printer) {
		p.styles = &s
	}
}

func New(opts ...Option) *Printer {
	p := &Printer{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render returns the plain-text rendering of node.
func Render(node ast.Node) string {
	return New().Render(node)
}

func (p *Printer) Render(node ast.Node) string {
	var lines []string
	p.visit(&lines, node, 0, true)
	return strings.Join(lines, "\n")
}

func (p *Printer) visit(lines *[]string, node ast.Node, depth int, last bool) {
	switch n := node.(type) {
	case *ast.Binary:
		p.visit(lines, n.Left, depth+1, false)
		*lines = append(*lines, p.line(depth, last, "[OPERATOR]", token.Symbol(n.Operator)))
		p.visit(lines, n.Right, depth+1, true)
	case *ast.Unary:
		*lines = append(*lines, p.line(depth, last, "[UNARY]", token.Symbol(n.Operator)))
		p.visit(lines, n.Operand, depth+1, true)
	case *ast.Group:
		*lines = append(*lines, p.line(depth, last, "[GROUP]", ""))
		p.visit(lines, n.Inner, depth+1, true)
	case *ast.Literal:
		*lines = append(*lines, p.line(depth, last, "[LITERAL]", ast.FormatValue(n.Value)))
	default:
		*lines = append(*lines, p.line(depth, last, "[INVALID]", ""))
	}
}

func (p *Printer) line(depth int, last bool, label, value string) string {
	guide := ""
	if depth > 0 {
		glyph := branchGlyph
		if last {
			glyph = terminalGlyph
		}
		guide = glyph + strings.Repeat(depthGlyph, depth-1)
	}

	if p.styles != nil {
		guide = p.styles.Guide.Render(guide)
		label = p.styles.Label.Render(label)
		if value != "" {
			value = p.styles.Value.Render(value)
		}
	}

	if value == "" {
		return guide + label
	}
	return guide + label + " " + value
}
