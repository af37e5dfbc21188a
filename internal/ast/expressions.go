package ast

import (
	"fmt"
	"strconv"
	"strings"

	"Plox/internal/token"
)

// Node is an expression tree node. The set of implementations is closed:
// Binary, Unary, Group, Literal and Invalid.
type Node interface {
	exprNode()
}

type Binary struct {
	Left     Node
	Operator token.TokenType
	Right    Node
}

type Unary struct {
	Operator token.TokenType
	Operand  Node
}

type Group struct {
	Inner Node
}

// Literal holds a string, int64, float64, bool or nil.
type Literal struct {
	Value any
}

// Invalid marks the point where no grammar rule matched.
type Invalid struct{}

func (*Binary) exprNode()  {}
func (*Unary) exprNode()   {}
func (*Group) exprNode()   {}
func (*Literal) exprNode() {}
func (*Invalid) exprNode() {}

// Children returns the direct sub-expressions of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Binary:
		return []Node{n.Left, n.Right}
	case *Unary:
		return []Node{n.Operand}
	case *Group:
		return []Node{n.Inner}
	default:
		return nil
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range Children(n) {
		total += Count(child)
	}
	return total
}

// ContainsInvalid reports whether any node in the tree is Invalid.
func ContainsInvalid(n Node) bool {
	if _, ok := n.(*Invalid); ok {
		return true
	}
	for _, child := range Children(n) {
		if ContainsInvalid(child) {
			return true
		}
	}
	return false
}

// FormatValue renders a literal value the way it is shown to users.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Sexpr renders n on a single line, e.g.
// Binary(Literal(1), PLUS, Literal(2)).
func Sexpr(n Node) string {
	var sb strings.Builder
	writeSexpr(&sb, n)
	return sb.String()
}

func writeSexpr(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Binary:
		sb.WriteString("Binary(")
		writeSexpr(sb, n.Left)
		fmt.Fprintf(sb, ", %s, ", n.Operator)
		writeSexpr(sb, n.Right)
		sb.WriteString(")")
	case *Unary:
		fmt.Fprintf(sb, "Unary(%s, ", n.Operator)
		writeSexpr(sb, n.Operand)
		sb.WriteString(")")
	case *Group:
		sb.WriteString("Group(")
		writeSexpr(sb, n.Inner)
		sb.WriteString(")")
	case *Literal:
		fmt.Fprintf(sb, "Literal(%s)", FormatValue(n.Value))
	case *Invalid:
		sb.WriteString("Invalid")
	default:
		sb.WriteString("<nil>")
	}
}
