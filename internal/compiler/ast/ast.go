package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/token"
)

// --- Interfaces ---
type Node interface {
	TokenLiteral() string
	String() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
	ResultType() symbols.Type
	GetToken() token.Token
}

// --- Operators ---

type Operator string

const (
	OpAdd Operator = "ADD"
	OpSub Operator = "SUB"
	OpMul Operator = "MUL"
	OpDiv Operator = "DIV"
)

// Glyph returns the operator's source form.
func (op Operator) Glyph() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// --- Statements ---

// AssignStatement -> x = expression
type AssignStatement struct {
	Token token.Token // =
	Name  *Identifier
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	if as.Name != nil {
		out.WriteString(as.Name.String())
	}
	out.WriteString(" " + as.TokenLiteral() + " ") // " = "
	if as.Value != nil {
		out.WriteString(as.Value.String())
	}
	return out.String()
}

// ExpressionStatement wraps a bare expression used as a statement
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// --- Expressions ---

// Identifier -> varName
type Identifier struct {
	Token token.Token // IDENT
	Value string
	// Filled in during type resolution from the symbol table entry.
	Typ symbols.Type
}

func (i *Identifier) expressionNode()          {}
func (i *Identifier) TokenLiteral() string     { return i.Token.Literal }
func (i *Identifier) ResultType() symbols.Type { return i.Typ }
func (i *Identifier) String() string           { return i.Value }
func (i *Identifier) GetToken() token.Token    { return i.Token }

// NumberLiteral -> 123 or 1.5. The literal form fixes the type: a lexeme
// containing a decimal point is real, anything else is int. Exactly one of
// Int/Real carries the value, selected by Typ.
type NumberLiteral struct {
	Token   token.Token
	Literal string // normalized lexeme, reused verbatim in TAC operands
	Typ     symbols.Type
	Int     int64
	Real    float64
}

func (nl *NumberLiteral) expressionNode()          {}
func (nl *NumberLiteral) TokenLiteral() string     { return nl.Token.Literal }
func (nl *NumberLiteral) ResultType() symbols.Type { return nl.Typ }
func (nl *NumberLiteral) String() string           { return nl.Literal }
func (nl *NumberLiteral) GetToken() token.Token    { return nl.Token }

// AsReal returns the value widened to float64 regardless of type.
func (nl *NumberLiteral) AsReal() float64 {
	if nl.Typ == symbols.TypeReal {
		return nl.Real
	}
	return float64(nl.Int)
}

func (nl *NumberLiteral) IsZero() bool {
	if nl.Typ == symbols.TypeReal {
		return nl.Real == 0
	}
	return nl.Int == 0
}

// IntLexeme formats an int value the way the lexer would have produced it.
func IntLexeme(v int64) string {
	return strconv.FormatInt(v, 10)
}

// RealLexeme formats a real value so it re-lexes as a real: plain decimal
// notation, never exponents, and a bare integral result like 6 is rendered
// as 6.0.
func RealLexeme(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// BinaryExpression -> (left + right)
type BinaryExpression struct {
	Token token.Token // +, -, *, /
	Op    Operator
	Left  Expression
	Right Expression
	// Filled in during type resolution: the join of the children's types.
	Typ symbols.Type
	// Neg marks the SUB node a unary minus lowers to. The injected zero on
	// the left takes the right operand's resolved type, not int.
	Neg bool
}

func (be *BinaryExpression) expressionNode()          {}
func (be *BinaryExpression) TokenLiteral() string     { return be.Token.Literal }
func (be *BinaryExpression) ResultType() symbols.Type { return be.Typ }
func (be *BinaryExpression) GetToken() token.Token    { return be.Token }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(") // Parentheses for clarity/precedence
	if be.Left != nil {
		out.WriteString(be.Left.String())
	}
	out.WriteString(" " + be.Op.Glyph() + " ")
	if be.Right != nil {
		out.WriteString(be.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

// Label is the short node description used by tree renderers and Dump:
// Assign(x), Binary(+), Num(2), Var(x).
func Label(node Node) string {
	switch n := node.(type) {
	case *AssignStatement:
		return fmt.Sprintf("Assign(%s)", n.Name.Value)
	case *ExpressionStatement:
		if n.Expression != nil {
			return Label(n.Expression)
		}
		return "Expr"
	case *BinaryExpression:
		return fmt.Sprintf("Binary(%s)", n.Op.Glyph())
	case *NumberLiteral:
		return fmt.Sprintf("Num(%s)", n.Literal)
	case *Identifier:
		return fmt.Sprintf("Var(%s)", n.Value)
	}
	return fmt.Sprintf("<unknown node type: %T>", node)
}

// Children returns a node's subtrees in evaluation order.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *AssignStatement:
		return []Node{n.Value}
	case *ExpressionStatement:
		// Label already delegates to the wrapped expression, so delegate
		// here too rather than printing it twice.
		if n.Expression != nil {
			return Children(n.Expression)
		}
	case *BinaryExpression:
		return []Node{n.Left, n.Right}
	}
	return nil
}

// Dump pretty-prints the tree structure with two-space indentation, one node
// per line, annotated with resolved types where present.
func Dump(w io.Writer, node Node, indent string) {
	if es, ok := node.(*ExpressionStatement); ok && es.Expression != nil {
		node = es.Expression
	}
	label := Label(node)
	if expr, ok := node.(Expression); ok {
		label += " <" + expr.ResultType().String() + ">"
	}
	fmt.Fprintln(w, indent+label)
	for _, child := range Children(node) {
		Dump(w, child, indent+"  ")
	}
}
