package ast

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
)

func sampleAssign() *AssignStatement {
	// x = 2 + y
	return &AssignStatement{
		Name: &Identifier{Value: "x"},
		Value: &BinaryExpression{
			Op:    OpAdd,
			Left:  &NumberLiteral{Literal: "2", Typ: symbols.TypeInt, Int: 2},
			Right: &Identifier{Value: "y", Typ: symbols.TypeReal},
			Typ:   symbols.TypeReal,
		},
	}
}

func TestString(t *testing.T) {
	stmt := sampleAssign()
	stmt.Token.Literal = "="
	be.Equal(t, stmt.String(), "x = (2 + y)")
}

func TestLabels(t *testing.T) {
	stmt := sampleAssign()
	be.Equal(t, Label(stmt), "Assign(x)")
	be.Equal(t, Label(stmt.Value), "Binary(+)")

	bin := stmt.Value.(*BinaryExpression)
	be.Equal(t, Label(bin.Left), "Num(2)")
	be.Equal(t, Label(bin.Right), "Var(y)")
}

func TestChildrenOrder(t *testing.T) {
	stmt := sampleAssign()
	kids := Children(stmt)
	be.Equal(t, len(kids), 1)

	kids = Children(stmt.Value)
	be.Equal(t, len(kids), 2)
	be.Equal(t, Label(kids[0]), "Num(2)")
	be.Equal(t, Label(kids[1]), "Var(y)")
}

func TestDump(t *testing.T) {
	var sb strings.Builder
	Dump(&sb, sampleAssign(), "")

	be.Equal(t, sb.String(),
		"Assign(x)\n"+
			"  Binary(+) <real>\n"+
			"    Num(2) <int>\n"+
			"    Var(y) <real>\n")
}

func TestLexemes(t *testing.T) {
	be.Equal(t, IntLexeme(14), "14")
	be.Equal(t, IntLexeme(-3), "-3")
	be.Equal(t, RealLexeme(3.5), "3.5")
	// Integral reals are rendered so they re-lex as reals
	be.Equal(t, RealLexeme(7), "7.0")
	be.Equal(t, RealLexeme(-2.5), "-2.5")
	// Plain decimal notation always; exponents would not re-lex
	be.Equal(t, RealLexeme(1e10), "10000000000.0")
	be.Equal(t, RealLexeme(1e-7), "0.0000001")
}

func TestOperatorGlyphs(t *testing.T) {
	be.Equal(t, OpAdd.Glyph(), "+")
	be.Equal(t, OpSub.Glyph(), "-")
	be.Equal(t, OpMul.Glyph(), "*")
	be.Equal(t, OpDiv.Glyph(), "/")
}
