package tac

import (
	"fmt"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
)

var arithOpcodes = map[ast.Operator][2]Opcode{
	ast.OpAdd: {OpADDI, OpADDR},
	ast.OpSub: {OpSUBI, OpSUBR},
	ast.OpMul: {OpMULI, OpMULR},
	ast.OpDiv: {OpDIVI, OpDIVR},
}

func arithOpcode(op ast.Operator, ty symbols.Type) Opcode {
	pair := arithOpcodes[op]
	if ty == symbols.TypeReal {
		return pair[1]
	}
	return pair[0]
}

// Generator emits a statement's instruction sequence from its fully typed
// AST in a single post-order walk. Temporaries are numbered from t1 and are
// scoped to the statement; a Generator is used for exactly one statement.
type Generator struct {
	table    *symbols.SymbolTable
	nextTemp int
	code     []Instruction
}

func NewGenerator(table *symbols.SymbolTable) *Generator {
	return &Generator{table: table}
}

func (g *Generator) newTemp() string {
	g.nextTemp++
	return fmt.Sprintf("t%d", g.nextTemp)
}

func (g *Generator) emit(op Opcode, arg1, arg2, dest string) string {
	g.code = append(g.code, Instruction{Op: op, Arg1: arg1, Arg2: arg2, Dest: dest})
	return dest
}

// Generate returns the ordered instruction sequence for one statement.
func (g *Generator) Generate(stmt ast.Statement) ([]Instruction, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		if _, _, err := g.genExpr(s.Expression); err != nil {
			return nil, err
		}
		return g.code, nil

	case *ast.AssignStatement:
		place, ty, err := g.genExpr(s.Value)
		if err != nil {
			return nil, err
		}

		// The store is typed by the variable's current table entry, which
		// resolution may have widened past the expression's type.
		info, ok := g.table.Lookup(s.Name.Value)
		if !ok {
			return nil, fmt.Errorf("internal: %q missing from symbol table after resolution", s.Name.Value)
		}
		place, _ = g.coerce(place, ty, info.Type)

		if info.Type == symbols.TypeReal {
			g.emit(OpSTORR, place, "", s.Name.Value)
		} else {
			g.emit(OpSTORI, place, "", s.Name.Value)
		}
		return g.code, nil
	}
	return nil, fmt.Errorf("internal: unsupported statement %T", stmt)
}

// genExpr emits code for an expression and returns the place holding its
// value: a temporary, or a variable name used directly as an operand (reads
// never emit a load instruction).
func (g *Generator) genExpr(expr ast.Expression) (string, symbols.Type, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		t := g.newTemp()
		if n.Typ == symbols.TypeReal {
			g.emit(OpLDCR, n.Literal, "", t)
		} else {
			g.emit(OpLDCI, n.Literal, "", t)
		}
		return t, n.Typ, nil

	case *ast.Identifier:
		return n.Value, n.Typ, nil

	case *ast.BinaryExpression:
		lplace, lty, err := g.genExpr(n.Left)
		if err != nil {
			return "", 0, err
		}
		rplace, rty, err := g.genExpr(n.Right)
		if err != nil {
			return "", 0, err
		}

		res := n.ResultType()
		lplace, _ = g.coerce(lplace, lty, res)
		rplace, _ = g.coerce(rplace, rty, res)

		t := g.newTemp()
		g.emit(arithOpcode(n.Op, res), lplace, rplace, t)
		return t, res, nil
	}
	return "", 0, fmt.Errorf("internal: unsupported expression %T", expr)
}

// coerce widens an int place to real with ITOR when the context requires it.
// There is no implicit real -> int narrowing.
func (g *Generator) coerce(place string, from, to symbols.Type) (string, symbols.Type) {
	if from == symbols.TypeInt && to == symbols.TypeReal {
		t := g.newTemp()
		g.emit(OpITOR, place, "", t)
		return t, symbols.TypeReal
	}
	return place, from
}
