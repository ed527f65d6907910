package sema

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/errs"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/lexer"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/parser"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
)

func parse(t *testing.T, input string) ast.Statement {
	t.Helper()
	stmt, err := parser.NewParser(lexer.NewLexer(input)).ParseStatement()
	be.Err(t, err, nil)
	return stmt
}

func resolve(t *testing.T, input string, table *symbols.SymbolTable) ast.Statement {
	t.Helper()
	stmt := parse(t, input)
	err := NewResolver(table).ResolveStatement(stmt)
	be.Err(t, err, nil)
	return stmt
}

func TestBinaryPromotion(t *testing.T) {
	table := symbols.NewSymbolTable()

	stmt := resolve(t, "2 + 3", table)
	expr := stmt.(*ast.ExpressionStatement).Expression
	be.Equal(t, expr.ResultType(), symbols.TypeInt)

	stmt = resolve(t, "2 + 3.5", table)
	expr = stmt.(*ast.ExpressionStatement).Expression
	be.Equal(t, expr.ResultType(), symbols.TypeReal)

	stmt = resolve(t, "2.5 * 2", table)
	expr = stmt.(*ast.ExpressionStatement).Expression
	be.Equal(t, expr.ResultType(), symbols.TypeReal)
}

func TestVariableTypeFromTable(t *testing.T) {
	table := symbols.NewSymbolTable()
	table.Assign("a", symbols.TypeReal)

	stmt := resolve(t, "a + 1", table)
	expr := stmt.(*ast.ExpressionStatement).Expression.(*ast.BinaryExpression)
	be.Equal(t, expr.Left.ResultType(), symbols.TypeReal)
	be.Equal(t, expr.ResultType(), symbols.TypeReal)
}

func TestUndefinedVariable(t *testing.T) {
	table := symbols.NewSymbolTable()
	stmt := parse(t, "z = w + 1")

	err := NewResolver(table).ResolveStatement(stmt)
	be.True(t, errs.Is(err, errs.UndefinedVariableError))

	// The failing statement must not touch the table
	be.Equal(t, table.Len(), 0)
}

func TestAssignInsertsType(t *testing.T) {
	table := symbols.NewSymbolTable()
	resolve(t, "x = 2 + 3 * 4", table)

	info, ok := table.Lookup("x")
	be.True(t, ok)
	be.Equal(t, info.Type, symbols.TypeInt)
}

func TestAssignWidensAcrossStatements(t *testing.T) {
	table := symbols.NewSymbolTable()
	resolve(t, "x = 1", table)
	resolve(t, "x = 1.5", table)

	info, _ := table.Lookup("x")
	be.Equal(t, info.Type, symbols.TypeReal)

	// Promotion monotonicity: an int reassignment never reverts it
	resolve(t, "x = 2", table)
	info, _ = table.Lookup("x")
	be.Equal(t, info.Type, symbols.TypeReal)
}

func TestAssignTargetCarriesWidenedType(t *testing.T) {
	table := symbols.NewSymbolTable()
	table.Assign("x", symbols.TypeReal)

	stmt := resolve(t, "x = 2", table)
	assign := stmt.(*ast.AssignStatement)
	be.Equal(t, assign.Name.Typ, symbols.TypeReal)
	be.Equal(t, assign.Value.ResultType(), symbols.TypeInt)
}

func TestUnaryMinusZeroFollowsOperandType(t *testing.T) {
	table := symbols.NewSymbolTable()

	stmt := resolve(t, "-2.5", table)
	sub := stmt.(*ast.ExpressionStatement).Expression.(*ast.BinaryExpression)
	be.Equal(t, sub.ResultType(), symbols.TypeReal)

	// The injected zero is real too, so negating a real needs no ITOR
	zero := sub.Left.(*ast.NumberLiteral)
	be.Equal(t, zero.Typ, symbols.TypeReal)
	be.Equal(t, zero.Literal, "0.0")

	stmt = resolve(t, "-7", table)
	sub = stmt.(*ast.ExpressionStatement).Expression.(*ast.BinaryExpression)
	be.Equal(t, sub.ResultType(), symbols.TypeInt)
	be.Equal(t, sub.Left.(*ast.NumberLiteral).Typ, symbols.TypeInt)
}
