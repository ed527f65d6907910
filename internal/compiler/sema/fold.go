package sema

import (
	"fmt"
	"math"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/errs"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
)

// FoldStatement runs constant folding over a resolved statement, replacing
// each binary node whose operands are both literals with a single literal of
// the promoted type. Folding is bottom-up, so a folded child can enable its
// parent to fold too.
func FoldStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		expr, err := FoldExpr(s.Expression)
		if err != nil {
			return err
		}
		s.Expression = expr
		return nil

	case *ast.AssignStatement:
		expr, err := FoldExpr(s.Value)
		if err != nil {
			return err
		}
		s.Value = expr
		return nil
	}
	return fmt.Errorf("internal: unsupported statement %T", stmt)
}

// FoldExpr returns the expression with all foldable subtrees collapsed.
// Integer division truncates; real division is exact. A literal zero divisor
// fails with DivisionByZeroError rather than producing an invalid constant.
func FoldExpr(expr ast.Expression) (ast.Expression, error) {
	b, ok := expr.(*ast.BinaryExpression)
	if !ok {
		return expr, nil
	}

	left, err := FoldExpr(b.Left)
	if err != nil {
		return nil, err
	}
	b.Left = left

	right, err := FoldExpr(b.Right)
	if err != nil {
		return nil, err
	}
	b.Right = right

	ln, lok := b.Left.(*ast.NumberLiteral)
	rn, rok := b.Right.(*ast.NumberLiteral)
	if !lok || !rok {
		return b, nil
	}

	if b.Op == ast.OpDiv && rn.IsZero() {
		return nil, errs.New(errs.DivisionByZeroError, b.Token.Column,
			"division by literal zero")
	}

	if b.Typ == symbols.TypeInt {
		v, ok := foldInt(b.Op, ln.Int, rn.Int)
		if !ok {
			// Result exceeds int64; leave the operation in the tree
			return b, nil
		}
		return &ast.NumberLiteral{Token: b.Token, Literal: ast.IntLexeme(v), Typ: symbols.TypeInt, Int: v}, nil
	}

	v := foldReal(b.Op, ln.AsReal(), rn.AsReal())
	if math.IsInf(v, 0) || math.IsNaN(v) {
		// Not representable as a literal; leave the operation in the tree
		return b, nil
	}
	return &ast.NumberLiteral{Token: b.Token, Literal: ast.RealLexeme(v), Typ: symbols.TypeReal, Real: v}, nil
}

// foldInt evaluates an int operation, reporting ok=false when the result
// overflows int64.
func foldInt(op ast.Operator, a, b int64) (int64, bool) {
	switch op {
	case ast.OpAdd:
		r := a + b
		if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
			return 0, false
		}
		return r, true
	case ast.OpSub:
		r := a - b
		if (b > 0 && r > a) || (b < 0 && r < a) {
			return 0, false
		}
		return r, true
	case ast.OpMul:
		if a == 0 || b == 0 {
			return 0, true
		}
		if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
			return 0, false
		}
		r := a * b
		if r/b != a {
			return 0, false
		}
		return r, true
	case ast.OpDiv:
		// MinInt64 / -1 is the one quotient that does not fit
		if a == math.MinInt64 && b == -1 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}

func foldReal(op ast.Operator, a, b float64) float64 {
	switch op {
	case ast.OpAdd:
		return a + b
	case ast.OpSub:
		return a - b
	case ast.OpMul:
		return a * b
	case ast.OpDiv:
		return a / b
	}
	return 0
}
