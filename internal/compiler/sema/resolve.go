package sema

import (
	"fmt"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/errs"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
)

// Resolver annotates every expression node with its type, consulting and
// updating the symbol table. Each node's type is set before any parent
// consumes it, so the folder and the TAC generator can rely on them.
type Resolver struct {
	table *symbols.SymbolTable
}

func NewResolver(table *symbols.SymbolTable) *Resolver {
	return &Resolver{table: table}
}

func (r *Resolver) ResolveStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		return r.resolveExpr(s.Expression)

	case *ast.AssignStatement:
		if err := r.resolveExpr(s.Value); err != nil {
			return err
		}
		r.table.Assign(s.Name.Value, s.Value.ResultType())
		// The target carries the table's current type, which may be the
		// widened one rather than the expression's.
		info, _ := r.table.Lookup(s.Name.Value)
		s.Name.Typ = info.Type
		return nil
	}
	return fmt.Errorf("internal: unsupported statement %T", stmt)
}

func (r *Resolver) resolveExpr(expr ast.Expression) error {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		// Type fixed by literal form at parse time
		return nil

	case *ast.Identifier:
		info, ok := r.table.Lookup(n.Value)
		if !ok {
			return errs.New(errs.UndefinedVariableError, n.Token.Column,
				"variable %q read before assignment", n.Value)
		}
		n.Typ = info.Type
		return nil

	case *ast.BinaryExpression:
		if n.Neg {
			// Unary minus: the injected zero takes the operand's type so a
			// real negation does not force a conversion on zero.
			if err := r.resolveExpr(n.Right); err != nil {
				return err
			}
			zero := n.Left.(*ast.NumberLiteral)
			zero.Typ = n.Right.ResultType()
			if zero.Typ == symbols.TypeReal {
				zero.Literal = "0.0"
			}
		} else {
			if err := r.resolveExpr(n.Left); err != nil {
				return err
			}
			if err := r.resolveExpr(n.Right); err != nil {
				return err
			}
		}
		n.Typ = symbols.Promote(n.Left.ResultType(), n.Right.ResultType())
		return nil
	}
	return fmt.Errorf("internal: unsupported expression %T", expr)
}
