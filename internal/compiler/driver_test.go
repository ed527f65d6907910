package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/errs"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/tac"
)

func TestCompileScenario(t *testing.T) {
	table := symbols.NewSymbolTable()

	res, err := Compile("x = 2 + 3 * 4", table)
	be.Err(t, err, nil)

	// The all-literal expression folds before code generation
	assign := res.Stmt.(*ast.AssignStatement)
	num, ok := assign.Value.(*ast.NumberLiteral)
	be.True(t, ok)
	be.Equal(t, num.Int, int64(14))

	be.Equal(t, res.Table.String(), "{x:int}")
	be.Equal(t, tac.Render(res.Code), "LDCI 14 -> t1\nSTORI t1 -> x")

	// The input table was not touched; the clone carries the update
	be.Equal(t, table.Len(), 0)

	res2, err := Compile("y = x / 2.0", res.Table)
	be.Err(t, err, nil)
	be.Equal(t, res2.Table.String(), "{x:int, y:real}")
	be.Equal(t, tac.Render(res2.Code),
		"LDCR 2.0 -> t1\nITOR x -> t2\nDIVR t2, t1 -> t3\nSTORR t3 -> y")
}

func TestCompileUndefinedVariableLeavesTableUnchanged(t *testing.T) {
	table := symbols.NewSymbolTable()
	table.Assign("x", symbols.TypeInt)

	res, err := Compile("z = w + 1", table)
	be.True(t, res == nil)
	be.True(t, errs.Is(err, errs.UndefinedVariableError))
	be.Equal(t, table.String(), "{x:int}")
}

func TestCompileFoldErrorRollsBackPromotion(t *testing.T) {
	table := symbols.NewSymbolTable()
	table.Assign("x", symbols.TypeInt)

	// Resolution widens x to real before folding discovers the zero
	// divisor; the failure must discard that promotion with the clone.
	_, err := Compile("x = 1.0 / 0.0", table)
	be.True(t, errs.Is(err, errs.DivisionByZeroError))

	info, _ := table.Lookup("x")
	be.Equal(t, info.Type, symbols.TypeInt)
}

func TestCompileSyntaxError(t *testing.T) {
	table := symbols.NewSymbolTable()
	_, err := Compile("x = (2 + ", table)
	be.True(t, errs.Is(err, errs.SyntaxError))
}

func TestTranslateSourceContinuesPastFailures(t *testing.T) {
	src := "x = 1\n\nz = w + 1\ny = x + 2.5\n"
	results := TranslateSource(src)

	be.Equal(t, len(results), 3) // blank line skipped

	be.Err(t, results[0].Err, nil)
	be.True(t, errs.Is(results[1].Err, errs.UndefinedVariableError))
	be.Equal(t, results[1].Line, 3)

	// The failing line left the table alone; the next line still compiles
	be.Err(t, results[2].Err, nil)
	be.Equal(t, results[2].Result.Table.String(), "{x:int, y:real}")
}

func TestBuildFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sample.edts")
	err := os.WriteFile(src, []byte("x = 2 + 3 * 4\ny = x / 2.0\n"), 0o644)
	be.Err(t, err, nil)

	outFile, err := BuildFile(src, filepath.Join(dir, "out"), nil)
	be.Err(t, err, nil)
	be.True(t, strings.HasSuffix(outFile, "sample.tac"))

	b, err := os.ReadFile(outFile)
	be.Err(t, err, nil)
	listing := string(b)
	be.True(t, strings.Contains(listing, "LDCI 14 -> t1"))
	be.True(t, strings.Contains(listing, "STORR t3 -> y"))
}

func TestBuildFileRejectsWrongExtension(t *testing.T) {
	_, err := BuildFile("sample.txt", t.TempDir(), nil)
	be.True(t, err != nil)
}

func TestBuildFileReportsLineErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.edts")
	err := os.WriteFile(src, []byte("x = 1\ny = q\n"), 0o644)
	be.Err(t, err, nil)

	_, err = BuildFile(src, filepath.Join(dir, "out"), nil)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "line 2"))
}
