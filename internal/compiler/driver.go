package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/lexer"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/parser"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/sema"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/tac"
)

// Result is the output of compiling one statement: the typed (and folded)
// AST, the updated symbol table, and the statement's TAC sequence.
type Result struct {
	Stmt  ast.Statement
	Table *symbols.SymbolTable
	Code  []tac.Instruction
}

// Compile runs one statement through the full pipeline: lex, parse, resolve
// types, fold constants, generate TAC. The incoming table is never mutated;
// on success Result.Table is an updated clone for the caller to carry into
// the next statement, on failure the caller keeps its table as-is.
func Compile(line string, table *symbols.SymbolTable) (*Result, error) {
	stmt, err := parseStatement(line)
	if err != nil {
		return nil, err
	}

	work := table.Clone()
	if err := sema.NewResolver(work).ResolveStatement(stmt); err != nil {
		return nil, err
	}
	if err := sema.FoldStatement(stmt); err != nil {
		return nil, err
	}

	code, err := tac.NewGenerator(work).Generate(stmt)
	if err != nil {
		return nil, err
	}

	return &Result{Stmt: stmt, Table: work, Code: code}, nil
}

func parseStatement(line string) (ast.Statement, error) {
	lex := lexer.NewLexer(line)
	return parser.NewParser(lex).ParseStatement()
}

// LineResult is one source line's outcome in batch translation.
type LineResult struct {
	Line   int // 1-indexed line number in the source file
	Source string
	Result *Result
	Err    error
}

// TranslateSource compiles a multi-line source, one statement per non-blank
// line, sharing one symbol table. A failing statement is reported in its
// LineResult and translation continues with the table unchanged.
func TranslateSource(src string) []LineResult {
	table := symbols.NewSymbolTable()
	var results []LineResult

	for i, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lr := LineResult{Line: i + 1, Source: line}
		res, err := Compile(line, table)
		if err != nil {
			lr.Err = err
		} else {
			lr.Result = res
			table = res.Table
		}
		results = append(results, lr)
	}
	return results
}

// BuildFile translates a .edts source file and writes the TAC listing to
// <name>.tac under outDir. When dumpAST is non-nil, each statement's tree is
// dumped to it as well. Statement failures do not stop translation, but any
// failure means no output file is written.
func BuildFile(srcPath, outDir string, dumpAST io.Writer) (string, error) {
	if err := validateExtension(srcPath); err != nil {
		return "", err
	}

	b, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}

	results := TranslateSource(string(b))

	var listing strings.Builder
	var failures []string
	for _, lr := range results {
		if lr.Err != nil {
			failures = append(failures, fmt.Sprintf("line %d: %v", lr.Line, lr.Err))
			continue
		}
		if dumpAST != nil {
			fmt.Fprintf(dumpAST, "-- %s\n", lr.Source)
			ast.Dump(dumpAST, lr.Result.Stmt, "")
		}
		listing.WriteString("; " + lr.Source + "\n")
		listing.WriteString(tac.Render(lr.Result.Code) + "\n")
	}

	if len(failures) > 0 {
		return "", fmt.Errorf("compile errors:\n%s", strings.Join(failures, "\n"))
	}

	outFile, err := writeOutput(listing.String(), srcPath, outDir)
	if err != nil {
		return "", err
	}
	return outFile, nil
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".edts" {
		return fmt.Errorf("source must have .edts extension")
	}
	return nil
}

func writeOutput(listing, srcPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(srcPath), ".edts")+".tac")
	return outFile, os.WriteFile(outFile, []byte(listing), 0o644)
}
