package repl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/tac"
	"github.com/Juansebast123/Tabla-simbolos/internal/config"
	"github.com/Juansebast123/Tabla-simbolos/internal/logging"
)

// Start runs the interactive loop. One statement per line; the symbol table
// persists across statements and survives failed ones unchanged.
func Start(opts config.ReplConfig) {
	fmt.Println("edts REPL | empty line or 'exit' to quit")
	scanner := bufio.NewScanner(os.Stdin)

	table := symbols.NewSymbolTable()

	for {
		fmt.Print(opts.Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.EqualFold(line, "exit") {
			break
		}

		res, err := compiler.Compile(line, table)
		if err != nil {
			logging.PrintErrorMessage("Error", err)
			continue
		}
		table = res.Table

		if opts.ShowAST {
			logging.PrintHeader("AST")
			pterm.DefaultTree.WithRoot(treeNode(res.Stmt)).Render()
		}
		if opts.ShowSymbols {
			logging.PrintHeader("Symbol table")
			fmt.Println(table.String())
		}
		if opts.ShowTAC {
			logging.PrintHeader("TAC")
			fmt.Println(tac.Render(res.Code))
		}
	}
	fmt.Println("Bye.")
}

// treeNode converts an AST into pterm's tree structure, labelled the same
// way as ast.Dump: Assign(x), Binary(+), Num(2), Var(x).
func treeNode(node ast.Node) pterm.TreeNode {
	tn := pterm.TreeNode{Text: ast.Label(node)}
	for _, child := range ast.Children(node) {
		tn.Children = append(tn.Children, treeNode(child))
	}
	return tn
}
