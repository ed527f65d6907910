package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler"
	"github.com/Juansebast123/Tabla-simbolos/internal/logging"
)

var dumpAST bool

// build: translate a source file to a TAC listing
var BuildCmd = &cobra.Command{
	Use:   "build [file.edts]",
	Short: "Translate a .edts source file into a .tac listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var astOut io.Writer
		if dumpAST {
			astOut = os.Stdout
		}

		outFile, err := compiler.BuildFile(args[0], outDir, astOut)
		if err != nil {
			return err
		}
		logging.PrintInfoMessage("Build", "wrote "+outFile)
		return nil
	},
}

func init() {
	BuildCmd.Flags().BoolVar(&dumpAST, "ast", false, "dump each statement's AST to stdout")
}
