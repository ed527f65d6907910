package cmd

import (
	"github.com/spf13/cobra"
)

var (
	outDir     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "edts",
	Short: "edts — arithmetic-to-TAC translator",
	Long: `edts translates statements of a small arithmetic language into a typed
AST, a persistent symbol table, and three-address code.

Commands:
  repl   Translate statements interactively, one per line
  build  Translate a (.edts) source file into a (.tac) listing
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for build artifacts")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "edts.toml", "path to the TOML config file")

	rootCmd.AddCommand(ReplCmd, BuildCmd)
}
