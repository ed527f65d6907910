package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Juansebast123/Tabla-simbolos/internal/config"
	"github.com/Juansebast123/Tabla-simbolos/internal/repl"
)

// repl: translate statements interactively
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Translate statements interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		repl.Start(cfg.Repl)
		return nil
	},
}
