package main

import (
	"os"

	"github.com/Juansebast123/Tabla-simbolos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
