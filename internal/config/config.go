package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// File is the optional TOML config as it is encoded on disk (edts.toml).
type File struct {
	Repl ReplConfig `toml:"repl"`
}

// ReplConfig controls what the interactive loop prints per statement.
type ReplConfig struct {
	Prompt      string `toml:"prompt"`
	ShowAST     bool   `toml:"show-ast"`
	ShowSymbols bool   `toml:"show-symbols"`
	ShowTAC     bool   `toml:"show-tac"`
}

// Default returns the configuration used when no config file exists: every
// output block enabled, the original ">>> " prompt.
func Default() *File {
	return &File{
		Repl: ReplConfig{
			Prompt:      ">>> ",
			ShowAST:     true,
			ShowSymbols: true,
			ShowTAC:     true,
		},
	}
}

// Load reads and decodes a TOML config file. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (*File, error) {
	buff, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(buff, cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Repl.Prompt == "" {
		cfg.Repl.Prompt = ">>> "
	}
	return cfg, nil
}
