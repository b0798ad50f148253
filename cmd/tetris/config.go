package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game config",
	Long: `Print the built-in default config, ready to be saved as
~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml and edited.

With --check, load the config the game would use (honouring --config and
the search path) and report whether it is valid.

Examples:
  tetris config > ~/.tetris/configs/tetris.yaml
  tetris config --check --config ./my-tetris.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the effective config instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheck {
		//nolint:errcheck // stdout write failures have nowhere to go
		os.Stdout.Write(config.DefaultTetrisYAML())
		return
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tetris.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("config ok: %dx%d field, %d gravity levels, preview %d, sprint %d lines\n",
		cfg.Field.Width, cfg.Field.Height-cfg.Field.HiddenRows, len(cfg.Timing.GravityTicks),
		cfg.Gameplay.PreviewCount, cfg.Gameplay.SprintLines)
}
