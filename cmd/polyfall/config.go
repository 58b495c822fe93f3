package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyfall/internal/config"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default game config",
	Long: `Print the default YAML configuration to stdout.

With --init, write it to ~/.polyfall/configs/polyfall.yaml instead, where
it is picked up on the next run and can be edited.

Examples:
  polyfall config
  polyfall config --init
  polyfall config > my-rules.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default config to ~/.polyfall/configs/")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagInit {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".polyfall", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	path := filepath.Join(dir, "polyfall.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}

	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
