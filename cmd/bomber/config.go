package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bomber/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.bomber/configs/bomber.yaml or ./configs/bomber.yaml to customize
rules, controls and rendering.

With --resolved, print the configuration that would actually be used,
after the config file search and the --difficulty preset.

Examples:
  bomber config > ~/.bomber/configs/bomber.yaml
  bomber config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, preset, err := loadGame()
	if err != nil {
		return err
	}
	config.ApplyBomberPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	fmt.Printf("# difficulty: %s\n", preset)
	_, err = os.Stdout.Write(out)
	return err
}
