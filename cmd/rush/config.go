package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/geometry-rush/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration as YAML.

Copy it to ~/.arcade/configs/rush.yaml or ./configs/rush.yaml to
customize the game, or pass a file with --config.

With --resolved, prints the configuration after loading --config and
applying --difficulty instead.

Examples:
  rush config > ~/.arcade/configs/rush.yaml
  rush config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		fatal("Error loading config", err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatal("Error encoding config", err)
	}
	fmt.Print(string(out))
}
