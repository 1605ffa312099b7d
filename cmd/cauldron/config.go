package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cauldron/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default config YAML. Save it to
~/.cauldron/configs/cauldron.yaml or pass it with --config to customize.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
