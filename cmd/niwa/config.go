package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/niwa/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in niwa.yaml. Save it to ~/.niwa/configs/niwa.yaml
or ./configs/niwa.yaml and edit it to change keys, garden generation,
storage, logging or metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
