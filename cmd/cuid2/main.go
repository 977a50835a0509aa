package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/stagely-dev/cuid2/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "cuid2",
	Short: "Generate and validate collision-resistant unique identifiers",
	Long: `cuid2 produces short, URL-safe identifiers that are lowercase
alphanumeric and always start with a letter. Identifiers generated by
independent processes stay collision-resistant without coordination.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		return err
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
