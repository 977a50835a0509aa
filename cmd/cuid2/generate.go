package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stagely-dev/cuid2/pkg/cuid2"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetInt("length")
		count, _ := cmd.Flags().GetInt("count")

		// Environment configuration supplies the defaults, flags win
		if !cmd.Flags().Changed("length") {
			length = cfg.Generator.Length
		}
		if !cmd.Flags().Changed("count") {
			count = cfg.Generator.Count
		}

		if count < 1 {
			return fmt.Errorf("count must be at least 1, got %d", count)
		}

		for i := 0; i < count; i++ {
			id, err := cuid2.GenerateWithLength(length)
			if err != nil {
				return err
			}
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("length", "l", cuid2.DefaultLength, "identifier length (2-32)")
	generateCmd.Flags().IntP("count", "n", 1, "number of identifiers to generate")
}
