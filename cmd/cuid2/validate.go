package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stagely-dev/cuid2/pkg/cuid2"
)

var validateCmd = &cobra.Command{
	Use:   "validate <id> [<id>...]",
	Short: "Check whether identifiers are well formed",
	Long: `validate reports one line per identifier in the form "<id>\t<verdict>"
and exits non-zero if any identifier is malformed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minLength, _ := cmd.Flags().GetInt("min")
		maxLength, _ := cmd.Flags().GetInt("max")
		quiet, _ := cmd.Flags().GetBool("quiet")

		if !cmd.Flags().Changed("min") {
			minLength = cfg.Validator.MinLength
		}
		if !cmd.Flags().Changed("max") {
			maxLength = cfg.Validator.MaxLength
		}

		allValid := true
		for _, id := range args {
			ok := cuid2.IsValid(id, minLength, maxLength)
			if !ok {
				allValid = false
			}
			if !quiet {
				verdict := "valid"
				if !ok {
					verdict = "invalid"
				}
				fmt.Printf("%s\t%s\n", id, verdict)
			}
		}

		if !allValid {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Int("min", cuid2.MinLength, "minimum accepted length")
	validateCmd.Flags().Int("max", cuid2.MaxLength, "maximum accepted length")
	validateCmd.Flags().BoolP("quiet", "q", false, "suppress output, report via exit code only")
}
