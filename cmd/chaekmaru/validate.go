package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chaekmaru/chaekmaru/internal/consensus"
)

func newValidateCommand() *cobra.Command {
	var (
		author   string
		ageYears int
	)

	command := &cobra.Command{
		Use:   "validate <title>",
		Short: "Cross-validate a book's target age against blog signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			socialClient, err := newSocialClient(cfg)
			if err != nil {
				return err
			}

			validator := consensus.NewValidator(socialClient)
			result := validator.ValidateByBlog(cmd.Context(), args[0], author, ageYears)

			if result.Passed {
				color.Green("PASSED (score %d)", displayScore(result.Score))
			} else {
				color.Red("REJECTED (score %d)", displayScore(result.Score))
			}
			if result.Reason != "" {
				fmt.Printf("사유:       %s\n", result.Reason)
			}
			fmt.Printf("영유아 신호: %d\n", result.InfantSignals)
			fmt.Printf("초등 신호:   %d\n", result.ElementarySignals)
			return nil
		},
	}

	command.Flags().StringVar(&author, "author", "", "author as listed in the catalog")
	command.Flags().IntVar(&ageYears, "age", 5, "target age in years")

	return command
}

// The validator's accept score grows with each infant signal; clamp only for
// display.
func displayScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}
