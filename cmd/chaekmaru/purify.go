package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chaekmaru/chaekmaru/internal/purify"
)

func newPurifyCommand() *cobra.Command {
	var (
		ageGroupYears int
		limit         int
		purifiedOnly  bool
	)

	command := &cobra.Command{
		Use:   "purify",
		Short: "Filter loan-popularity rankings for age-appropriateness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			lendingClient, err := newLendingClient(cfg)
			if err != nil {
				return err
			}
			socialClient, err := newSocialClient(cfg)
			if err != nil {
				return err
			}

			purifier := purify.NewPurifier(lendingClient, socialClient)
			records, err := purifier.PurifyAgeGroup(cmd.Context(), ageGroupYears, limit)
			if err != nil {
				return fmt.Errorf("purifier.PurifyAgeGroup > %w", err)
			}

			fmt.Printf("%d세 그룹 · %d건\n\n", ageGroupYears, len(records))
			for _, record := range records {
				if purifiedOnly && !record.IsPurified {
					continue
				}
				line := fmt.Sprintf("%s · %s (대출 %d, 밀도 %.4f)",
					record.Title, record.Publisher, record.LoanCount, record.Density)
				if record.IsPurified {
					color.Green("O %s", line)
				} else {
					fmt.Printf("X %s\n", line)
				}
			}
			return nil
		},
	}

	command.Flags().IntVar(&ageGroupYears, "age-group", 0, "age group in years (0-13)")
	command.Flags().IntVar(&limit, "limit", 50, "maximum loan-popularity candidates to fetch")
	command.Flags().BoolVar(&purifiedOnly, "purified-only", false, "show only purified records")

	return command
}
